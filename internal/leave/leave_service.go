package leave

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"go-hrm/internal/events"
	leaveerrors "go-hrm/internal/leave/errors"
	"go-hrm/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusCancelled = "Cancelled"
)

// AnnualAllowance is the organisation-wide number of leave units per year.
const AnnualAllowance = 36

type Service interface {
	Apply(ctx context.Context, req ApplyLeaveRequest) error
	List(ctx context.Context, employeeID, status string) ([]LeaveResponse, error)
	Cancel(ctx context.Context, employeeID, id string) error
	Update(ctx context.Context, employeeID, id string, req UpdateLeaveRequest) error
	Stats(ctx context.Context) (LeaveStatsResponse, error)
}

type service struct {
	repo      Repository
	publisher EventPublisher
	logger    *zap.Logger
}

func NewService(repo Repository, publisher EventPublisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	return &service{repo: repo, publisher: publisher, logger: l}
}

func (s *service) Apply(ctx context.Context, req ApplyLeaveRequest) error {
	s.logger.Debug("apply leave requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type", req.LeaveType),
		zap.String("from_date", req.FromDate),
		zap.String("to_date", req.ToDate),
	)

	if anyEmpty(req.EmployeeID, req.EmployeeName, req.LeaveType, req.Approver, req.FromDate, req.ToDate, req.Reason) {
		s.logger.Warn("apply leave validation failed", zap.String("employee_id", req.EmployeeID))
		return leaveerrors.ErrMissingFields
	}

	l := &Leave{
		ID:           uuid.New(),
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		LeaveType:    req.LeaveType,
		Approver:     req.Approver,
		FromDate:     req.FromDate,
		ToDate:       req.ToDate,
		Reason:       req.Reason,
		Status:       StatusPending,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("apply leave persist failed", zap.Error(err))
		return err
	}

	s.publish(ctx, events.LeaveApplied, l)
	s.logger.Info("apply leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", l.EmployeeID),
	)
	return nil
}

func (s *service) List(ctx context.Context, employeeID, status string) ([]LeaveResponse, error) {
	employeeID = strings.TrimSpace(employeeID)
	leaves, err := s.repo.FindAllByEmployee(ctx, employeeID, status)
	if err != nil {
		s.logger.Error("list leaves failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

// Cancel does not look at the current status: cancelling twice, or
// cancelling an approved leave, both end in Cancelled without error.
func (s *service) Cancel(ctx context.Context, employeeID, id string) error {
	s.logger.Debug("cancel leave requested", zap.String("employee_id", employeeID), zap.String("leave_id", id))

	l, err := s.findOwned(ctx, employeeID, id)
	if err != nil {
		return err
	}

	l.Status = StatusCancelled
	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("cancel leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return err
	}

	s.publish(ctx, events.LeaveCancelled, l)
	s.logger.Info("cancel leave success", zap.String("leave_id", id))
	return nil
}

// Update is a re-submission: the edited request always goes back to Pending.
func (s *service) Update(ctx context.Context, employeeID, id string, req UpdateLeaveRequest) error {
	s.logger.Debug("update leave requested", zap.String("employee_id", employeeID), zap.String("leave_id", id))

	if anyEmpty(req.LeaveType, req.FromDate, req.ToDate, req.Reason) {
		return leaveerrors.ErrMissingUpdateFields
	}

	l, err := s.findOwned(ctx, employeeID, id)
	if err != nil {
		return err
	}

	l.LeaveType = req.LeaveType
	l.FromDate = req.FromDate
	l.ToDate = req.ToDate
	l.Reason = req.Reason
	l.Status = StatusPending

	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("update leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return err
	}

	s.publish(ctx, events.LeaveUpdated, l)
	s.logger.Info("update leave success", zap.String("leave_id", id))
	return nil
}

// Stats counts every leave document of every employee against the single
// annual allowance. Percentages are not clamped.
func (s *service) Stats(ctx context.Context) (LeaveStatsResponse, error) {
	total, err := s.repo.CountAll(ctx)
	if err != nil {
		s.logger.Error("leave stats count failed", zap.Error(err))
		return LeaveStatsResponse{}, err
	}
	return computeStats(total), nil
}

func computeStats(total int64) LeaveStatsResponse {
	leavePct := 0
	if AnnualAllowance > 0 {
		leavePct = int(math.Round(float64(total) / AnnualAllowance * 100))
	}
	return LeaveStatsResponse{
		TotalLeavesUsed:   total,
		LeavePercentage:   leavePct,
		PresentPercentage: 100 - leavePct,
	}
}

func (s *service) findOwned(ctx context.Context, employeeID, id string) (*Leave, error) {
	l, err := s.repo.FindByIDAndEmployee(ctx, employeeID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("leave not found for employee",
				zap.String("employee_id", employeeID),
				zap.String("leave_id", id),
			)
			return nil, leaveerrors.ErrLeaveNotFound
		}
		s.logger.Error("find leave failed", zap.String("leave_id", id), zap.Error(err))
		return nil, err
	}
	return l, nil
}

func (s *service) publish(ctx context.Context, eventType string, l *Leave) {
	event := events.LeaveLifecycleEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		RequestID:  contextutil.GetRequestID(ctx),
		LeaveID:    l.ID.String(),
		EmployeeID: l.EmployeeID,
		LeaveType:  l.LeaveType,
		Approver:   l.Approver,
		FromDate:   l.FromDate,
		ToDate:     l.ToDate,
		Status:     l.Status,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishLeaveEvent(ctx, event); err != nil {
		s.logger.Error("publish leave event failed",
			zap.String("event_type", eventType),
			zap.String("leave_id", event.LeaveID),
			zap.Error(err),
		)
	}
}

// anyEmpty only rejects absent or empty values; whitespace is kept as sent.
func anyEmpty(values ...string) bool {
	for _, v := range values {
		if v == "" {
			return true
		}
	}
	return false
}

func mapToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:           l.ID.String(),
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		LeaveType:    l.LeaveType,
		Approver:     l.Approver,
		FromDate:     l.FromDate,
		ToDate:       l.ToDate,
		Reason:       l.Reason,
		Status:       l.Status,
		CreatedAt:    l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    l.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
