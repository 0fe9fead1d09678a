package attendance

import (
	"context"
	"errors"
	"strings"

	attendanceerrors "go-hrm/internal/attendance/errors"
	"go-hrm/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Mark(ctx context.Context, employeeID string, req MarkAttendanceRequest) error
	Update(ctx context.Context, employeeID string, req UpdateAttendanceRequest) (Attendance, error)
	RecentHistory(ctx context.Context, employeeID string) ([]Attendance, error)
	CheckExists(ctx context.Context, employeeID, date string) (bool, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{repo: repo, logger: l}
}

// Mark always inserts a new row. Duplicate submissions are filtered before
// reaching here by the Idempotency-Key middleware.
func (s *service) Mark(ctx context.Context, employeeID string, req MarkAttendanceRequest) error {
	log := contextutil.GetLogger(ctx, s.logger)

	row := &Attendance{
		ID:           uuid.New(),
		EmployeeID:   employeeID,
		Date:         req.Date,
		LoginTime:    req.LoginTime,
		LogoutTime:   req.LogoutTime,
		BreakTime:    req.BreakTime,
		LoginReason:  req.LoginReason,
		LogoutReason: req.LogoutReason,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		log.Error("mark attendance failed", zap.String("employee_id", employeeID), zap.Error(err))
		return err
	}

	log.Info("attendance marked",
		zap.String("employee_id", employeeID),
		zap.String("date", req.Date),
	)
	return nil
}

func (s *service) Update(ctx context.Context, employeeID string, req UpdateAttendanceRequest) (Attendance, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if strings.TrimSpace(req.Date) == "" {
		return Attendance{}, attendanceerrors.ErrDateRequired
	}

	row, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, req.Date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Attendance{}, attendanceerrors.ErrAttendanceNotFound
		}
		log.Error("find attendance failed", zap.String("employee_id", employeeID), zap.Error(err))
		return Attendance{}, err
	}

	applyIfSet(&row.LoginTime, req.LoginTime)
	applyIfSet(&row.LogoutTime, req.LogoutTime)
	applyIfSet(&row.BreakTime, req.BreakTime)
	applyIfSet(&row.LoginReason, req.LoginReason)
	applyIfSet(&row.LogoutReason, req.LogoutReason)

	if err := s.repo.Update(ctx, row); err != nil {
		log.Error("update attendance failed", zap.String("employee_id", employeeID), zap.Error(err))
		return Attendance{}, err
	}

	log.Info("attendance updated", zap.String("employee_id", employeeID), zap.String("date", req.Date))
	return *row, nil
}

func (s *service) RecentHistory(ctx context.Context, employeeID string) ([]Attendance, error) {
	rows, err := s.repo.FindRecentByEmployee(ctx, employeeID, historyLimit)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("attendance history failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	if rows == nil {
		rows = []Attendance{}
	}
	return rows, nil
}

func (s *service) CheckExists(ctx context.Context, employeeID, date string) (bool, error) {
	return s.repo.ExistsByEmployeeAndDate(ctx, employeeID, date)
}

func applyIfSet(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
