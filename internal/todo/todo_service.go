package todo

import (
	"context"
	"errors"
	"math"
	"strings"

	todoerrors "go-hrm/internal/todo/errors"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	MessagePlanSaved   = "Task Saved"
	MessagePlanUpdated = "Task Updated"

	// defaultInProgressETA is used for in-progress tasks whose ETA has no
	// leading integer.
	defaultInProgressETA = 50

	progressFlightKey = "overall-progress"
)

type Service interface {
	SaveDailyPlan(ctx context.Context, req SaveDailyPlanRequest) (string, error)
	GetDailyPlan(ctx context.Context, date string) (*DailyPlan, error)
	OverallProgress(ctx context.Context) (int, error)
}

type service struct {
	repo   Repository
	flight singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("todo.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("todo.service")
	}
	return &service{repo: repo, logger: l}
}

// SaveDailyPlan replaces the plan for req.Date wholesale, or creates it. The
// returned string is the confirmation shown to the user.
func (s *service) SaveDailyPlan(ctx context.Context, req SaveDailyPlanRequest) (string, error) {
	if strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.WorkStatus) == "" {
		return "", todoerrors.ErrMissingFields
	}

	tasks := req.Tasks
	if tasks == nil {
		tasks = []TaskEntry{}
	}

	existing, err := s.repo.FindByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("find daily plan failed", zap.String("date", req.Date), zap.Error(err))
		return "", err
	}

	if existing != nil {
		existing.WorkStatus = req.WorkStatus
		existing.Tasks = tasks
		if err := s.repo.Update(ctx, existing); err != nil {
			s.logger.Error("update daily plan failed", zap.String("date", req.Date), zap.Error(err))
			return "", err
		}
		s.logger.Info("daily plan updated", zap.String("date", req.Date), zap.Int("tasks", len(tasks)))
		return MessagePlanUpdated, nil
	}

	plan := &DailyPlan{Date: req.Date, WorkStatus: req.WorkStatus, Tasks: tasks}
	if err := s.repo.Create(ctx, plan); err != nil {
		s.logger.Error("create daily plan failed", zap.String("date", req.Date), zap.Error(err))
		return "", err
	}
	s.logger.Info("daily plan saved", zap.String("date", req.Date), zap.Int("tasks", len(tasks)))
	return MessagePlanSaved, nil
}

func (s *service) GetDailyPlan(ctx context.Context, date string) (*DailyPlan, error) {
	plan, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, todoerrors.ErrPlanNotFound
		}
		s.logger.Error("get daily plan failed", zap.String("date", date), zap.Error(err))
		return nil, err
	}
	return plan, nil
}

// OverallProgress averages the contribution of every task of every plan.
// Overlapping callers share a single store scan. The scan is detached from
// the caller that started it, and each caller only waits on its own ctx.
func (s *service) OverallProgress(ctx context.Context) (int, error) {
	scanCtx := context.WithoutCancel(ctx)
	ch := s.flight.DoChan(progressFlightKey, func() (any, error) {
		plans, err := s.repo.FindAll(scanCtx)
		if err != nil {
			return 0, err
		}
		return ComputeProgress(plans), nil
	})

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			s.logger.Error("progress calculation failed", zap.Error(res.Err))
			return 0, res.Err
		}
		if res.Shared {
			s.logger.Debug("progress result shared with concurrent caller")
		}
		return res.Val.(int), nil
	}
}

// ComputeProgress returns round(sum/count) over all tasks, or 0 when there
// are none. Unknown statuses count toward the total with no contribution.
func ComputeProgress(plans []DailyPlan) int {
	total, count := 0, 0
	for _, p := range plans {
		for _, t := range p.Tasks {
			total += TaskContribution(t)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	// half-up, so 47.5 becomes 48
	return int(math.Floor(float64(total)/float64(count) + 0.5))
}

func TaskContribution(t TaskEntry) int {
	switch strings.ToLower(strings.TrimSpace(t.Status)) {
	case "completed":
		return 100
	case "in progress":
		if eta, ok := leadingInt(t.ETA); ok {
			return eta
		}
		return defaultInProgressETA
	default:
		return 0
	}
}

// leadingInt reads an optionally signed run of decimal digits after leading
// whitespace, ignoring whatever follows: "40%" and " 40" both give 40.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\r\n\v\f")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		if n <= (math.MaxInt32-9)/10 {
			n = n*10 + int(s[digits]-'0')
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
