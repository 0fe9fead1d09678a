package auth

import (
	"context"
	"errors"
	"strings"

	autherrors "go-hrm/internal/auth/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	// VerifyLegacyCredential is a field-match check kept for the existing
	// front-end. It issues no session or token.
	VerifyLegacyCredential(ctx context.Context, req LegacyLoginRequest) error
	GetNameAndPosition(ctx context.Context, employeeID string) (EmployeeNameResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) VerifyLegacyCredential(ctx context.Context, req LegacyLoginRequest) error {
	id := strings.TrimSpace(req.EmployeeID)
	name := strings.TrimSpace(req.EmployeeName)
	position := strings.TrimSpace(req.Position)
	if id == "" || name == "" || position == "" {
		return autherrors.ErrMissingFields
	}

	if _, err := s.repo.FindExact(ctx, id, name, position); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Info("legacy login rejected", zap.String("employee_id", id))
			return autherrors.ErrInvalidCredentials
		}
		s.logger.Error("legacy login lookup failed", zap.String("employee_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("legacy login accepted", zap.String("employee_id", id))
	return nil
}

func (s *service) GetNameAndPosition(ctx context.Context, employeeID string) (EmployeeNameResponse, error) {
	cred, err := s.repo.FindByEmployeeID(ctx, strings.TrimSpace(employeeID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeNameResponse{}, autherrors.ErrEmployeeNotFound
		}
		s.logger.Error("employee name lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
		return EmployeeNameResponse{}, err
	}

	return EmployeeNameResponse{EmployeeName: cred.EmployeeName, Position: cred.Position}, nil
}
