package profile

import (
	"context"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateProfileRequest) (ProfileResponse, error)
	Get(ctx context.Context, id string) (ProfileResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("profile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateProfileRequest) (ProfileResponse, error) {
	p := &Profile{
		ID:               req.ID,
		FullName:         req.FullName,
		DOB:              req.DOB,
		FatherName:       req.FatherName,
		FatherOccupation: req.FatherOccupation,
		Aadhar:           req.Aadhar,
		Address:          req.Address,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		mapped := mapRepositoryError(err)
		if mapped == err {
			s.logger.Error("create profile failed", zap.String("profile_id", req.ID), zap.Error(err))
		}
		return ProfileResponse{}, mapped
	}

	s.logger.Info("profile created", zap.String("profile_id", p.ID))
	return mapToResponse(p), nil
}

func (s *service) Get(ctx context.Context, id string) (ProfileResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ProfileResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(p), nil
}

func mapToResponse(p *Profile) ProfileResponse {
	return ProfileResponse{
		ID:               p.ID,
		FullName:         p.FullName,
		DOB:              p.DOB,
		FatherName:       p.FatherName,
		FatherOccupation: p.FatherOccupation,
		Aadhar:           p.Aadhar,
		Address:          p.Address,
	}
}
