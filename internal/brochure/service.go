package brochure

import (
	"context"
	"log/slog"

	internal "github.com/tradingwalla/backend/internal"
	brochuremodel "github.com/tradingwalla/backend/internal/core/datamodel/brochure"
)

type RepositoryAPI interface {
	Create(ctx context.Context, b *brochuremodel.Brochure) error
	ListAll(ctx context.Context) ([]*brochuremodel.Brochure, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (*brochuremodel.Brochure, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record := &brochuremodel.Brochure{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Interest: req.Interest,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Error("failed to persist brochure request", "error", err)
		return nil, internal.NewInternalError("Error submitting brochure request", err)
	}

	s.logger.Info("brochure request saved", "id", record.ID, "interest", record.Interest)
	return record, nil
}

func (s *Service) ListAll(ctx context.Context) ([]*brochuremodel.Brochure, error) {
	return s.repo.ListAll(ctx)
}
