package forms

import (
	"context"
	"log/slog"
	"time"

	internal "github.com/tradingwalla/backend/internal"
	formmodel "github.com/tradingwalla/backend/internal/core/datamodel/formsubmission"
)

type RepositoryAPI interface {
	Create(ctx context.Context, f *formmodel.FormSubmission) error
	ListAll(ctx context.Context) ([]*formmodel.FormSubmission, error)
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

func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (*SubmitResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record := &formmodel.FormSubmission{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		FormType:    req.FormType,
		SubmittedAt: time.Now(),
	}
	if req.Whatsapp != "" {
		record.Whatsapp = &req.Whatsapp
	}

	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Error("failed to persist form submission", "error", err, "form_type", req.FormType)
		return nil, internal.NewInternalError("Error submitting form", err)
	}

	s.logger.Info("form submission saved", "id", record.ID, "form_type", record.FormType)

	return &SubmitResponse{
		ID:          record.ID,
		FormType:    record.FormType,
		SubmittedAt: record.SubmittedAt,
	}, nil
}

func (s *Service) ListAll(ctx context.Context) ([]*formmodel.FormSubmission, error) {
	return s.repo.ListAll(ctx)
}
