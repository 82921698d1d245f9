package contact

import (
	"context"
	"log/slog"

	internal "github.com/tradingwalla/backend/internal"
	contactmodel "github.com/tradingwalla/backend/internal/core/datamodel/contact"
	"github.com/tradingwalla/backend/internal/core/events"
)

const defaultSubject = "Contact Form Submission"

type RepositoryAPI interface {
	Create(ctx context.Context, c *contactmodel.Contact) error
	ListAll(ctx context.Context) ([]*contactmodel.Contact, error)
}

type Service struct {
	repo     RepositoryAPI
	eventBus *events.EventBus
	logger   *slog.Logger
}

func NewService(repo RepositoryAPI, eventBus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Submit persists the message and fans it out to the notification
// listeners. Delivery failures never surface to the caller; the record
// is the source of truth.
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (*contactmodel.Contact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	subject := req.Subject
	if subject == "" {
		subject = defaultSubject
	}

	record := &contactmodel.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: subject,
		Message: req.Message,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Error("failed to persist contact message", "error", err)
		return nil, internal.NewInternalError("Error submitting contact form", err)
	}

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.NewContactSubmittedEvent(
			record.Name, record.Email, record.Phone, record.Subject, record.Message,
		))
	}

	s.logger.Info("contact message saved", "id", record.ID, "subject", record.Subject)
	return record, nil
}

func (s *Service) ListAll(ctx context.Context) ([]*contactmodel.Contact, error) {
	return s.repo.ListAll(ctx)
}
