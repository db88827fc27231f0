package service

import (
	"context"
	"fmt"

	"mystore/internal/model"
	"mystore/internal/notify"
	"mystore/internal/repository"

	"github.com/rs/zerolog"
)

// contactService implements ContactService.
type contactService struct {
	contactRepo repository.ContactRepository
	mailer      notify.Mailer
	adminTo     string
	logger      zerolog.Logger
}

// NewContactService creates a new contact service. adminTo is the inbox
// that receives a copy of each submission; empty disables forwarding.
func NewContactService(contactRepo repository.ContactRepository, mailer notify.Mailer, adminTo string, logger zerolog.Logger) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		mailer:      mailer,
		adminTo:     adminTo,
		logger:      logger.With().Str("service", "contact").Logger(),
	}
}

// Submit stores a contact form submission and forwards a copy to the admin
// inbox. The forwarded copy is best effort: the submission is already
// stored, so a mail failure does not fail the request.
func (s *contactService) Submit(ctx context.Context, req model.ContactRequest) error {
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Name, email and message are required")
	}

	id, err := s.contactRepo.Create(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to submit contact message: %w", err)
	}

	if s.adminTo != "" {
		subject, body := notify.ContactCopyBody(req)
		if err := s.mailer.Send(ctx, s.adminTo, subject, body); err != nil {
			s.logger.Warn().Err(err).Int64("message_id", id).Msg("failed to forward contact message")
		}
	}

	s.logger.Info().Int64("message_id", id).Str("email", req.Email).Msg("contact message received")
	return nil
}

// List retrieves all stored submissions, newest first.
func (s *contactService) List(ctx context.Context) ([]model.ContactMessage, error) {
	messages, err := s.contactRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	if messages == nil {
		messages = []model.ContactMessage{}
	}
	return messages, nil
}
