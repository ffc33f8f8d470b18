package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pathtwo/pathtwo/internal/models"
)

// SubmitContactMessage stores a contact-form submission and notifies the
// site owner by email. A failed notification is logged but does not fail
// the submission.
func (s *Service) SubmitContactMessage(ctx context.Context, m *models.ContactMessage) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Body = strings.TrimSpace(m.Body)
	if m.Name == "" || m.Email == "" || m.Body == "" {
		return fmt.Errorf("name, email and message are required")
	}
	m.PublicID = uuid.NewString()

	if err := s.repo.CreateMessage(ctx, m); err != nil {
		return err
	}
	s.log.Infof("Contact message received from %s", m.Email)

	if s.mailer != nil {
		if err := s.mailer.SendContactNotification(m); err != nil {
			s.log.WithError(err).Warn("Failed to send contact notification")
		}
	}
	return nil
}

// ListMessages returns all contact messages, newest first.
func (s *Service) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return s.repo.ListMessages(ctx)
}

// MarkMessageRead flags a message as read.
func (s *Service) MarkMessageRead(ctx context.Context, publicID string) error {
	return s.repo.MarkMessageRead(ctx, publicID)
}

// DeleteMessage removes a message.
func (s *Service) DeleteMessage(ctx context.Context, publicID string) error {
	if err := s.repo.DeleteMessage(ctx, publicID); err != nil {
		return err
	}
	s.log.Infof("Contact message %s deleted", publicID)
	return nil
}
