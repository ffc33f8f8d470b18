package email

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/pathtwo/pathtwo/internal/config"
	"github.com/pathtwo/pathtwo/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendContactNotification notifies the site owner that a visitor submitted
// the contact form.
func (s *Sender) SendContactNotification(m *models.ContactMessage) error {
	if s.cfg.ContactEmail == "" {
		s.logger.Debug("CONTACT_EMAIL not set, skipping contact notification")
		return nil
	}

	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{s.cfg.ContactEmail}
	subject := m.Subject
	if subject == "" {
		subject = "(no subject)"
	}
	e.Subject = fmt.Sprintf("New contact message: %s", subject)

	body := fmt.Sprintf(
		"From: %s <%s>\n"+
			"Received: %s\n\n"+
			"%s\n",
		m.Name, m.Email, m.CreatedAt.Format("2006-01-02 15:04:05"), m.Body,
	)
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send contact notification to %s: %v", s.cfg.ContactEmail, err)
		return fmt.Errorf("failed to send contact notification: %w", err)
	}

	s.logger.Infof("Contact notification sent to %s", s.cfg.ContactEmail)
	return nil
}
