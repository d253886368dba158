package leads

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/numiflow/website/internal/config"
	"github.com/numiflow/website/internal/contact"
	"github.com/numiflow/website/pkg/logger"
)

// mailgunClient is the part of the Mailgun SDK the sender uses.
type mailgunClient interface {
	NewMessage(from, subject, text string, to ...string) *mailgun.Message
	Send(ctx context.Context, m *mailgun.Message) (string, string, error)
}

// MailgunSubmitter emails every lead to the sales inbox.
type MailgunSubmitter struct {
	cfg       config.EmailConfig
	to        string
	toName    string
	templates *Templates
	client    mailgunClient
	log       *slog.Logger
}

// NewMailgunSubmitter returns nil when Mailgun or the leads inbox is not configured.
func NewMailgunSubmitter(cfg *config.Config, templates *Templates, log *slog.Logger) *MailgunSubmitter {
	if !cfg.Email.Enabled || !cfg.Email.IsConfigured() || cfg.Contact.LeadsTo == "" {
		return nil
	}
	return newMailgunSubmitter(cfg, templates, mailgun.NewMailgun(cfg.Email.MailgunDomain, cfg.Email.MailgunAPIKey), log)
}

func newMailgunSubmitter(cfg *config.Config, templates *Templates, client mailgunClient, log *slog.Logger) *MailgunSubmitter {
	return &MailgunSubmitter{
		cfg:       cfg.Email,
		to:        cfg.Contact.LeadsTo,
		toName:    cfg.Contact.LeadsToName,
		templates: templates,
		client:    client,
		log:       log.With(logger.Scope("leads.mailgun")),
	}
}

// Submit renders the lead and sends it. The visitor becomes the reply-to address.
func (s *MailgunSubmitter) Submit(ctx context.Context, sub contact.Submission) error {
	if err := s.validate(); err != nil {
		s.log.Error("email configuration invalid", logger.Error(err))
		return err
	}

	rendered, err := s.templates.Render(sub)
	if err != nil {
		return err
	}

	to := s.to
	if s.toName != "" {
		to = fmt.Sprintf("%s <%s>", s.toName, s.to)
	}
	from := fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)

	message := s.client.NewMessage(from, rendered.Subject, rendered.Text, to)
	message.SetHtml(rendered.HTML)
	if sub.Email != "" {
		message.SetReplyTo(sub.Email)
	}

	s.log.Debug("sending lead email",
		slog.String("form_id", sub.FormID),
		slog.String("subject", rendered.Subject))

	_, messageID, err := s.client.Send(ctx, message)
	if err != nil {
		s.log.Error("failed to send lead email",
			slog.String("form_id", sub.FormID),
			logger.Error(err))
		return fmt.Errorf("mailgun: %w", err)
	}

	s.log.Info("lead email sent",
		slog.String("form_id", sub.FormID),
		slog.String("message_id", messageID))
	return nil
}

// validate checks that the configuration is valid
func (s *MailgunSubmitter) validate() error {
	if s.cfg.MailgunDomain == "" {
		return fmt.Errorf("MAILGUN_DOMAIN is required")
	}
	if s.cfg.MailgunAPIKey == "" {
		return fmt.Errorf("MAILGUN_API_KEY is required")
	}
	if s.cfg.FromEmail == "" {
		return fmt.Errorf("EMAIL_FROM_ADDRESS is required")
	}
	if s.cfg.FromName == "" {
		return fmt.Errorf("EMAIL_FROM_NAME is required")
	}
	if s.to == "" {
		return fmt.Errorf("LEADS_TO_ADDRESS is required")
	}
	return nil
}
