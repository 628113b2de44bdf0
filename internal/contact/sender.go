package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/gogetwell/website/internal/config"
	"github.com/gogetwell/website/internal/storage"
	"github.com/gogetwell/website/pkg/logger"
)

// Sender delivers an accepted submission somewhere a human will read it.
type Sender interface {
	Send(ctx context.Context, s Submission) error
}

// SimulatedSender waits a fixed delay and reports success. It stands in for
// a real endpoint in local and demo deployments.
type SimulatedSender struct {
	Delay time.Duration
	log   *slog.Logger
}

func NewSimulatedSender(delay time.Duration, log *slog.Logger) *SimulatedSender {
	return &SimulatedSender{
		Delay: delay,
		log:   log.With(logger.Scope("contact.simulated")),
	}
}

func (s *SimulatedSender) Send(ctx context.Context, sub Submission) error {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	s.log.Info("contact message accepted (simulated)",
		slog.String("id", sub.ID),
		slog.Int("message_length", len(sub.Message)))
	return nil
}

// MailgunSender forwards submissions to the inbox via the Mailgun API.
type MailgunSender struct {
	cfg    config.EmailConfig
	inbox  string
	log    *slog.Logger
	client *mailgun.MailgunImpl
}

func NewMailgunSender(cfg config.EmailConfig, inbox string, log *slog.Logger) *MailgunSender {
	return &MailgunSender{
		cfg:    cfg,
		inbox:  inbox,
		log:    log.With(logger.Scope("contact.mailgun")),
		client: mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey),
	}
}

func (s *MailgunSender) Send(ctx context.Context, sub Submission) error {
	if err := s.validate(); err != nil {
		return err
	}

	from := fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	subject := fmt.Sprintf("New contact message from %s", sub.Fullname)
	text := fmt.Sprintf("From: %s <%s>\nReceived: %s\nID: %s\n\n%s\n",
		sub.Fullname, sub.Email, sub.ReceivedAt.UTC().Format(time.RFC1123), sub.ID, sub.Message)

	message := s.client.NewMessage(from, subject, text, s.inbox)
	message.SetReplyTo(fmt.Sprintf("%s <%s>", sub.Fullname, sub.Email))

	_, messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}

	s.log.Info("contact message sent",
		slog.String("id", sub.ID),
		slog.String("message_id", messageID))
	return nil
}

func (s *MailgunSender) validate() error {
	if s.cfg.MailgunDomain == "" {
		return fmt.Errorf("MAILGUN_DOMAIN is required")
	}
	if s.cfg.MailgunAPIKey == "" {
		return fmt.Errorf("MAILGUN_API_KEY is required")
	}
	if s.cfg.FromEmail == "" {
		return fmt.Errorf("EMAIL_FROM_ADDRESS is required")
	}
	if s.inbox == "" {
		return fmt.Errorf("CONTACT_INBOX is required")
	}
	return nil
}

// InboxStore is the subset of the SQLite store the inbox sender needs.
type InboxStore interface {
	SaveContactMessage(ctx context.Context, m storage.ContactMessage) error
	Ping(ctx context.Context) error
}

// InboxSender records submissions in the local SQLite inbox.
type InboxSender struct {
	store InboxStore
}

func NewInboxSender(store InboxStore) *InboxSender {
	return &InboxSender{store: store}
}

func (s *InboxSender) Send(ctx context.Context, sub Submission) error {
	return s.store.SaveContactMessage(ctx, storage.ContactMessage{
		ID:         sub.ID,
		ReceivedAt: sub.ReceivedAt,
		Fullname:   sub.Fullname,
		Email:      sub.Email,
		Message:    sub.Message,
		RemoteAddr: sub.RemoteAddr,
	})
}

func (s *InboxSender) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
