package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gogetwell/website/internal/metrics"
	"github.com/gogetwell/website/pkg/apperror"
	"github.com/gogetwell/website/pkg/logger"
)

// Service accepts contact form submissions and hands them to a Sender.
type Service struct {
	sender  Sender
	limiter *RateLimiter
	timeout time.Duration
	metrics *metrics.Metrics
	log     *slog.Logger
	now     func() time.Time
}

func NewService(sender Sender, limiter *RateLimiter, timeout time.Duration, m *metrics.Metrics, log *slog.Logger) *Service {
	return &Service{
		sender:  sender,
		limiter: limiter,
		timeout: timeout,
		metrics: m,
		log:     log.With(logger.Scope("contact")),
		now:     time.Now,
	}
}

// Submit validates and delivers a form. Errors are *apperror.Error:
// ErrValidation (with per-field details), ErrRateLimited or ErrDeliveryFailed.
// Invalid forms are rejected before the rate limiter is consulted.
func (s *Service) Submit(ctx context.Context, remoteAddr string, form Form) (Submission, error) {
	form = form.Normalize()
	if fields := form.Validate(); fields != nil {
		s.record("invalid")
		return Submission{}, apperror.NewValidation(fields)
	}

	// Only forms that would be delivered spend a token.
	if !s.limiter.Allow(remoteAddr) {
		s.record("rate_limited")
		s.log.Warn("contact submission rate limited", slog.String("remote_addr", remoteAddr))
		return Submission{}, apperror.ErrRateLimited
	}

	sub := Submission{
		ID:         uuid.NewString(),
		Fullname:   form.Fullname,
		Email:      form.Email,
		Message:    form.Message,
		RemoteAddr: remoteAddr,
		ReceivedAt: s.now().UTC(),
	}

	sendCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.sender.Send(sendCtx, sub); err != nil {
		s.record("failed")
		s.log.Error("contact delivery failed",
			slog.String("id", sub.ID),
			logger.Error(err))
		return Submission{}, apperror.ErrDeliveryFailed.WithInternal(err)
	}

	s.record("sent")
	s.log.Info("contact submission delivered", slog.String("id", sub.ID))
	return sub, nil
}

func (s *Service) record(outcome string) {
	if s.metrics != nil {
		s.metrics.Contact.WithLabelValues(outcome).Inc()
	}
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Ready reports whether the delivery backend can accept submissions. Senders
// without a local dependency are always ready.
func (s *Service) Ready(ctx context.Context) error {
	if p, ok := s.sender.(pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
