package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/gogetwell/website/internal/config"
	"github.com/gogetwell/website/internal/metrics"
	"github.com/gogetwell/website/internal/storage"
	"github.com/gogetwell/website/pkg/logger"
)

var Module = fx.Module("contact",
	fx.Provide(
		NewSender,
		NewRateLimiterFromConfig,
		NewServiceFromConfig,
	),
	fx.Invoke(StartPruner),
)

// NewSender picks the delivery backend named by CONTACT_DELIVERY.
func NewSender(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (Sender, error) {
	switch cfg.Contact.Delivery {
	case config.DeliveryMailgun:
		return NewMailgunSender(cfg.Email, cfg.Contact.Inbox, log), nil
	case config.DeliverySQLite:
		store, err := storage.Open(cfg.Storage.DataDir)
		if err != nil {
			return nil, fmt.Errorf("opening contact inbox: %w", err)
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error { return store.Close() },
		})
		log.Info("contact inbox opened", slog.String("data_dir", cfg.Storage.DataDir))
		return NewInboxSender(store), nil
	default:
		return NewSimulatedSender(cfg.Contact.SimulatedDelay, log), nil
	}
}

func NewRateLimiterFromConfig(cfg *config.Config) *RateLimiter {
	return NewRateLimiter(cfg.Contact.RatePerMinute, cfg.Contact.RateBurst)
}

func NewServiceFromConfig(sender Sender, limiter *RateLimiter, cfg *config.Config, m *metrics.Metrics, log *slog.Logger) *Service {
	return NewService(sender, limiter, cfg.Contact.Timeout, m, log)
}

// StartPruner periodically drops idle rate-limit buckets.
func StartPruner(lc fx.Lifecycle, limiter *RateLimiter, log *slog.Logger) {
	log = log.With(logger.Scope("contact.ratelimit"))
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ticker := time.NewTicker(10 * time.Minute)
				defer ticker.Stop()
				for {
					select {
					case <-done:
						return
					case <-ticker.C:
						limiter.Prune()
						log.Debug("pruned rate limiters", slog.Int("tracked", limiter.Len()))
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			close(done)
			return nil
		},
	})
}
