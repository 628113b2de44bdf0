package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/gogetwell/website/internal/catalog"
	"github.com/gogetwell/website/internal/config"
	"github.com/gogetwell/website/internal/contact"
	"github.com/gogetwell/website/internal/handlers"
	"github.com/gogetwell/website/internal/metrics"
	"github.com/gogetwell/website/internal/server"
	"github.com/gogetwell/website/pkg/logger"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func appOptions() []fx.Option {
	return []fx.Option{
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log.With(logger.Scope("fx"))}
		}),

		logger.Module,
		config.Module,
		catalog.Module,
		metrics.Module,
		contact.Module,
		server.Module,
		handlers.Module,
	}
}

func runServe() error {
	config.LoadDotenv()

	app := fx.New(appOptions()...)
	if err := app.Err(); err != nil {
		return err
	}
	app.Run()
	return nil
}
