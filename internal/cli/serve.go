package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"weather-screen/config"
	v1 "weather-screen/internal/controllers/http/v1"
	"weather-screen/pkg/httpserver"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve location search and forecasts over HTTP",
		Long: `Serve exposes the location search and forecast lookup as a JSON API.

Routes:
  GET /locations?q=Lon
  GET /forecast?city=Istanbul&days=3
  GET /swagger/
  GET /manage/health, /manage/ready`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cnf, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cnf)
		},
	}

	cmd.Flags().StringVarP(&opts.port, "port", "p", "", "listen port (overrides server.port)")

	return cmd
}

func runServe(ctx context.Context, cnf *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)

	l, stop := newLogger(cnf, os.Stdout)

	service, err := newWeatherService(cnf, l)
	if err != nil {
		l.Error(err)
		stop()
		cancel()
		return err
	}

	app := httpserver.InitFiberServer(cnf)

	v1.NewRouter(
		app,
		service,
		cnf.Screen,
		l,
	)

	listenErr := make(chan error, 1)
	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Error(err, map[string]any{"port": cnf.Server.Port})
			listenErr <- err
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":     cnf.Server.Port,
		"provider": service.Provider(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		stop()
		cancel()
	}()

	select {
	case sig := <-sigCh:
		l.Info("received shutdown signal", map[string]any{"signal": sig.String()})
	case <-ctx.Done():
		l.Info("context cancelled")
	case err := <-listenErr:
		return err
	}

	return nil
}
