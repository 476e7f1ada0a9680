// Package cli wires configuration, logging and the weather provider into the
// weather-screen commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"weather-screen/config"
	"weather-screen/internal/repositories"
	"weather-screen/internal/services/weather"
	"weather-screen/pkg/logger"
	"weather-screen/pkg/observe"
)

// Version is stamped at build time with -ldflags "-X weather-screen/internal/cli.Version=...".
var Version = ""

type options struct {
	configPath string
	city       string
	days       int
	port       string
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}

func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "weather-screen",
		Short: "Current conditions and a daily forecast in the terminal",
		Long: `weather-screen shows the current weather and a daily forecast for a city.

Press / to search for another city, r to retry a failed load, q to quit.

Examples:
  # Start on the configured default city
  weather-screen

  # Start on Oslo with a three day forecast
  weather-screen --city Oslo --days 3`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cnf, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return runScreen(cmd.Context(), cnf)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultConfigPath, "config file")
	root.PersistentFlags().StringVar(&opts.city, "city", "", "city to show first (overrides screen.default_city)")
	root.PersistentFlags().IntVar(&opts.days, "days", 0, "forecast days, 1-14 (overrides screen.forecast_days)")

	root.AddCommand(newServeCommand(opts), newVersionCommand())

	return root
}

// loadConfig layers the command-line flags over the file and environment config.
func loadConfig(opts *options) (*config.Config, error) {
	provider := config.NewFileConfigProvider(opts.configPath)

	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if opts.city != "" {
		cnf.Screen.DefaultCity = opts.city
	}
	if opts.days != 0 {
		cnf.Screen.ForecastDays = opts.days
	}
	if opts.port != "" {
		cnf.Server.Port = opts.port
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, err
	}

	return cnf, nil
}

// newLogger builds the application logger. With a Sentry DSN configured,
// error entries are also forwarded to Sentry. The returned stop func flushes
// both.
func newLogger(cnf *config.Config, writers ...io.Writer) (*logger.Logger, func()) {
	var hook *observe.SentryHook
	if cnf.Log.SentryDSN != "" {
		hook = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, 0, cnf.IsDevelopment(), cnf.Log.SentryDSN)
		writers = append(writers, hook)
	}

	l := logger.New(cnf.App.Name, logger.Options{
		Env:    cnf.App.Env,
		Level:  cnf.Log.Level,
		Format: cnf.Log.Format,
	}, writers...)

	if hook != nil {
		hook.SetLogger(l)
		if cnf.Log.Format != "json" {
			l.Warning("sentry forwarding needs log.format json", map[string]any{"format": cnf.Log.Format})
		}
	}

	return l, func() {
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
	}
}

// logFilePath is where the screen logs go; the terminal belongs to the UI.
func logFilePath(cnf *config.Config) string {
	if cnf.Log.File != "" {
		return cnf.Log.File
	}
	return filepath.Join(os.TempDir(), "weather-screen.log")
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func newWeatherService(cnf *config.Config, l *logger.Logger) (*weather.WeatherService, error) {
	repo, err := repositories.InitWeatherRepository(cnf, l)
	if err != nil {
		return nil, err
	}
	return weather.NewWeatherService(repo, l), nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			defaults := config.Defaults()
			version := Version
			if version == "" {
				version = defaults.App.Version
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", defaults.App.Name, version)
		},
	}
}
