package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"weather-screen/config"
	"weather-screen/internal/screen"
)

func runScreen(ctx context.Context, cnf *config.Config) error {
	logFile, err := openLogFile(logFilePath(cnf))
	if err != nil {
		return err
	}
	defer logFile.Close()

	l, stop := newLogger(cnf, logFile)
	defer stop()

	service, err := newWeatherService(cnf, l)
	if err != nil {
		l.Error(err)
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.Info("screen started", map[string]any{
		"provider": service.Provider(),
		"city":     cnf.Screen.DefaultCity,
		"days":     cnf.Screen.ForecastDays,
	})

	model := screen.New(ctx, service, cnf.Screen, l)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		l.Error(err)
		return fmt.Errorf("run screen: %w", err)
	}

	l.Info("screen stopped")
	return nil
}
