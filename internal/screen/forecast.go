package screen

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"weather-screen/config"
	"weather-screen/internal/models"
	"weather-screen/pkg/logger"
)

var errEmptyForecast = errors.New("provider returned no forecast")

// ForecastViewModel owns the displayed forecast and the loading and error
// state around it. A new payload replaces the old one wholesale.
type ForecastViewModel struct {
	ctx      context.Context
	client   WeatherClient
	cfg      config.ScreenConfig
	l        *logger.Logger
	inflight requests

	payload       *models.Forecast
	loading       bool
	err           error
	city          string
	defaultIssued bool
}

func NewForecastViewModel(ctx context.Context, client WeatherClient, cfg config.ScreenConfig, l *logger.Logger) *ForecastViewModel {
	return &ForecastViewModel{
		ctx:     ctx,
		client:  client,
		cfg:     cfg,
		l:       l,
		loading: true,
	}
}

func (vm *ForecastViewModel) Payload() *models.Forecast {
	return vm.payload
}

func (vm *ForecastViewModel) Loading() bool {
	return vm.loading
}

func (vm *ForecastViewModel) Err() error {
	return vm.err
}

// City is the most recently requested city.
func (vm *ForecastViewModel) City() string {
	return vm.city
}

// LoadDefault requests the configured default city. Only the first call
// does anything.
func (vm *ForecastViewModel) LoadDefault() tea.Cmd {
	if vm.defaultIssued {
		return nil
	}
	vm.defaultIssued = true
	return vm.Load(vm.cfg.DefaultCity)
}

func (vm *ForecastViewModel) Load(city string) tea.Cmd {
	vm.loading = true
	vm.err = nil
	vm.city = city

	ctx, gen, cancel := vm.inflight.start(vm.ctx, vm.cfg.DiscardStale)
	vm.l.Info("loading forecast", map[string]any{"city": city, "days": vm.cfg.ForecastDays, "gen": gen})

	return forecastCmd(ctx, cancel, vm.client, gen, city, vm.cfg.ForecastDays)
}

// Retry reloads the last city after a failure.
func (vm *ForecastViewModel) Retry() tea.Cmd {
	if vm.err == nil || vm.city == "" {
		return nil
	}
	return vm.Load(vm.city)
}

func (vm *ForecastViewModel) onLoaded(msg ForecastLoadedMsg) bool {
	if !vm.inflight.accept(msg.gen, vm.cfg.DiscardStale) {
		vm.l.Debug("discarding stale forecast", map[string]any{"city": msg.City, "gen": msg.gen})
		return false
	}

	vm.loading = false

	err := msg.Err
	if err == nil && msg.Forecast == nil {
		err = errEmptyForecast
	}
	if err != nil {
		vm.err = err
		vm.l.Error(err, map[string]any{"city": msg.City})
		return true
	}

	vm.err = nil
	vm.payload = msg.Forecast
	return true
}
