package screen

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"weather-screen/internal/models"
)

// WeatherClient is the remote collaborator the screen depends on.
type WeatherClient interface {
	SearchLocations(ctx context.Context, query string) ([]models.Location, error)
	FetchForecast(ctx context.Context, city string, days int) (*models.Forecast, error)
}

// LocationsLoadedMsg carries the answer to one location search.
type LocationsLoadedMsg struct {
	gen       uint64
	Query     string
	Locations []models.Location
	Err       error
}

// ForecastLoadedMsg carries the answer to one forecast fetch.
type ForecastLoadedMsg struct {
	gen      uint64
	City     string
	Forecast *models.Forecast
	Err      error
}

// requests tracks the newest request of one kind. Every request gets a
// generation number; when stale responses are discarded, starting a request
// also cancels the one before it.
type requests struct {
	gen    uint64
	cancel context.CancelFunc
}

func (r *requests) start(parent context.Context, discardStale bool) (context.Context, uint64, context.CancelFunc) {
	if discardStale && r.cancel != nil {
		r.cancel()
	}
	r.gen++
	ctx, cancel := context.WithCancel(parent)
	r.cancel = cancel
	return ctx, r.gen, cancel
}

// accept reports whether a response for gen should be applied.
func (r *requests) accept(gen uint64, discardStale bool) bool {
	return !discardStale || gen == r.gen
}

// invalidate makes every outstanding request stale.
func (r *requests) invalidate() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.gen++
}

func searchCmd(ctx context.Context, cancel context.CancelFunc, client WeatherClient, gen uint64, query string) tea.Cmd {
	return func() tea.Msg {
		defer cancel()
		locations, err := client.SearchLocations(ctx, query)
		return LocationsLoadedMsg{gen: gen, Query: query, Locations: locations, Err: err}
	}
}

func forecastCmd(ctx context.Context, cancel context.CancelFunc, client WeatherClient, gen uint64, city string, days int) tea.Cmd {
	return func() tea.Msg {
		defer cancel()
		forecast, err := client.FetchForecast(ctx, city, days)
		return ForecastLoadedMsg{gen: gen, City: city, Forecast: forecast, Err: err}
	}
}
