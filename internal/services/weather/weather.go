package weather

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"weather-screen/config"
	"weather-screen/internal/models"
	"weather-screen/internal/repositories"
	"weather-screen/pkg/logger"
)

var (
	ErrEmptyQuery = errors.New("search query is empty")
	ErrEmptyCity  = errors.New("city name is empty")
	// ErrEmptyForecast is returned when the provider answers without a payload.
	ErrEmptyForecast = errors.New("provider returned no forecast")
)

// WeatherService fronts one weather provider for the screen and the HTTP API.
type WeatherService struct {
	repo repositories.WeatherRepository
	l    *logger.Logger
}

func NewWeatherService(repo repositories.WeatherRepository, l *logger.Logger) *WeatherService {
	return &WeatherService{
		repo: repo,
		l:    l,
	}
}

func (s *WeatherService) Provider() string {
	return s.repo.Name()
}

// SearchLocations resolves a city-name fragment to candidate locations,
// in provider order.
func (s *WeatherService) SearchLocations(ctx context.Context, query string) ([]models.Location, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	start := time.Now()
	s.l.Debug("searching locations", map[string]any{"repo": s.repo.Name(), "query": query})

	locations, err := s.repo.SearchLocations(ctx, query)
	if err != nil {
		s.l.Warning("failed to search locations", map[string]any{"repo": s.repo.Name(), "query": query, "err": err})
		return nil, errors.Wrapf(err, "search locations %q", query)
	}

	s.l.Info("successfully searched locations", map[string]any{
		"repo":      s.repo.Name(),
		"query":     query,
		"locations": len(locations),
		"took":      time.Since(start).String(),
	})

	return locations, nil
}

// FetchForecast returns the forecast for city. A horizon outside
// 1..MaxForecastDays is replaced: non-positive means the default, larger
// values are capped.
func (s *WeatherService) FetchForecast(ctx context.Context, city string, days int) (*models.Forecast, error) {
	if strings.TrimSpace(city) == "" {
		return nil, ErrEmptyCity
	}

	switch {
	case days <= 0:
		days = config.DefaultForecastDays
	case days > config.MaxForecastDays:
		s.l.Warning("forecast horizon capped", map[string]any{"requested": days, "max": config.MaxForecastDays})
		days = config.MaxForecastDays
	}

	start := time.Now()
	s.l.Info("starting forecast fetch", map[string]any{
		"repo": s.repo.Name(),
		"city": city,
		"days": days,
	})

	forecast, err := s.repo.FetchForecast(ctx, city, days)
	if err != nil {
		s.l.Error(err, map[string]any{
			"repo": s.repo.Name(),
			"city": city,
			"days": days,
		})
		return nil, errors.Wrapf(err, "fetch forecast for %q", city)
	}
	if forecast == nil {
		s.l.Warning("provider returned no forecast", map[string]any{"repo": s.repo.Name(), "city": city})
		return nil, errors.Wrapf(ErrEmptyForecast, "fetch forecast for %q", city)
	}

	s.l.Info("successfully fetched forecast", map[string]any{
		"repo":   s.repo.Name(),
		"params": forecast.RequestParams(),
		"took":   time.Since(start).String(),
	})

	return forecast, nil
}
