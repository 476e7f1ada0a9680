package repositories

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"weather-screen/config"
	"weather-screen/internal/models"
	"weather-screen/pkg/logger"
)

// WeatherRepository is a remote weather provider.
type WeatherRepository interface {
	Name() string
	SearchLocations(ctx context.Context, query string) ([]models.Location, error)
	FetchForecast(ctx context.Context, city string, days int) (*models.Forecast, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIError is a non-200 answer from a provider.
type APIError struct {
	Provider string
	Status   int
	Code     int
	Message  string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: HTTP error (status %d)", e.Provider, e.Status)
	}
	return fmt.Sprintf("%s: HTTP error (status %d): %s", e.Provider, e.Status, e.Message)
}

// ErrLocationNotFound is returned when the provider has no match for a city.
var ErrLocationNotFound = errors.New("no matching location found")

// IsNotFound reports whether err means the requested location does not exist.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrLocationNotFound) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == weatherAPICodeNoLocation
}

// InitWeatherRepository builds the provider selected in cfg.
func InitWeatherRepository(cfg *config.Config, l *logger.Logger) (WeatherRepository, error) {
	api := cfg.ActiveWeatherAPI()

	timeout := api.Timeout
	if timeout <= 0 {
		timeout = config.DefaultAPITimeout
	}
	httpClient := &http.Client{Timeout: time.Duration(timeout) * time.Second}

	switch api.Name {
	case weatherAPIName:
		repo, err := NewWeatherAPIRepository(api.APIKey, l, httpClient)
		if err != nil {
			return nil, err
		}
		if api.BaseURL != "" {
			repo.BaseURL = api.BaseURL
		}
		return repo, nil
	case openMeteoName:
		repo := NewOpenMeteoRepository(l, httpClient)
		if api.BaseURL != "" {
			repo.BaseURL = api.BaseURL
		}
		if api.GeoURL != "" {
			repo.GeoURL = api.GeoURL
		}
		return repo, nil
		// Add more cases for new providers to extend the app
	}

	return nil, fmt.Errorf("unknown weather provider %q", api.Name)
}
