package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"weather-screen/internal/models"
	"weather-screen/pkg/logger"
)

const (
	WeatherAPIBaseURL = "https://api.weatherapi.com/v1"

	weatherAPIName           = "weatherapi"
	weatherAPICodeNoLocation = 1006
)

// WeatherAPIRepository talks to weatherapi.com, whose forecast payload
// is the shape models.Forecast mirrors.
type WeatherAPIRepository struct {
	BaseURL    string
	APIKey     string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewWeatherAPIRepository(apiKey string, l *logger.Logger, httpClient HTTPClient) (*WeatherAPIRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}

	return &WeatherAPIRepository{
		BaseURL:    WeatherAPIBaseURL,
		APIKey:     apiKey,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (w *WeatherAPIRepository) Name() string {
	return weatherAPIName
}

type weatherAPIErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (w *WeatherAPIRepository) SearchLocations(ctx context.Context, query string) ([]models.Location, error) {
	params := url.Values{}
	params.Set("key", w.APIKey)
	params.Set("q", query)

	w.l.Info("making weatherapi search request", map[string]any{
		"query": query,
	})

	var locations []models.Location
	if err := w.get(ctx, "search.json", params, &locations); err != nil {
		return nil, err
	}

	w.l.Info("parsed weatherapi search response", map[string]any{
		"query":     query,
		"locations": len(locations),
	})

	return locations, nil
}

func (w *WeatherAPIRepository) FetchForecast(ctx context.Context, city string, days int) (*models.Forecast, error) {
	params := url.Values{}
	params.Set("key", w.APIKey)
	params.Set("q", city)
	params.Set("days", strconv.Itoa(days))
	params.Set("aqi", "no")
	params.Set("alerts", "no")

	w.l.Info("making weatherapi forecast request", map[string]any{
		"city": city,
		"days": days,
	})

	var forecast models.Forecast
	if err := w.get(ctx, "forecast.json", params, &forecast); err != nil {
		return nil, err
	}

	w.l.Info("parsed weatherapi forecast response", map[string]any{
		"params": forecast.RequestParams(),
	})

	return &forecast, nil
}

func (w *WeatherAPIRepository) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	u := fmt.Sprintf("%s/%s?%s", strings.TrimRight(w.BaseURL, "/"), endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	w.l.Info("received weatherapi API response", map[string]any{
		"endpoint":   endpoint,
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Provider: w.Name(), Status: resp.StatusCode}
		var errorResp weatherAPIErrorResponse
		if jsonErr := json.Unmarshal(body, &errorResp); jsonErr == nil {
			apiErr.Code = errorResp.Error.Code
			apiErr.Message = errorResp.Error.Message
		}
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return nil
}
