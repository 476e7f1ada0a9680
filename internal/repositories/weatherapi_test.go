package repositories

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-screen/pkg/logger"
)

const weatherAPIForecastBody = `{
	"location": {"name": "London", "region": "City of London, Greater London", "country": "United Kingdom", "lat": 51.52, "lon": -0.11},
	"current": {"temp_c": 18.5, "humidity": 72, "wind_kph": 11.2, "condition": {"text": "Partly cloudy", "code": 1003}},
	"forecast": {"forecastday": [
		{"date": "2024-05-14", "astro": {"sunrise": "05:12 AM", "sunset": "08:35 PM"}, "day": {"avgtemp_c": 17.3, "maxtemp_c": 21.0, "condition": {"text": "Sunny"}}},
		{"date": "2024-05-15", "astro": {"sunrise": "05:10 AM"}, "day": {"avgtemp_c": 15.1, "condition": {"text": "Patchy rain possible"}}},
		{"date": "2024-05-16", "astro": {"sunrise": "05:09 AM"}, "day": {"avgtemp_c": 14.0, "condition": {"text": "Moderate rain"}}}
	]}
}`

func newWeatherAPITestRepo(t *testing.T, handler http.HandlerFunc) *WeatherAPIRepository {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	repo, err := NewWeatherAPIRepository("test-key", logger.Nop(), server.Client())
	require.NoError(t, err)
	repo.BaseURL = server.URL
	return repo
}

func TestNewWeatherAPIRepository_EmptyKey(t *testing.T) {
	_, err := NewWeatherAPIRepository("  ", logger.Nop(), http.DefaultClient)
	assert.EqualError(t, err, "API key cannot be empty")
}

func TestWeatherAPIRepository_Name(t *testing.T) {
	repo := &WeatherAPIRepository{}
	assert.Equal(t, "weatherapi", repo.Name())
}

func TestWeatherAPIRepository_FetchForecast_Success(t *testing.T) {
	repo := newWeatherAPITestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast.json", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "London", r.URL.Query().Get("q"))
		assert.Equal(t, "7", r.URL.Query().Get("days"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(weatherAPIForecastBody))
	})

	forecast, err := repo.FetchForecast(context.Background(), "London", 7)
	require.NoError(t, err)

	place, ok := forecast.Place()
	require.True(t, ok)
	assert.Equal(t, "London", place.Name)
	assert.Equal(t, "United Kingdom", place.Country)

	temp, ok := forecast.CurrentTemp()
	require.True(t, ok)
	assert.Equal(t, 18.5, temp)

	text, ok := forecast.CurrentCondition()
	require.True(t, ok)
	assert.Equal(t, "Partly cloudy", text)

	days := forecast.Days()
	require.Len(t, days, 3)
	assert.Equal(t, "2024-05-14", days[0].Date)
	assert.Equal(t, "Tuesday", days[0].DayName())
	sunrise, ok := forecast.Sunrise()
	require.True(t, ok)
	assert.Equal(t, "05:12 AM", sunrise)
}

func TestWeatherAPIRepository_SearchLocations_Success(t *testing.T) {
	repo := newWeatherAPITestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		assert.Equal(t, "Lon", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`[
			{"id": 2801268, "name": "London", "region": "City of London, Greater London", "country": "United Kingdom", "lat": 51.52, "lon": -0.11, "url": "london"},
			{"id": 2796590, "name": "Londonderry", "region": "Derry", "country": "United Kingdom", "lat": 55.0, "lon": -7.31, "url": "londonderry"}
		]`))
	})

	locations, err := repo.SearchLocations(context.Background(), "Lon")
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "London", locations[0].Name)
	assert.Equal(t, "Londonderry", locations[1].Name)
	assert.Equal(t, "United Kingdom", locations[1].Country)
}

func TestWeatherAPIRepository_SearchLocations_Empty(t *testing.T) {
	repo := newWeatherAPITestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	locations, err := repo.SearchLocations(context.Background(), "zzzz")
	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestWeatherAPIRepository_FetchForecast_NoMatchingLocation(t *testing.T) {
	repo := newWeatherAPITestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"code": 1006, "message": "No matching location found."}}`))
	})

	_, err := repo.FetchForecast(context.Background(), "Nowhere", 7)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, 1006, apiErr.Code)
	assert.Equal(t, "No matching location found.", apiErr.Message)
	assert.True(t, IsNotFound(err))
}

func TestWeatherAPIRepository_FetchForecast_ServerError(t *testing.T) {
	repo := newWeatherAPITestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := repo.FetchForecast(context.Background(), "London", 7)
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "status 500")
}

func TestWeatherAPIRepository_FetchForecast_InvalidJSON(t *testing.T) {
	repo := newWeatherAPITestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("invalid json"))
	})

	_, err := repo.FetchForecast(context.Background(), "London", 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON response")
}

func TestWeatherAPIRepository_FetchForecast_ContextCancellation(t *testing.T) {
	repo := newWeatherAPITestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(weatherAPIForecastBody))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FetchForecast(ctx, "London", 7)
	assert.Error(t, err)
}
