package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weather-screen/internal/models"
	"weather-screen/pkg/logger"
)

const (
	OpenMeteoBaseURL = "https://api.open-meteo.com/v1"
	OpenMeteoGeoURL  = "https://geocoding-api.open-meteo.com/v1"

	openMeteoName        = "open-meteo"
	openMeteoSearchCount = 10
)

// OpenMeteoRepository needs no API key. Its geocoding and forecast answers
// are normalized into the weatherapi-shaped models.Forecast.
type OpenMeteoRepository struct {
	BaseURL    string
	GeoURL     string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenMeteoRepository(l *logger.Logger, httpClient HTTPClient) *OpenMeteoRepository {
	return &OpenMeteoRepository{
		BaseURL:    OpenMeteoBaseURL,
		GeoURL:     OpenMeteoGeoURL,
		httpClient: httpClient,
		l:          l,
	}
}

func (o *OpenMeteoRepository) Name() string {
	return openMeteoName
}

type OpenMeteoErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

type openMeteoGeocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
	} `json:"results"`
}

type OpenMeteoResponse struct {
	Current struct {
		Temperature2m      *float64 `json:"temperature_2m"`
		RelativeHumidity2m *float64 `json:"relative_humidity_2m"`
		WindSpeed10m       *float64 `json:"wind_speed_10m"`
		WeatherCode        *int     `json:"weather_code"`
		IsDay              *int     `json:"is_day"`
	} `json:"current"`
	Daily struct {
		Time             []string   `json:"time"`
		WeatherCode      []*int     `json:"weather_code"`
		Temperature2mMax []*float64 `json:"temperature_2m_max"`
		Temperature2mMin []*float64 `json:"temperature_2m_min"`
		Sunrise          []string   `json:"sunrise"`
	} `json:"daily"`
}

func (o *OpenMeteoRepository) SearchLocations(ctx context.Context, query string) ([]models.Location, error) {
	return o.geocode(ctx, query, openMeteoSearchCount)
}

func (o *OpenMeteoRepository) FetchForecast(ctx context.Context, city string, days int) (*models.Forecast, error) {
	matches, err := o.geocode(ctx, city, 1)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s %q: %w", o.Name(), city, ErrLocationNotFound)
	}
	place := matches[0]

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(place.Lat, 'f', 4, 64))
	params.Set("longitude", strconv.FormatFloat(place.Lon, 'f', 4, 64))
	params.Set("current", "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code,is_day")
	params.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,sunrise")
	params.Set("forecast_days", strconv.Itoa(days))
	params.Set("timezone", "auto")

	o.l.Info("making openmeteo forecast request", map[string]any{
		"city": place.Label(),
		"lat":  place.Lat,
		"lon":  place.Lon,
		"days": days,
	})

	var response OpenMeteoResponse
	if err := o.get(ctx, strings.TrimRight(o.BaseURL, "/")+"/forecast", params, &response); err != nil {
		return nil, err
	}

	o.l.Info("parsed openmeteo forecast response", map[string]any{
		"days": len(response.Daily.Time),
	})

	if len(response.Daily.Time) == 0 {
		return nil, fmt.Errorf("no forecast data available")
	}

	return buildOpenMeteoForecast(place, response), nil
}

func (o *OpenMeteoRepository) geocode(ctx context.Context, name string, count int) ([]models.Location, error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("count", strconv.Itoa(count))
	params.Set("language", "en")
	params.Set("format", "json")

	o.l.Info("making openmeteo geocoding request", map[string]any{
		"name":  name,
		"count": count,
	})

	var response openMeteoGeocodingResponse
	if err := o.get(ctx, strings.TrimRight(o.GeoURL, "/")+"/search", params, &response); err != nil {
		return nil, err
	}

	locations := make([]models.Location, 0, len(response.Results))
	for _, r := range response.Results {
		locations = append(locations, models.Location{
			Name:    r.Name,
			Region:  r.Admin1,
			Country: r.Country,
			Lat:     r.Latitude,
			Lon:     r.Longitude,
		})
	}

	return locations, nil
}

func (o *OpenMeteoRepository) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	u := endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := o.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	o.l.Info("received openmeteo API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Provider: o.Name(), Status: resp.StatusCode}
		var errorResp OpenMeteoErrorResponse
		if jsonErr := json.Unmarshal(body, &errorResp); jsonErr == nil && errorResp.Error {
			apiErr.Message = errorResp.Reason
		}
		return apiErr
	}

	if err = json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return nil
}

func buildOpenMeteoForecast(place models.Location, response OpenMeteoResponse) *models.Forecast {
	location := place
	forecast := &models.Forecast{
		Location: &location,
		Current: &models.Current{
			TempC:   response.Current.Temperature2m,
			WindKph: response.Current.WindSpeed10m,
		},
		Forecast: &models.ForecastDays{},
	}

	if h := response.Current.RelativeHumidity2m; h != nil {
		forecast.Current.Humidity = models.Int(int(math.Round(*h)))
	}
	if code := response.Current.WeatherCode; code != nil {
		forecast.Current.Condition = &models.Condition{Text: currentConditionText(*code, response.Current.IsDay)}
	}

	daily := response.Daily
	for i, date := range daily.Time {
		day := models.DailyForecast{Date: date, Day: &models.Day{}}

		if i < len(daily.Sunrise) {
			if sunrise, ok := formatSunrise(daily.Sunrise[i]); ok {
				day.Astro = &models.Astro{Sunrise: sunrise}
			}
		}
		if i < len(daily.WeatherCode) && daily.WeatherCode[i] != nil {
			day.Day.Condition = &models.Condition{Text: WMOConditionText(*daily.WeatherCode[i])}
		}
		if i < len(daily.Temperature2mMax) && i < len(daily.Temperature2mMin) &&
			daily.Temperature2mMax[i] != nil && daily.Temperature2mMin[i] != nil {
			avg := (*daily.Temperature2mMax[i] + *daily.Temperature2mMin[i]) / 2
			day.Day.AvgTempC = models.Float(math.Round(avg*10) / 10)
		}

		forecast.Forecast.ForecastDay = append(forecast.Forecast.ForecastDay, day)
	}

	return forecast
}

// formatSunrise turns Open-Meteo's local "2006-01-02T15:04" into "03:04 PM".
func formatSunrise(value string) (string, bool) {
	t, err := time.Parse("2006-01-02T15:04", strings.TrimSpace(value))
	if err != nil {
		return "", false
	}
	return t.Format("03:04 PM"), true
}

// currentConditionText is WMOConditionText with weatherapi.com's night
// wording for a clear sky.
func currentConditionText(code int, isDay *int) string {
	if code == 0 && isDay != nil && *isDay == 0 {
		return "Clear"
	}
	return WMOConditionText(code)
}

// WMOConditionText maps a WMO weather interpretation code to the condition
// wording weatherapi.com uses, so both providers share one icon table.
func WMOConditionText(code int) string {
	switch code {
	case 0:
		return "Sunny"
	case 1, 2:
		return "Partly cloudy"
	case 3:
		return "Overcast"
	case 45, 48:
		return "Fog"
	case 51, 53, 55:
		return "Light drizzle"
	case 56, 57:
		return "Freezing drizzle"
	case 61:
		return "Light rain"
	case 63:
		return "Moderate rain"
	case 65:
		return "Heavy rain"
	case 66, 67:
		return "Moderate or heavy freezing rain"
	case 71:
		return "Light snow"
	case 73:
		return "Moderate snow"
	case 75:
		return "Heavy snow"
	case 77:
		return "Ice pellets"
	case 80:
		return "Light rain shower"
	case 81, 82:
		return "Moderate or heavy rain shower"
	case 85:
		return "Light snow showers"
	case 86:
		return "Moderate or heavy snow showers"
	case 95:
		return "Patchy light rain with thunder"
	case 96, 99:
		return "Moderate or heavy rain with thunder"
	}
	return "Unknown"
}
