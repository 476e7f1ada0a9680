package screen

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"weather-screen/config"
	"weather-screen/internal/models"
)

// fakeClient answers from canned tables and records every call.
type fakeClient struct {
	mu sync.Mutex

	locations     map[string][]models.Location
	searchErr     error
	forecasts     map[string]*models.Forecast
	forecastErr   error
	searchCalls   []string
	forecastCalls []forecastCall
}

type forecastCall struct {
	city string
	days int
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		locations: map[string][]models.Location{},
		forecasts: map[string]*models.Forecast{},
	}
}

func (c *fakeClient) SearchLocations(ctx context.Context, query string) ([]models.Location, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.searchCalls = append(c.searchCalls, query)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.searchErr != nil {
		return nil, c.searchErr
	}
	return c.locations[query], nil
}

func (c *fakeClient) FetchForecast(ctx context.Context, city string, days int) (*models.Forecast, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.forecastCalls = append(c.forecastCalls, forecastCall{city: city, days: days})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.forecastErr != nil {
		return nil, c.forecastErr
	}
	return c.forecasts[city], nil
}

func (c *fakeClient) searches() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.searchCalls...)
}

func (c *fakeClient) fetches() []forecastCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]forecastCall(nil), c.forecastCalls...)
}

func testScreenConfig() config.ScreenConfig {
	return config.ScreenConfig{
		DefaultCity:    "Istanbul",
		ForecastDays:   7,
		MinQueryLength: 2,
		DebounceMS:     1,
		DiscardStale:   true,
	}
}

// collect runs cmd and returns the screen messages it produces. Batches are
// flattened; anything else (cursor blinks, spinner ticks) is dropped.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(c)...)
			}
			return out
		}
		switch msg.(type) {
		case debounceMsg, LocationsLoadedMsg, ForecastLoadedMsg:
			return []tea.Msg{msg}
		}
		return nil
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

// settle feeds everything cmd produces back into the model until it goes quiet.
func settle(m *Model, cmd tea.Cmd) {
	queue := collect(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		_, next := m.Update(msg)
		queue = append(queue, collect(next)...)
	}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func istanbulForecast() *models.Forecast {
	return &models.Forecast{
		Location: &models.Location{Name: "Istanbul", Country: "Turkey"},
		Current: &models.Current{
			TempC:     models.Float(18.5),
			Humidity:  models.Int(72),
			WindKph:   models.Float(11.2),
			Condition: &models.Condition{Text: "Partly cloudy"},
		},
		Forecast: &models.ForecastDays{ForecastDay: []models.DailyForecast{
			{
				Date:  "2024-05-14",
				Astro: &models.Astro{Sunrise: "05:42 AM"},
				Day:   &models.Day{AvgTempC: models.Float(17.3), Condition: &models.Condition{Text: "Sunny"}},
			},
			{
				Date:  "2024-05-15",
				Astro: &models.Astro{Sunrise: "05:41 AM"},
				Day:   &models.Day{AvgTempC: models.Float(19), Condition: &models.Condition{Text: "Light rain"}},
			},
		}},
	}
}

func cityForecast(name, country string, days int) *models.Forecast {
	daily := make([]models.DailyForecast, 0, days)
	start := time.Date(2024, time.May, 13, 0, 0, 0, 0, time.UTC)
	for i := 0; i < days; i++ {
		daily = append(daily, models.DailyForecast{
			Date: start.AddDate(0, 0, i).Format(time.DateOnly),
			Day:  &models.Day{AvgTempC: models.Float(float64(10 + i)), Condition: &models.Condition{Text: "Cloudy"}},
		})
	}
	return &models.Forecast{
		Location: &models.Location{Name: name, Country: country},
		Current:  &models.Current{TempC: models.Float(12), Condition: &models.Condition{Text: "Cloudy"}},
		Forecast: &models.ForecastDays{ForecastDay: daily},
	}
}
