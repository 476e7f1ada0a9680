package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayName(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-05-14", "Tuesday"},
		{"2024-05-18", "Saturday"},
		{"2024-12-30", "Monday"},
		{"2025-07-25", "Friday"},
		{"not-a-date", "not-a-date"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, DayName(tt.date))
		})
	}
}

func TestFormatTemp(t *testing.T) {
	assert.Equal(t, "18.5°", FormatTemp(18.5))
	assert.Equal(t, "20°", FormatTemp(20))
	assert.Equal(t, "-3.2°", FormatTemp(-3.2))
}

func TestLocationLabel(t *testing.T) {
	assert.Equal(t, "London, UK", Location{Name: "London", Country: "UK"}.Label())
	assert.Equal(t, "Atlantis", Location{Name: "Atlantis"}.Label())
}

func TestForecast_Accessors(t *testing.T) {
	payload := `{
		"location": {"name": "London", "country": "United Kingdom"},
		"current": {"temp_c": 18.5, "humidity": 72, "wind_kph": 11.2, "condition": {"text": "Partly cloudy"}},
		"forecast": {"forecastday": [
			{"date": "2024-05-14", "astro": {"sunrise": "05:12 AM"}, "day": {"avgtemp_c": 17.3, "condition": {"text": "Sunny"}}},
			{"date": "2024-05-15", "day": {"condition": {"text": "Light rain"}}}
		]}
	}`

	var f Forecast
	require.NoError(t, json.Unmarshal([]byte(payload), &f))

	place, ok := f.Place()
	require.True(t, ok)
	assert.Equal(t, "London", place.Name)

	temp, ok := f.CurrentTemp()
	require.True(t, ok)
	assert.Equal(t, 18.5, temp)

	humidity, ok := f.CurrentHumidity()
	require.True(t, ok)
	assert.Equal(t, 72, humidity)

	wind, ok := f.CurrentWind()
	require.True(t, ok)
	assert.Equal(t, 11.2, wind)

	text, ok := f.CurrentCondition()
	require.True(t, ok)
	assert.Equal(t, "Partly cloudy", text)

	sunrise, ok := f.Sunrise()
	require.True(t, ok)
	assert.Equal(t, "05:12 AM", sunrise)

	days := f.Days()
	require.Len(t, days, 2)
	assert.Equal(t, "Tuesday", days[0].DayName())
	avg, ok := days[0].AvgTemp()
	assert.True(t, ok)
	assert.Equal(t, 17.3, avg)

	_, ok = days[1].AvgTemp()
	assert.False(t, ok)
	cond, ok := days[1].Condition()
	assert.True(t, ok)
	assert.Equal(t, "Light rain", cond)
}

func TestForecast_MissingFields(t *testing.T) {
	var nilForecast *Forecast
	_, ok := nilForecast.CurrentTemp()
	assert.False(t, ok)
	assert.Nil(t, nilForecast.Days())

	f := &Forecast{Current: &Current{}}
	_, ok = f.Place()
	assert.False(t, ok)
	_, ok = f.CurrentTemp()
	assert.False(t, ok)
	_, ok = f.CurrentHumidity()
	assert.False(t, ok)
	_, ok = f.CurrentWind()
	assert.False(t, ok)
	_, ok = f.CurrentCondition()
	assert.False(t, ok)
	_, ok = f.Sunrise()
	assert.False(t, ok)

	_, ok = DailyForecast{Date: "2024-05-14"}.Condition()
	assert.False(t, ok)
	assert.Equal(t, "location: <none>", f.RequestParams())
}
