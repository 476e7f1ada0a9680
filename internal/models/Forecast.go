package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Forecast is the current-plus-daily payload rendered by the screen.
// Every nested object is optional; use the accessors to read it.
type Forecast struct {
	Location *Location     `json:"location,omitempty"`
	Current  *Current      `json:"current,omitempty"`
	Forecast *ForecastDays `json:"forecast,omitempty"`
}

type Current struct {
	TempC     *float64   `json:"temp_c,omitempty" example:"18.5"`
	Humidity  *int       `json:"humidity,omitempty" example:"72"`
	WindKph   *float64   `json:"wind_kph,omitempty" example:"11.2"`
	Condition *Condition `json:"condition,omitempty"`
}

type Condition struct {
	Text string `json:"text" example:"Partly cloudy"`
}

type ForecastDays struct {
	ForecastDay []DailyForecast `json:"forecastday"`
}

type DailyForecast struct {
	Date  string `json:"date" example:"2024-05-14"`
	Astro *Astro `json:"astro,omitempty"`
	Day   *Day   `json:"day,omitempty"`
}

type Astro struct {
	Sunrise string `json:"sunrise" example:"05:42 AM"`
}

type Day struct {
	AvgTempC  *float64   `json:"avgtemp_c,omitempty" example:"17.3"`
	Condition *Condition `json:"condition,omitempty"`
}

func (f *Forecast) RequestParams() string {
	if f == nil || f.Location == nil {
		return "location: <none>"
	}
	return fmt.Sprintf("location: %s days: %d", f.Location.Label(), len(f.Days()))
}

func (f *Forecast) Place() (Location, bool) {
	if f == nil || f.Location == nil {
		return Location{}, false
	}
	return *f.Location, true
}

func (f *Forecast) CurrentTemp() (float64, bool) {
	if f == nil || f.Current == nil || f.Current.TempC == nil {
		return 0, false
	}
	return *f.Current.TempC, true
}

func (f *Forecast) CurrentHumidity() (int, bool) {
	if f == nil || f.Current == nil || f.Current.Humidity == nil {
		return 0, false
	}
	return *f.Current.Humidity, true
}

func (f *Forecast) CurrentWind() (float64, bool) {
	if f == nil || f.Current == nil || f.Current.WindKph == nil {
		return 0, false
	}
	return *f.Current.WindKph, true
}

func (f *Forecast) CurrentCondition() (string, bool) {
	if f == nil || f.Current == nil {
		return "", false
	}
	return f.Current.Condition.text()
}

// Days returns the daily entries in provider order.
func (f *Forecast) Days() []DailyForecast {
	if f == nil || f.Forecast == nil {
		return nil
	}
	return f.Forecast.ForecastDay
}

// Sunrise is taken from the first forecast day.
func (f *Forecast) Sunrise() (string, bool) {
	days := f.Days()
	if len(days) == 0 || days[0].Astro == nil || days[0].Astro.Sunrise == "" {
		return "", false
	}
	return days[0].Astro.Sunrise, true
}

func (d DailyForecast) AvgTemp() (float64, bool) {
	if d.Day == nil || d.Day.AvgTempC == nil {
		return 0, false
	}
	return *d.Day.AvgTempC, true
}

func (d DailyForecast) Condition() (string, bool) {
	if d.Day == nil {
		return "", false
	}
	return d.Day.Condition.text()
}

// DayName is the en-US weekday of the entry's date, e.g. "Tuesday".
func (d DailyForecast) DayName() string {
	return DayName(d.Date)
}

func (c *Condition) text() (string, bool) {
	if c == nil || c.Text == "" {
		return "", false
	}
	return c.Text, true
}

// DayName formats a YYYY-MM-DD calendar date as its long weekday name and
// keeps the leading token. The date is not shifted into any timezone.
// Input that does not parse is returned unchanged.
func DayName(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	name := t.Format("Monday, January 2")
	if i := strings.IndexByte(name, ' '); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSuffix(name, ",")
}

// FormatTemp renders a temperature in its shortest decimal form with a degree sign.
func FormatTemp(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "°"
}

func Float(v float64) *float64 {
	return &v
}

func Int(v int) *int {
	return &v
}
