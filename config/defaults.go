package config

const (
	DefaultCity           = "Istanbul"
	DefaultForecastDays   = 7
	MaxForecastDays       = 14
	DefaultMinQueryLength = 2
	DefaultDebounceMS     = 1200
	DefaultAPITimeout     = 30
)

// Defaults returns the configuration used when neither the YAML file nor
// the environment set a value.
func Defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-screen",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		Weather: WeatherConfig{
			Provider: "weatherapi",
		},
		Screen: ScreenConfig{
			DefaultCity:    DefaultCity,
			ForecastDays:   DefaultForecastDays,
			MinQueryLength: DefaultMinQueryLength,
			DebounceMS:     DefaultDebounceMS,
			DiscardStale:   true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
