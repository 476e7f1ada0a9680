package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "config/config.yaml"

type Config struct {
	App     AppConfig     `yaml:"app"`
	Server  ServerConfig  `yaml:"server"`
	Weather WeatherConfig `yaml:"weather"`
	Screen  ScreenConfig  `yaml:"screen"`
	Log     LogConfig     `yaml:"log"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"NAME"`
	Version string `yaml:"version" envconfig:"VERSION"`
	Env     string `yaml:"env" envconfig:"ENV"`
}

// ServerConfig holds the HTTP facade settings. Timeouts are in seconds.
type ServerConfig struct {
	Port         string `yaml:"port" envconfig:"PORT"`
	ReadTimeout  int    `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout int    `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout  int    `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
}

type WeatherConfig struct {
	// Provider selects one of APIs by name.
	Provider string             `yaml:"provider" envconfig:"PROVIDER"`
	APIKey   string             `yaml:"-" envconfig:"API_KEY"`
	APIs     []WeatherAPIConfig `yaml:"apis" ignored:"true"`
}

type WeatherAPIConfig struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url,omitempty"`
	// GeoURL is only used by providers with a separate geocoding endpoint.
	GeoURL  string `yaml:"geo_url,omitempty"`
	APIKey  string `yaml:"api_key,omitempty"`
	Timeout int    `yaml:"timeout"`
}

// ScreenConfig carries the knobs of the interactive screen.
type ScreenConfig struct {
	DefaultCity    string `yaml:"default_city" envconfig:"DEFAULT_CITY"`
	ForecastDays   int    `yaml:"forecast_days" envconfig:"FORECAST_DAYS"`
	MinQueryLength int    `yaml:"min_query_length" envconfig:"MIN_QUERY_LENGTH"`
	DebounceMS     int    `yaml:"debounce_ms" envconfig:"DEBOUNCE_MS"`
	// DiscardStale cancels superseded requests and ignores their late responses.
	DiscardStale bool `yaml:"discard_stale" envconfig:"DISCARD_STALE"`
}

type LogConfig struct {
	Level     string `yaml:"level" envconfig:"LEVEL"`
	Format    string `yaml:"format" envconfig:"FORMAT"`
	File      string `yaml:"file" envconfig:"FILE"`
	SentryDSN string `yaml:"sentry_dsn" envconfig:"SENTRY_DSN"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

// Load applies defaults, then the YAML file (if present), then environment variables.
func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := Defaults()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	cnf.applyAPIKey()

	return cnf, nil
}

func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	var problems []string

	if strings.TrimSpace(config.App.Name) == "" {
		problems = append(problems, "app.name is required")
	}
	if strings.TrimSpace(config.Server.Port) == "" {
		problems = append(problems, "server.port is required")
	}
	if config.Server.ReadTimeout <= 0 || config.Server.WriteTimeout <= 0 || config.Server.IdleTimeout <= 0 {
		problems = append(problems, "server timeouts must be positive")
	}

	for i, api := range config.Weather.APIs {
		if strings.TrimSpace(api.Name) == "" {
			problems = append(problems, fmt.Sprintf("weather.apis[%d].name is required", i))
		}
		if api.Timeout < 0 {
			problems = append(problems, fmt.Sprintf("weather.apis[%d].timeout must not be negative", i))
		}
	}

	if strings.TrimSpace(config.Screen.DefaultCity) == "" {
		problems = append(problems, "screen.default_city is required")
	}
	if config.Screen.ForecastDays < 1 || config.Screen.ForecastDays > MaxForecastDays {
		problems = append(problems, fmt.Sprintf("screen.forecast_days must be between 1 and %d", MaxForecastDays))
	}
	if config.Screen.MinQueryLength < 0 {
		problems = append(problems, "screen.min_query_length must not be negative")
	}
	if config.Screen.DebounceMS < 0 {
		problems = append(problems, "screen.debounce_ms must not be negative")
	}

	switch config.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", config.Log.Level))
	}
	switch config.Log.Format {
	case "json", "console":
	default:
		problems = append(problems, fmt.Sprintf("log.format %q is not one of json, console", config.Log.Format))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}

	return nil
}

// NewConfig loads the config from DefaultConfigPath.
func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(DefaultConfigPath))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, err
	}

	return cnf, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c *Config) GetWeatherAPIs() []WeatherAPIConfig {
	return c.Weather.APIs
}

func (c *Config) GetWeatherAPIByName(name string) (*WeatherAPIConfig, bool) {
	apis := c.GetWeatherAPIs()
	for i := range apis {
		if apis[i].Name == name {
			return &apis[i], true
		}
	}
	return nil, false
}

// ActiveWeatherAPI returns the settings of the selected provider. A provider
// missing from the APIs list gets an entry with only its name set.
func (c *Config) ActiveWeatherAPI() WeatherAPIConfig {
	if api, ok := c.GetWeatherAPIByName(c.Weather.Provider); ok {
		return *api
	}
	return WeatherAPIConfig{Name: c.Weather.Provider, APIKey: c.Weather.APIKey}
}

// applyAPIKey lets WEATHER_API_KEY override the key of the selected provider.
func (c *Config) applyAPIKey() {
	if c.Weather.APIKey == "" {
		return
	}
	if api, ok := c.GetWeatherAPIByName(c.Weather.Provider); ok {
		api.APIKey = c.Weather.APIKey
	}
}
