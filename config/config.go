package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config/config.yaml"
	DefaultEnvPath    = ".env"
)

type Config struct {
	App     AppConfig     `yaml:"app" envconfig:"APP"`
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Weather WeatherConfig `yaml:"weather" envconfig:"WEATHER"`
	Cards   CardsConfig   `yaml:"cards" envconfig:"CARDS"`
	Log     LogConfig     `yaml:"log" envconfig:"LOG"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"NAME"`
	Version string `yaml:"version" envconfig:"VERSION"`
	Env     string `yaml:"env" envconfig:"ENV"`
}

// ServerConfig timeouts are in seconds.
type ServerConfig struct {
	Port         string `yaml:"port" envconfig:"PORT"`
	ReadTimeout  int    `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout int    `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout  int    `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
}

// WeatherConfig describes the OpenWeatherMap account used for every card.
type WeatherConfig struct {
	BaseURL     string  `yaml:"base_url" envconfig:"BASE_URL"`
	IconBaseURL string  `yaml:"icon_base_url" envconfig:"ICON_BASE_URL"`
	APIKey      string  `yaml:"api_key,omitempty" envconfig:"API_KEY"`
	Lang        string  `yaml:"lang,omitempty" envconfig:"OWM_LANG"`
	Timeout     int     `yaml:"timeout" envconfig:"TIMEOUT"`
	RPS         float64 `yaml:"rps" envconfig:"RPS"`
	Burst       int     `yaml:"burst" envconfig:"BURST"`
}

type CardsConfig struct {
	// Limit is the number of cities OpenWeatherMap allows per render.
	Limit int `yaml:"limit" envconfig:"LIMIT"`
}

type LogConfig struct {
	Level     string `yaml:"level" envconfig:"LEVEL"`
	SentryDSN string `yaml:"sentry_dsn,omitempty" envconfig:"SENTRY_DSN"`
}

// ConfigProvider loads and validates the service configuration.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider reads defaults, then the YAML file, then the environment.
type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := defaults()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	// Override with environment variables
	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

// loadFromFile is a no-op when the file does not exist.
func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(cnf *Config) error {
	var problems []string

	if strings.TrimSpace(cnf.App.Name) == "" {
		problems = append(problems, "app.name is required")
	}
	if strings.TrimSpace(cnf.Server.Port) == "" {
		problems = append(problems, "server.port is required")
	}
	if cnf.Server.ReadTimeout <= 0 || cnf.Server.WriteTimeout <= 0 || cnf.Server.IdleTimeout <= 0 {
		problems = append(problems, "server timeouts must be positive")
	}
	if strings.TrimSpace(cnf.Weather.BaseURL) == "" {
		problems = append(problems, "weather.base_url is required")
	}
	if cnf.Weather.Lang != "" {
		if _, err := language.Parse(cnf.Weather.Lang); err != nil {
			problems = append(problems, fmt.Sprintf("weather.lang %q is not a valid language tag", cnf.Weather.Lang))
		}
	}
	if cnf.Weather.RPS <= 0 || cnf.Weather.Burst <= 0 {
		problems = append(problems, "weather.rps and weather.burst must be positive")
	}
	if cnf.Cards.Limit <= 0 {
		problems = append(problems, "cards.limit must be positive")
	}
	switch cnf.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q is not supported", cnf.Log.Level))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}

	return nil
}

// NewConfig loads the configuration from CONFIG_PATH (default config/config.yaml).
// Variables from a .env file in the working directory are exported first;
// variables already set in the environment win.
func NewConfig() (*Config, error) {
	if err := loadDotEnv(DefaultEnvPath); err != nil {
		return nil, err
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = DefaultConfigPath
	}

	return NewConfigWithProvider(NewFileConfigProvider(path))
}

func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
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

func defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-cards",
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
			BaseURL:     "https://api.openweathermap.org/data/2.5",
			IconBaseURL: "https://openweathermap.org/img/wn",
			Timeout:     10,
			RPS:         10,
			Burst:       20,
		},
		Cards: CardsConfig{
			Limit: 20,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
