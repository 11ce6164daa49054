package repositories

import (
	"context"
	"net/http"
	"time"

	"weather-cards/config"
	"weather-cards/internal/models"
	"weather-cards/pkg/logger"
)

// WeatherRepository is the provider contract a card needs: the current
// reading of a city and the daily forecast at its coordinates.
type WeatherRepository interface {
	Name() string
	FetchCurrent(ctx context.Context, cityID int) (models.CurrentReading, error)
	FetchDaily(ctx context.Context, lat, lon float64) ([]models.DailyForecast, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// InitWeatherRepository builds the rate limited OpenWeatherMap repository
// described by the weather section of the config.
func InitWeatherRepository(cfg *config.Config, l *logger.Logger) (WeatherRepository, error) {
	httpClient := &http.Client{
		Timeout: time.Duration(cfg.Weather.Timeout) * time.Second,
	}

	owm, err := NewOpenWeatherMapRepository(cfg.Weather.APIKey, l, httpClient)
	if err != nil {
		return nil, err
	}
	owm.BaseURL = cfg.Weather.BaseURL
	owm.Lang = cfg.Weather.Lang

	return NewRateLimitedRepository(owm, cfg.Weather.RPS, cfg.Weather.Burst), nil
}
