package repositories

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"weather-cards/internal/models"
)

// RateLimitedRepository makes every outbound call of the wrapped repository
// wait on one shared token bucket.
type RateLimitedRepository struct {
	repo    WeatherRepository
	limiter *rate.Limiter
}

// NewRateLimitedRepository allows rps requests per second with bursts of up
// to burst requests.
func NewRateLimitedRepository(repo WeatherRepository, rps float64, burst int) *RateLimitedRepository {
	return &RateLimitedRepository{
		repo:    repo,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedRepository) Name() string {
	return r.repo.Name()
}

func (r *RateLimitedRepository) FetchCurrent(ctx context.Context, cityID int) (models.CurrentReading, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.CurrentReading{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.repo.FetchCurrent(ctx, cityID)
}

func (r *RateLimitedRepository) FetchDaily(ctx context.Context, lat, lon float64) ([]models.DailyForecast, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.repo.FetchDaily(ctx, lat, lon)
}

var (
	_ WeatherRepository = (*OpenWeatherMapRepository)(nil)
	_ WeatherRepository = (*RateLimitedRepository)(nil)
)
