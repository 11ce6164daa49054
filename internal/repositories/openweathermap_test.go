package repositories

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-cards/internal/models"
	"weather-cards/pkg/logger"
)

const currentLondon = `{
  "coord": {"lon": -0.1257, "lat": 51.5085},
  "weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}],
  "main": {"temp": 17.62, "humidity": 81},
  "visibility": 10000,
  "wind": {"speed": 4.12, "deg": 230},
  "dt": 1753455600,
  "timezone": 3600,
  "sys": {"country": "GB"},
  "id": 2643743,
  "name": "London",
  "cod": 200
}`

const oneCallLondon = `{
  "lat": 51.5085, "lon": -0.1257, "timezone": "Europe/London",
  "daily": [
    {"dt": 1753444800, "temp": {"min": 14.1, "max": 21.6}, "weather": [{"icon": "10d"}]},
    {"dt": 1753531200, "temp": {"min": 13.5, "max": 22.4}, "weather": [{"icon": "04d"}]}
  ]
}`

func newTestRepository(t *testing.T, baseURL string) *OpenWeatherMapRepository {
	t.Helper()

	repo, err := NewOpenWeatherMapRepository("test-key", logger.NewZapLogger("test-app", io.Discard), http.DefaultClient)
	require.NoError(t, err)
	repo.BaseURL = baseURL

	return repo
}

func TestOpenWeatherMapRepository_FetchCurrent(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "2643743", r.URL.Query().Get("id"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "de", r.URL.Query().Get("lang"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(currentLondon))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)
	repo.Lang = "de"

	reading, err := repo.FetchCurrent(context.Background(), 2643743)
	require.NoError(t, err)

	assert.Equal(t, models.CurrentReading{
		Lat:            51.5085,
		Lon:            -0.1257,
		Name:           "London",
		Country:        "GB",
		Description:    "light rain",
		Visibility:     10000,
		Timestamp:      1753455600,
		TimezoneOffset: 3600,
		WindDeg:        230,
		WindSpeed:      4.12,
		Humidity:       81,
		Icon:           "10d",
		TempC:          17.62,
	}, reading)
}

func TestOpenWeatherMapRepository_FetchDaily(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/onecall", r.URL.Path)
		assert.Equal(t, "51.5085", r.URL.Query().Get("lat"))
		assert.Equal(t, "-0.1257", r.URL.Query().Get("lon"))
		assert.Equal(t, "current,minutely,hourly,alerts", r.URL.Query().Get("exclude"))
		assert.Empty(t, r.URL.Query().Get("lang"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(oneCallLondon))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	days, err := repo.FetchDaily(context.Background(), 51.5085, -0.1257)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, models.DailyForecast{Timestamp: 1753531200, TempMax: 22.4, TempMin: 13.5, Icon: "04d"}, days[1])
}

func TestOpenWeatherMapRepository_APIError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod":401, "message": "Invalid API key."}`))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	_, err := repo.FetchCurrent(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
	assert.Contains(t, err.Error(), "Invalid API key.")
}

func TestOpenWeatherMapRepository_HTTPErrorWithoutBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	_, err := repo.FetchDaily(context.Background(), 1, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP error (status 502)")
}

func TestOpenWeatherMapRepository_InvalidJSON(t *testing.T) {
	// Create a mock server that returns invalid JSON
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("invalid json"))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	_, err := repo.FetchCurrent(context.Background(), 1)
	assert.ErrorContains(t, err, "failed to parse JSON response")

	_, err = repo.FetchDaily(context.Background(), 1, 2)
	assert.ErrorContains(t, err, "failed to parse JSON response")
}

func TestOpenWeatherMapRepository_MissingConditions(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Nowhere","weather":[],"daily":[{"dt":1,"weather":[{"icon":"01d"}]},{"dt":2,"weather":[]}]}`))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	_, err := repo.FetchCurrent(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoConditions)

	_, err = repo.FetchDaily(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrNoConditions)
}

func TestOpenWeatherMapRepository_TodayWithoutConditions(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"daily":[{"dt":1,"weather":[]},{"dt":2,"temp":{"min":3,"max":9},"weather":[{"icon":"13d"}]}]}`))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	days, err := repo.FetchDaily(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Empty(t, days[0].Icon)
	assert.Equal(t, "13d", days[1].Icon)
}

func TestOpenWeatherMapRepository_TransportErrorHidesAPIKey(t *testing.T) {
	repo, err := NewOpenWeatherMapRepository("SECRET-KEY-123", logger.NewZapLogger("test-app", io.Discard), http.DefaultClient)
	require.NoError(t, err)
	repo.BaseURL = "http://127.0.0.1:1"

	_, err = repo.FetchCurrent(context.Background(), 42)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SECRET-KEY-123")
	assert.Contains(t, err.Error(), "failed to do request to weather")

	_, err = repo.FetchDaily(context.Background(), 1, 2)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SECRET-KEY-123")
}

func TestOpenWeatherMapRepository_ContextCancellation(t *testing.T) {
	// Create a mock server that delays response
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond) // Simulate slow response
		_, _ = w.Write([]byte(currentLondon))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	// Create a context that cancels immediately
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FetchCurrent(ctx, 2643743)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewOpenWeatherMapRepository_EmptyKey(t *testing.T) {
	_, err := NewOpenWeatherMapRepository("  ", logger.NewZapLogger("test-app", io.Discard), http.DefaultClient)
	assert.ErrorIs(t, err, ErrEmptyAPIKey)

	repo := &OpenWeatherMapRepository{BaseURL: "http://127.0.0.1:1", l: logger.NewZapLogger("test-app", io.Discard)}
	_, err = repo.FetchCurrent(context.Background(), 1)
	assert.ErrorIs(t, err, ErrEmptyAPIKey)
}
