package cards

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-cards/internal/models"
	"weather-cards/pkg/logger"
)

// fakeRepository serves city n at coordinates (n, -n) and answers later
// for lower ids, so completion order is the reverse of request order.
type fakeRepository struct {
	mu      sync.Mutex
	failing map[int]bool
	daily   []models.DailyForecast
	calls   int
}

func (f *fakeRepository) Name() string { return "fake" }

func (f *fakeRepository) FetchCurrent(ctx context.Context, cityID int) (models.CurrentReading, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	time.Sleep(time.Duration(30-cityID%30) * time.Millisecond)

	if f.failing[cityID] {
		return models.CurrentReading{}, errors.New("HTTP error (status 404): 404 Not Found")
	}

	return models.CurrentReading{
		Lat:            float64(cityID),
		Lon:            -float64(cityID),
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
	}, nil
}

func (f *fakeRepository) FetchDaily(ctx context.Context, lat, lon float64) ([]models.DailyForecast, error) {
	if lat != -lon {
		return nil, errors.New("forecast requested for the wrong coordinates")
	}
	return f.daily, nil
}

func week() []models.DailyForecast {
	days := make([]models.DailyForecast, 8)
	for i := range days {
		days[i] = models.DailyForecast{TempMax: 21.6 + float64(i), TempMin: 13.5, Icon: "04d"}
	}
	return days
}

// friday is 2025-07-25.
func friday() time.Time {
	return time.Date(2025, time.July, 25, 12, 0, 0, 0, time.UTC)
}

func newTestService(repo *fakeRepository, limit int) *CardService {
	l := logger.NewZapLogger("test-app", io.Discard)
	return NewCardService(repo, l, "", limit).WithClock(friday)
}

func dataView(ids ...int) models.DataView {
	view := models.DataView{}
	for _, id := range ids {
		view.Rows = append(view.Rows, models.Row{CityID: models.CityID(id), Color: "#4f81bd"})
	}
	return view
}

func TestBuildCard(t *testing.T) {
	svc := newTestService(&fakeRepository{daily: week()}, 20)

	card, err := svc.BuildCard(context.Background(), models.Selection{CityID: 2643743, ColorHex: "#ff0000"})
	require.NoError(t, err)

	assert.Equal(t, 2643743, card.CityID)
	assert.Equal(t, "#ff0000", card.Color)
	assert.Equal(t, "London, GB", card.Location)
	assert.Equal(t, "light rain. Visibility 10 KM", card.WeatherLine)
	assert.Equal(t, "Jul 25, 4:00 PM", card.Time)
	assert.Equal(t, "Wind: ↙ SW 4.12 m/s", card.Wind)
	assert.Equal(t, "Humidity: 81 %", card.Humidity)
	assert.Equal(t, "https://openweathermap.org/img/wn/10d@4x.png", card.IconURL)
	assert.Equal(t, 18, card.TempC)
	assert.Equal(t, 64, card.TempF)

	// entry 0 is today and is dropped
	require.Len(t, card.Forecast, 7)
	labels := make([]string, 0, len(card.Forecast))
	for _, day := range card.Forecast {
		labels = append(labels, day.Day)
	}
	assert.Equal(t, []string{"Sat", "Sun", "Mon", "Tue", "Wed", "Thur", "Fri"}, labels)

	assert.Equal(t, models.ForecastDay{
		Day:     "Sat",
		IconURL: "https://openweathermap.org/img/wn/04d.png",
		HighC:   23,
		LowC:    14,
		HighF:   73,
		LowF:    57,
	}, card.Forecast[0])
}

func TestBuildCard_ShortForecast(t *testing.T) {
	svc := newTestService(&fakeRepository{daily: week()[:1]}, 20)

	card, err := svc.BuildCard(context.Background(), models.Selection{CityID: 1})
	require.NoError(t, err)
	assert.Empty(t, card.Forecast)
}

func TestBuildCard_PropagatesFetchError(t *testing.T) {
	svc := newTestService(&fakeRepository{failing: map[int]bool{7: true}}, 20)

	_, err := svc.BuildCard(context.Background(), models.Selection{CityID: 7})
	assert.Error(t, err)
}

func TestRender_OneCardPerCityInInputOrder(t *testing.T) {
	repo := &fakeRepository{daily: week()}
	svc := newTestService(repo, 20)

	ids := []int{5, 1, 17, 3, 12, 8}
	result := svc.Render(context.Background(), dataView(ids...))

	require.Len(t, result.Cards, len(ids))
	for i, card := range result.Cards {
		assert.Equal(t, ids[i], card.CityID)
	}
	assert.Equal(t, len(ids), result.Requested)
	assert.Empty(t, result.Notice)
	assert.Empty(t, result.Errors)
}

func TestRender_OnlyFirstTwentyRender(t *testing.T) {
	repo := &fakeRepository{daily: week()}
	svc := newTestService(repo, 20)

	ids := make([]int, 0, 24)
	for i := 1; i <= 24; i++ {
		ids = append(ids, i)
	}
	result := svc.Render(context.Background(), dataView(ids...))

	require.Len(t, result.Cards, 20)
	for i, card := range result.Cards {
		assert.Equal(t, i+1, card.CityID)
	}
	assert.Equal(t, 24, result.Requested)
	assert.Equal(t, "Only the first 20 of 24 cities are shown", result.Notice)
	assert.Equal(t, 20, repo.calls)
}

func TestRender_FailedCardIsOmitted(t *testing.T) {
	repo := &fakeRepository{daily: week(), failing: map[int]bool{2: true}}
	svc := newTestService(repo, 20)

	result := svc.Render(context.Background(), dataView(1, 2, 3))

	require.Len(t, result.Cards, 2)
	assert.Equal(t, 1, result.Cards[0].CityID)
	assert.Equal(t, 3, result.Cards[1].CityID)
}

func TestRender_DataViewErrors(t *testing.T) {
	repo := &fakeRepository{daily: week()}
	svc := newTestService(repo, 20)

	view := dataView(1, 2)
	view.Errors = []string{"Column 'City ID' is missing"}

	result := svc.Render(context.Background(), view)

	assert.Empty(t, result.Cards)
	assert.Equal(t, view.Errors, result.Errors)
	assert.Equal(t, 0, repo.calls)
}

func TestRender_Empty(t *testing.T) {
	svc := newTestService(&fakeRepository{}, 20)

	result := svc.Render(context.Background(), models.DataView{})
	assert.NotNil(t, result.Cards)
	assert.Empty(t, result.Cards)
	assert.Equal(t, 0, result.Requested)
}
