package cards

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"weather-cards/internal/models"
	"weather-cards/internal/repositories"
	"weather-cards/pkg/logger"
)

const defaultIconBaseURL = "https://openweathermap.org/img/wn"

// CardService turns the host's city selections into weather cards.
type CardService struct {
	repo        repositories.WeatherRepository
	l           *logger.Logger
	iconBaseURL string
	limit       int
	now         func() time.Time
}

func NewCardService(repo repositories.WeatherRepository, l *logger.Logger, iconBaseURL string, limit int) *CardService {
	if iconBaseURL == "" {
		iconBaseURL = defaultIconBaseURL
	}

	return &CardService{
		repo:        repo,
		l:           l,
		iconBaseURL: strings.TrimRight(iconBaseURL, "/"),
		limit:       limit,
		now:         time.Now,
	}
}

// WithClock replaces the clock that decides which weekday is "today".
func (s *CardService) WithClock(now func() time.Time) *CardService {
	s.now = now
	return s
}

// Render builds one card per selected city. A data view carrying errors
// produces no cards. Cards that fail to build are left out; the rest keep
// the host's order.
func (s *CardService) Render(ctx context.Context, view models.DataView) *models.RenderResult {
	if len(view.Errors) > 0 {
		s.l.Warning("data view has errors, nothing rendered", map[string]any{"errors": view.Errors})
		return &models.RenderResult{
			Cards:     []models.Card{},
			Requested: len(view.Rows),
			Errors:    view.Errors,
		}
	}

	selections, total := view.Selections(s.limit)

	result := &models.RenderResult{
		Requested: total,
		Cards:     s.BuildCards(ctx, selections),
	}
	if total > len(selections) {
		result.Notice = fmt.Sprintf("Only the first %d of %d cities are shown", len(selections), total)
		s.l.Warning("too many cities selected", map[string]any{"requested": total, "limit": s.limit})
	}

	s.l.Info("render complete", map[string]any{
		"requested": total,
		"rendered":  len(result.Cards),
	})

	return result
}

// BuildCards builds all cards concurrently.
func (s *CardService) BuildCards(ctx context.Context, selections []models.Selection) []models.Card {
	built := make([]*models.Card, len(selections))

	var g errgroup.Group
	for i, sel := range selections {
		g.Go(func() error {
			card, err := s.BuildCard(ctx, sel)
			if err != nil {
				s.l.Warning("failed to build card", map[string]any{
					"city_id": sel.CityID,
					"err":     err.Error(),
				})
				return nil
			}
			built[i] = &card
			return nil
		})
	}
	_ = g.Wait()

	cards := make([]models.Card, 0, len(selections))
	for _, card := range built {
		if card != nil {
			cards = append(cards, *card)
		}
	}

	return cards
}

// BuildCard fetches the current weather, then the daily forecast at the
// returned coordinates, and lays both out as a card.
func (s *CardService) BuildCard(ctx context.Context, sel models.Selection) (models.Card, error) {
	s.l.Debug("building card", map[string]any{"city_id": sel.CityID, "color": sel.ColorHex})

	reading, err := s.repo.FetchCurrent(ctx, sel.CityID)
	if err != nil {
		return models.Card{}, err
	}

	daily, err := s.repo.FetchDaily(ctx, reading.Lat, reading.Lon)
	if err != nil {
		return models.Card{}, err
	}

	tempC := round(reading.TempC)
	card := models.Card{
		CityID:      sel.CityID,
		Color:       sel.ColorHex,
		Location:    reading.Name + ", " + reading.Country,
		WeatherLine: weatherLine(reading.Description, reading.Visibility),
		Time:        localTime(reading.Timestamp, reading.TimezoneOffset),
		Wind:        windLine(reading.WindDeg, reading.WindSpeed),
		Humidity:    humidityLine(reading.Humidity),
		IconURL:     fmt.Sprintf("%s/%s@4x.png", s.iconBaseURL, reading.Icon),
		TempC:       tempC,
		TempF:       toFahrenheit(tempC),
		Forecast:    s.forecastStrip(daily),
	}

	return card, nil
}

// forecastStrip drops entry 0 (today) and labels the rest by weekday.
func (s *CardService) forecastStrip(daily []models.DailyForecast) []models.ForecastDay {
	if len(daily) <= 1 {
		return []models.ForecastDay{}
	}

	today := s.now().Weekday()
	days := make([]models.ForecastDay, 0, len(daily)-1)
	for i := 1; i < len(daily); i++ {
		highC, lowC := round(daily[i].TempMax), round(daily[i].TempMin)
		days = append(days, models.ForecastDay{
			Day:     dayOfWeek(today, i),
			IconURL: fmt.Sprintf("%s/%s.png", s.iconBaseURL, daily[i].Icon),
			HighC:   highC,
			LowC:    lowC,
			HighF:   toFahrenheit(highC),
			LowF:    toFahrenheit(lowC),
		})
	}

	return days
}
