package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"weather-cards/internal/models"
	"weather-cards/pkg/logger"
)

const (
	OpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"

	units = "metric"

	// the one-call endpoint only needs to return the daily block
	oneCallExclude = "current,minutely,hourly,alerts"
)

var (
	ErrEmptyAPIKey  = errors.New("API key cannot be empty")
	ErrNoConditions = errors.New("no weather conditions in response")
)

type OpenWeatherMapRepository struct {
	BaseURL    string
	APIKey     string
	Lang       string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenWeatherMapRepository(apiKey string, l *logger.Logger, httpClient HTTPClient) (*OpenWeatherMapRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrEmptyAPIKey
	}

	return &OpenWeatherMapRepository{
		BaseURL:    OpenWeatherMapBaseURL,
		APIKey:     apiKey,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (o *OpenWeatherMapRepository) Name() string {
	return "openweathermap"
}

type condition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type mainReadings struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
}

type wind struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

type sys struct {
	Country string `json:"country"`
}

type CurrentWeatherResponse struct {
	Coord      coord        `json:"coord"`
	Weather    []condition  `json:"weather"`
	Main       mainReadings `json:"main"`
	Visibility int          `json:"visibility"`
	Wind       wind         `json:"wind"`
	Dt         int64        `json:"dt"`
	Timezone   int          `json:"timezone"`
	Sys        sys          `json:"sys"`
	Name       string       `json:"name"`
}

type dailyTemp struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type daily struct {
	Dt      int64       `json:"dt"`
	Temp    dailyTemp   `json:"temp"`
	Weather []condition `json:"weather"`
}

type OneCallResponse struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Daily []daily `json:"daily"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// FetchCurrent reads the current weather of an OpenWeatherMap city id.
func (o *OpenWeatherMapRepository) FetchCurrent(ctx context.Context, cityID int) (models.CurrentReading, error) {
	params := url.Values{}
	params.Set("id", strconv.Itoa(cityID))

	var response CurrentWeatherResponse
	if err := o.get(ctx, "weather", params, &response); err != nil {
		return models.CurrentReading{}, fmt.Errorf("current weather for city %d: %w", cityID, err)
	}

	if len(response.Weather) == 0 {
		return models.CurrentReading{}, fmt.Errorf("current weather for city %d: %w", cityID, ErrNoConditions)
	}

	return models.CurrentReading{
		Lat:            response.Coord.Lat,
		Lon:            response.Coord.Lon,
		Name:           response.Name,
		Country:        response.Sys.Country,
		Description:    response.Weather[0].Description,
		Visibility:     response.Visibility,
		Timestamp:      response.Dt,
		TimezoneOffset: response.Timezone,
		WindDeg:        response.Wind.Deg,
		WindSpeed:      response.Wind.Speed,
		Humidity:       response.Main.Humidity,
		Icon:           response.Weather[0].Icon,
		TempC:          response.Main.Temp,
	}, nil
}

// FetchDaily reads the one-call daily forecast. Entry 0 is the current day.
func (o *OpenWeatherMapRepository) FetchDaily(ctx context.Context, lat, lon float64) ([]models.DailyForecast, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("exclude", oneCallExclude)

	var response OneCallResponse
	if err := o.get(ctx, "onecall", params, &response); err != nil {
		return nil, fmt.Errorf("daily forecast for %.4f,%.4f: %w", lat, lon, err)
	}

	days := make([]models.DailyForecast, 0, len(response.Daily))
	for i, day := range response.Daily {
		// entry 0 is never shown, so it may come without conditions
		var icon string
		switch {
		case len(day.Weather) > 0:
			icon = day.Weather[0].Icon
		case i > 0:
			return nil, fmt.Errorf("daily forecast for %.4f,%.4f: %w", lat, lon, ErrNoConditions)
		}

		days = append(days, models.DailyForecast{
			Timestamp: day.Dt,
			TempMax:   day.Temp.Max,
			TempMin:   day.Temp.Min,
			Icon:      icon,
		})
	}

	o.l.Debug("parsed onecall response", map[string]any{
		"lat":  lat,
		"lon":  lon,
		"days": len(days),
	})

	return days, nil
}

// get issues GET <BaseURL>/<endpoint> with the shared query parameters and
// decodes a 200 response into out.
func (o *OpenWeatherMapRepository) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	// Validate API key before making request
	if strings.TrimSpace(o.APIKey) == "" {
		return ErrEmptyAPIKey
	}

	params.Set("units", units)
	if o.Lang != "" {
		params.Set("lang", o.Lang)
	}

	o.l.Info("making openweathermap API request", map[string]any{
		"endpoint": endpoint,
		"params":   params.Encode(),
	})

	params.Set("appid", o.APIKey)
	reqURL := fmt.Sprintf("%s/%s?%s", strings.TrimRight(o.BaseURL, "/"), endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		// the request URL carries the API key
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return fmt.Errorf("failed to do request to %s: %w", endpoint, urlErr.Err)
		}
		return fmt.Errorf("failed to do request to %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	o.l.Info("received openweathermap API response", map[string]any{
		"endpoint":   endpoint,
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.Message != "" {
			return fmt.Errorf("API error (status %d): %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return nil
}
