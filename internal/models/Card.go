package models

// Card is one city's rendered weather summary, ready for display.
type Card struct {
	CityID      int           `json:"city_id" example:"2643743"`
	Color       string        `json:"color" example:"#4f81bd"`
	Location    string        `json:"location" example:"London, GB"`
	WeatherLine string        `json:"weather" example:"light rain. Visibility 10 KM"`
	Time        string        `json:"time" example:"Jul 25, 4:00 PM"`
	Wind        string        `json:"wind" example:"Wind: ↙ SW 4.12 m/s"`
	Humidity    string        `json:"humidity" example:"Humidity: 81 %"`
	IconURL     string        `json:"icon_url" example:"https://openweathermap.org/img/wn/10d@4x.png"`
	TempC       int           `json:"temp_c" example:"18"`
	TempF       int           `json:"temp_f" example:"64"`
	Forecast    []ForecastDay `json:"forecast"`
}

// ForecastDay is one entry of a card's forecast strip.
type ForecastDay struct {
	Day     string `json:"day" example:"Sat"`
	IconURL string `json:"icon_url" example:"https://openweathermap.org/img/wn/04d.png"`
	HighC   int    `json:"high_c" example:"22"`
	LowC    int    `json:"low_c" example:"14"`
	HighF   int    `json:"high_f" example:"72"`
	LowF    int    `json:"low_f" example:"57"`
}

// RenderResult is the outcome of one render pass over a data view.
type RenderResult struct {
	Cards []Card `json:"cards"`
	// Requested is the number of cities the host asked for, before the limit.
	Requested int      `json:"requested" example:"2"`
	Notice    string   `json:"notice,omitempty" example:"Only the first 20 of 24 cities are shown"`
	Errors    []string `json:"errors,omitempty"`
}
