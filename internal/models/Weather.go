package models

// CurrentReading is what the provider reports for a city right now.
type CurrentReading struct {
	Lat            float64 `json:"lat" example:"51.5085"`
	Lon            float64 `json:"lon" example:"-0.1257"`
	Name           string  `json:"name" example:"London"`
	Country        string  `json:"country" example:"GB"`
	Description    string  `json:"description" example:"light rain"`
	Visibility     int     `json:"visibility" example:"10000"`
	Timestamp      int64   `json:"dt" example:"1753455600"`
	TimezoneOffset int     `json:"timezone" example:"3600"`
	WindDeg        float64 `json:"wind_deg" example:"230"`
	WindSpeed      float64 `json:"wind_speed" example:"4.12"`
	Humidity       float64 `json:"humidity" example:"81"`
	Icon           string  `json:"icon" example:"10d"`
	TempC          float64 `json:"temp_c" example:"17.6"`
}

// DailyForecast is one entry of the provider's daily forecast array.
type DailyForecast struct {
	Timestamp int64   `json:"dt"`
	TempMax   float64 `json:"temp_max"`
	TempMin   float64 `json:"temp_min"`
	Icon      string  `json:"icon"`
}
