package domain

// Forecast represents a weather forecast for a location and date.
// Presentation-only: sourcing and caching live in the backend.
type Forecast struct {
	Location      string  `json:"location"`
	Date          string  `json:"date"` // YYYY-MM-DD
	Description   string  `json:"description"`
	TemperatureC  float64 `json:"temperature"`
	Humidity      int     `json:"humidity"`
	Precipitation float64 `json:"precipitation"`
}
