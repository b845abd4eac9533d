package weather

import (
	"errors"
	"strconv"
)

// ErrCityNotFound is returned by lookups when the upstream API does not know the city.
var ErrCityNotFound = errors.New("city not found")

// Record is the normalized current-conditions reading for one city.
type Record struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temp"`
	Description string  `json:"desc"`
	Icon        string  `json:"icon"`
	Pressure    float64 `json:"pressure"`
	Humidity    float64 `json:"humidity"`
	// Sunrise and Sunset are unix seconds (UTC). Zero means unknown.
	Sunrise int64 `json:"sunrise"`
	Sunset  int64 `json:"sunset"`
	// TimezoneOffset is the city's offset from UTC in seconds, nil when unknown.
	TimezoneOffset *int64 `json:"timezone,omitempty"`
}

// Status is the coarse weather tag used to pick themed assets.
type Status string

const (
	StatusDefault Status = "default"
	StatusRain    Status = "rain"
	StatusCloudy  Status = "cloudy"
	StatusSunny   Status = "sunny"
	StatusSnow    Status = "snow"
	StatusStorm   Status = "storm"
)

// DayPart buckets the local time of the city.
type DayPart string

const (
	DayPartDay     DayPart = "day"
	DayPartEvening DayPart = "evening"
	DayPartNight   DayPart = "night"
)

// Valid reports whether p is one of the three known parts.
func (p DayPart) Valid() bool {
	switch p {
	case DayPartDay, DayPartEvening, DayPartNight:
		return true
	}
	return false
}

// NightOrEvening is true outside full daylight.
func (p DayPart) NightOrEvening() bool {
	return p == DayPartNight || p == DayPartEvening
}

// FormatTemperature renders a temperature the way a JavaScript number prints:
// shortest representation, no trailing zeros.
func FormatTemperature(celsius float64) string {
	return strconv.FormatFloat(celsius, 'f', -1, 64)
}
