package weather

import "strings"

// Icon names the widget glyph family for the current conditions.
type Icon string

const (
	IconDaySunny         Icon = "day-sunny"
	IconCloudy           Icon = "cloudy"
	IconRain             Icon = "rain"
	IconThunderstorm     Icon = "thunderstorm"
	IconSnow             Icon = "snow"
	IconDaySunnyOvercast Icon = "day-sunny-overcast"
)

// OpenWeatherMap icon code prefixes, see https://openweathermap.org/weather-conditions.
var iconPrefixes = []struct {
	prefix string
	icon   Icon
}{
	{"01", IconDaySunny},
	{"02", IconCloudy},
	{"03", IconCloudy},
	{"04", IconCloudy},
	{"09", IconRain},
	{"10", IconRain},
	{"11", IconThunderstorm},
	{"13", IconSnow},
	{"50", IconCloudy},
}

// IconFor picks the glyph from the icon code, then the description.
func IconFor(code, description string) Icon {
	if code == "" && description == "" {
		return IconDaySunnyOvercast
	}
	if code != "" {
		for _, p := range iconPrefixes {
			if strings.HasPrefix(code, p.prefix) {
				return p.icon
			}
		}
	}
	d := strings.ToLower(description)
	switch {
	case d == "":
		return IconDaySunnyOvercast
	case strings.Contains(d, "rain"):
		return IconRain
	case strings.Contains(d, "storm") || strings.Contains(d, "thunder"):
		return IconThunderstorm
	case strings.Contains(d, "snow"):
		return IconSnow
	case strings.Contains(d, "cloud"):
		return IconCloudy
	case strings.Contains(d, "sun") || strings.Contains(d, "clear"):
		return IconDaySunny
	}
	return IconDaySunnyOvercast
}

// DayPartEmoji is the glyph shown next to the day part label.
func DayPartEmoji(part DayPart) string {
	switch part {
	case DayPartNight:
		return "🌙"
	case DayPartEvening:
		return "🌇"
	default:
		return "☀️"
	}
}

// DayPartLabel capitalizes the day part for display.
func DayPartLabel(part DayPart) string {
	if part == "" {
		return ""
	}
	s := string(part)
	return strings.ToUpper(s[:1]) + s[1:]
}
