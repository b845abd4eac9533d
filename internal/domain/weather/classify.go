package weather

import "strings"

// Classify maps a free-text description to a Status. Earlier rules win.
func Classify(description string) Status {
	text := strings.ToLower(description)
	switch {
	case text == "":
		return StatusDefault
	case strings.Contains(text, "rain") || strings.Contains(text, "shower"):
		return StatusRain
	case strings.Contains(text, "cloud"):
		return StatusCloudy
	case strings.Contains(text, "sun") || strings.Contains(text, "clear"):
		return StatusSunny
	case strings.Contains(text, "snow"):
		return StatusSnow
	case strings.Contains(text, "storm") || strings.Contains(text, "thunder"):
		return StatusStorm
	default:
		return StatusDefault
	}
}

// ClassifyRecord is Classify for an optional record.
func ClassifyRecord(rec *Record) Status {
	if rec == nil {
		return StatusDefault
	}
	return Classify(rec.Description)
}
