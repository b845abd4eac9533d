package weather

// DefaultBackground is the asset key used when no themed image applies.
const DefaultBackground = "/ai-bg-default.png"

var themedStatuses = map[Status]struct{}{
	StatusSunny:  {},
	StatusRain:   {},
	StatusCloudy: {},
	StatusSnow:   {},
	StatusStorm:  {},
}

// SelectBackground composes the background asset key for a status and day part.
// Daytime always uses the bare status image; there is no "-day" variant.
func SelectBackground(status Status, part DayPart) string {
	if !part.Valid() {
		return DefaultBackground
	}
	if _, ok := themedStatuses[status]; !ok {
		return DefaultBackground
	}
	if part != DayPartDay {
		return "/ai-bg-" + string(status) + "-" + string(part) + ".png"
	}
	return "/ai-bg-" + string(status) + ".png"
}
