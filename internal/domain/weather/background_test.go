package weather

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectBackground(t *testing.T) {
	require.Equal(t, "/ai-bg-sunny.png", SelectBackground(StatusSunny, DayPartDay))
	require.Equal(t, "/ai-bg-sunny-night.png", SelectBackground(StatusSunny, DayPartNight))
	require.Equal(t, "/ai-bg-rain-evening.png", SelectBackground(StatusRain, DayPartEvening))
	require.Equal(t, "/ai-bg-storm.png", SelectBackground(StatusStorm, DayPartDay))
	require.Equal(t, DefaultBackground, SelectBackground(StatusDefault, DayPartDay))
	require.Equal(t, DefaultBackground, SelectBackground(StatusDefault, DayPartNight))
	require.Equal(t, DefaultBackground, SelectBackground(StatusSunny, DayPart("dusk")))
	require.Equal(t, DefaultBackground, SelectBackground(Status("fog"), DayPartDay))
}

func TestIconFor(t *testing.T) {
	require.Equal(t, IconDaySunnyOvercast, IconFor("", ""))
	require.Equal(t, IconDaySunny, IconFor("01d", "clear sky"))
	require.Equal(t, IconCloudy, IconFor("04n", ""))
	require.Equal(t, IconRain, IconFor("10d", ""))
	require.Equal(t, IconThunderstorm, IconFor("11d", ""))
	require.Equal(t, IconSnow, IconFor("13n", ""))
	require.Equal(t, IconCloudy, IconFor("50d", "mist"))
	require.Equal(t, IconThunderstorm, IconFor("", "thunder and lightning"))
	require.Equal(t, IconRain, IconFor("99x", "rain and thunder"))
	require.Equal(t, IconDaySunnyOvercast, IconFor("99x", ""))
	require.Equal(t, IconDaySunnyOvercast, IconFor("", "haze"))
}

func TestDayPartPresentation(t *testing.T) {
	require.Equal(t, "Evening", DayPartLabel(DayPartEvening))
	require.Equal(t, "🌙", DayPartEmoji(DayPartNight))
	require.Equal(t, "☀️", DayPartEmoji(DayPartDay))
}
