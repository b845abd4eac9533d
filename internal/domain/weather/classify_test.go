package weather

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := map[string]Status{
		"":                      StatusDefault,
		"light rain, sun later": StatusRain,
		"Shower Rain":           StatusRain,
		"broken clouds":         StatusCloudy,
		"clear sky":             StatusSunny,
		"Sunny":                 StatusSunny,
		"light snow":            StatusSnow,
		"thunderstorm":          StatusStorm,
		"mist":                  StatusDefault,
	}
	for desc, want := range cases {
		require.Equal(t, want, Classify(desc), desc)
	}
}

func TestClassifyCloudBeatsSun(t *testing.T) {
	require.Equal(t, StatusCloudy, Classify("clouds with sunny spells"))
}

func TestClassifyRecordNil(t *testing.T) {
	require.Equal(t, StatusDefault, ClassifyRecord(nil))
	require.Equal(t, StatusSnow, ClassifyRecord(&Record{Description: "heavy snow"}))
}

func TestFormatTemperature(t *testing.T) {
	require.Equal(t, "12", FormatTemperature(12))
	require.Equal(t, "12.5", FormatTemperature(12.5))
	require.Equal(t, "-3.21", FormatTemperature(-3.21))
}
