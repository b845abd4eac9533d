package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDayPartWallClockFallback(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2024, 7, 1, hour, 30, 0, 0, time.FixedZone("test", 2*60*60))
	}
	require.Equal(t, DayPartDay, DayPartAt(nil, at(10)))
	require.Equal(t, DayPartEvening, DayPartAt(nil, at(19)))
	require.Equal(t, DayPartNight, DayPartAt(nil, at(23)))
	require.Equal(t, DayPartNight, DayPartAt(nil, at(5)))
	require.Equal(t, DayPartDay, DayPartAt(nil, at(6)))
	require.Equal(t, DayPartEvening, DayPartAt(nil, at(18)))
	require.Equal(t, DayPartNight, DayPartAt(nil, at(21)))
}

func TestDayPartIncompleteRecordFallsBack(t *testing.T) {
	noon := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	rec := &Record{Sunrise: 1000, Sunset: 2000}
	require.Equal(t, DayPartDay, DayPartAt(rec, noon))

	offset := int64(0)
	rec = &Record{Sunset: 2000, TimezoneOffset: &offset}
	require.Equal(t, DayPartDay, DayPartAt(rec, noon))
}

func TestDayPartFromSunTimes(t *testing.T) {
	offset := int64(0)
	rec := &Record{Sunrise: 1000, Sunset: 2000, TimezoneOffset: &offset}

	cases := map[int64]DayPart{
		999:  DayPartNight,
		1000: DayPartEvening,
		1500: DayPartEvening, // within an hour of both ends
		1950: DayPartEvening,
		2000: DayPartEvening,
		2500: DayPartNight,
	}
	for unix, want := range cases {
		require.Equal(t, want, DayPartAt(rec, time.Unix(unix, 0)), "unix=%d", unix)
	}
}

func TestDayPartMidDay(t *testing.T) {
	offset := int64(0)
	rec := &Record{Sunrise: 1000, Sunset: 20000, TimezoneOffset: &offset}

	require.Equal(t, DayPartDay, DayPartAt(rec, time.Unix(10000, 0)))
	require.Equal(t, DayPartEvening, DayPartAt(rec, time.Unix(4600, 0)))
	require.Equal(t, DayPartDay, DayPartAt(rec, time.Unix(4601, 0)))
	require.Equal(t, DayPartEvening, DayPartAt(rec, time.Unix(16400, 0)))
	require.Equal(t, DayPartNight, DayPartAt(rec, time.Unix(20001, 0)))
}

func TestDayPartAppliesOffset(t *testing.T) {
	offset := int64(3600)
	rec := &Record{Sunrise: 10000, Sunset: 50000, TimezoneOffset: &offset}

	// 43000 + 3600 = 46600 lands inside the last hour before sunset.
	require.Equal(t, DayPartEvening, DayPartAt(rec, time.Unix(43000, 0)))
	require.Equal(t, DayPartDay, DayPartAt(rec, time.Unix(30000, 0)))
	require.Equal(t, DayPartNight, DayPartAt(rec, time.Unix(47000+3000, 0)))
}
