package weather

import "time"

// twilightWindow is how close to sunrise or sunset still counts as evening.
const twilightWindow int64 = 3600

// DayPartAt computes the day part of rec's city at instant now.
//
// Without usable sun times it falls back to the hour of now in now's own
// location: [6,18) day, [18,21) evening, otherwise night. The daylight
// interval is inclusive at both ends.
func DayPartAt(rec *Record, now time.Time) DayPart {
	if rec == nil || rec.Sunrise == 0 || rec.Sunset == 0 || rec.TimezoneOffset == nil {
		return wallClockDayPart(now.Hour())
	}

	localNow := now.Unix() + *rec.TimezoneOffset
	if localNow < rec.Sunrise || localNow > rec.Sunset {
		return DayPartNight
	}
	if localNow >= rec.Sunset-twilightWindow {
		return DayPartEvening
	}
	if localNow <= rec.Sunrise+twilightWindow {
		return DayPartEvening
	}
	return DayPartDay
}

func wallClockDayPart(hour int) DayPart {
	switch {
	case hour >= 6 && hour < 18:
		return DayPartDay
	case hour >= 18 && hour < 21:
		return DayPartEvening
	default:
		return DayPartNight
	}
}
