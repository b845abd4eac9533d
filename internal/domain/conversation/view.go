package conversation

import (
	"context"
	"math"
	"time"

	"github.com/yanqian/weather-companion/internal/domain/chat"
	"github.com/yanqian/weather-companion/internal/domain/weather"
)

// Snapshot is a Session plus everything derived from it at read time.
type Snapshot struct {
	Session
	Status     weather.Status  `json:"status"`
	DayPart    weather.DayPart `json:"dayPart"`
	Background Background      `json:"background"`
	Widget     *WeatherWidget  `json:"widget,omitempty"`
}

// Background is the themed image for the current conditions.
type Background struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// WeatherWidget is the display model of the floating weather card.
type WeatherWidget struct {
	City         string       `json:"city"`
	Temperature  int          `json:"temperature"`
	Icon         weather.Icon `json:"icon"`
	Pressure     float64      `json:"pressure"`
	Humidity     float64      `json:"humidity"`
	Condition    string       `json:"condition"`
	DayPartLabel string       `json:"dayPartLabel"`
	DayPartEmoji string       `json:"dayPartEmoji"`
}

func buildSnapshot(ctx context.Context, sess Session, now time.Time, assets AssetResolver) Snapshot {
	status := weather.ClassifyRecord(sess.Weather)
	part := weather.DayPartAt(sess.Weather, now)
	key := weather.SelectBackground(status, part)

	bg := Background{Key: key, URL: key}
	if assets != nil {
		bg.URL = assets.URL(ctx, key)
	}

	snap := Snapshot{
		Session:    withEmptyLists(sess),
		Status:     status,
		DayPart:    part,
		Background: bg,
	}
	if rec := sess.Weather; rec != nil {
		snap.Widget = &WeatherWidget{
			City:         rec.City,
			Temperature:  roundHalfUp(rec.Temperature),
			Icon:         weather.IconFor(rec.Icon, rec.Description),
			Pressure:     rec.Pressure,
			Humidity:     rec.Humidity,
			Condition:    rec.Description,
			DayPartLabel: weather.DayPartLabel(part),
			DayPartEmoji: weather.DayPartEmoji(part),
		}
	}
	return snap
}

// withEmptyLists keeps JSON arrays as [] instead of null.
func withEmptyLists(sess Session) Session {
	if sess.Messages == nil {
		sess.Messages = []chat.Message{}
	}
	if sess.Activities == nil {
		sess.Activities = []string{}
	}
	if sess.FunFacts == nil {
		sess.FunFacts = []string{}
	}
	return sess
}

// roundHalfUp matches JavaScript's Math.round, which rounds .5 toward +Inf.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
