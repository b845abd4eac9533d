package conversation

import (
	"context"
	"time"

	"github.com/yanqian/weather-companion/internal/domain/chat"
	"github.com/yanqian/weather-companion/internal/domain/weather"
)

// Config holds runtime knobs for the conversation controller.
type Config struct {
	SessionTTL time.Duration
}

// Session is the per-browser state the widgets render from.
type Session struct {
	ID                   string          `json:"id"`
	Messages             []chat.Message  `json:"messages"`
	Weather              *weather.Record `json:"weather"`
	Activities           []string        `json:"activities"`
	FunFacts             []string        `json:"funFacts"`
	Loading              bool            `json:"loading"`
	GeneratingActivities bool            `json:"generatingActivities"`
	GeneratingFunFacts   bool            `json:"generatingFunFacts"`
	ClientUTCOffset      *int64          `json:"clientUtcOffset,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

// StartRequest opens a session. UTCOffset is the browser's offset from UTC
// in seconds east; without it the host clock's zone is used when no weather
// record is available.
type StartRequest struct {
	UTCOffset *int64 `json:"utcOffset,omitempty"`
}

// SendRequest is one chat submission.
type SendRequest struct {
	Text string `json:"text"`
}

// TurnResult reports what a submission did. ClearInput tells the widget to
// empty its text box; Accepted is false when the input was ignored.
type TurnResult struct {
	Accepted   bool     `json:"accepted"`
	ClearInput bool     `json:"clearInput"`
	Session    Snapshot `json:"session"`
}

// Store persists sessions for their idle lifetime.
type Store interface {
	Get(ctx context.Context, id string) (Session, bool, error)
	Save(ctx context.Context, session Session, ttl time.Duration) error
}

// WeatherClient resolves a city name into current conditions.
type WeatherClient interface {
	Lookup(ctx context.Context, city string) (weather.Record, error)
}

// AssetResolver turns a background key into a URL the browser can load.
type AssetResolver interface {
	URL(ctx context.Context, key string) string
}
