package assistant

import (
	"time"

	"github.com/yanqian/weather-companion/internal/domain/chat"
	"github.com/yanqian/weather-companion/internal/domain/weather"
	"github.com/yanqian/weather-companion/pkg/metrics"
)

// Config wires runtime knobs for the assistant domain.
type Config struct {
	Model        string
	Temperature  float32
	Timeout      time.Duration
	Persona      string
	FunFactCount int
}

// ActivityRequest carries everything needed to ask for activity ideas.
type ActivityRequest struct {
	Weather    weather.Record
	DayPart    weather.DayPart
	Transcript []chat.Message
	UserText   string
}

// FunFactRequest asks for trivia about the current city.
type FunFactRequest struct {
	Weather weather.Record
	DayPart weather.DayPart
}

// Suggestion is the parsed outcome of one completion.
type Suggestion struct {
	Items    []string           `json:"items"`
	Reply    string             `json:"reply"`
	Fallback bool               `json:"fallback"`
	Usage    metrics.TokenUsage `json:"usage"`
}
