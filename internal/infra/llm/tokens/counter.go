package tokens

import (
	"log/slog"
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/yanqian/weather-companion/internal/infra/llm/chatgpt"
)

const (
	fallbackEncoding = "cl100k_base"
	// Per-message framing overhead used by OpenAI's own token accounting.
	tokensPerMessage = 3
	tokensPerReply   = 3
)

// Counter estimates prompt sizes with tiktoken, caching encoders per model.
type Counter struct {
	mu       sync.Mutex
	encoders map[string]*tiktoken.Tiktoken
	logger   *slog.Logger
}

// NewCounter returns a ready Counter.
func NewCounter(logger *slog.Logger) *Counter {
	return &Counter{
		encoders: make(map[string]*tiktoken.Tiktoken),
		logger:   logger.With("component", "llm.tokens"),
	}
}

// CountMessages estimates the prompt tokens of a chat request.
// Falls back to a character heuristic when no encoding can be loaded.
func (c *Counter) CountMessages(model string, messages []chatgpt.Message) int {
	enc := c.encoder(model)
	total := tokensPerReply
	for _, msg := range messages {
		total += tokensPerMessage
		if enc == nil {
			total += approximate(msg.Role) + approximate(msg.Content)
			continue
		}
		total += len(enc.Encode(msg.Role, nil, nil)) + len(enc.Encode(msg.Content, nil, nil))
	}
	return total
}

func (c *Counter) encoder(model string) *tiktoken.Tiktoken {
	c.mu.Lock()
	defer c.mu.Unlock()
	if enc, ok := c.encoders[model]; ok {
		return enc
	}
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding(fallbackEncoding)
	}
	if err != nil {
		c.logger.Warn("tiktoken encoding unavailable, using heuristic", "model", model, "error", err)
		enc = nil
	}
	c.encoders[model] = enc
	return enc
}

// approximate is the usual four-characters-per-token rule of thumb.
func approximate(text string) int {
	n := len([]rune(text))
	if n == 0 {
		return 0
	}
	return (n + 3) / 4
}
