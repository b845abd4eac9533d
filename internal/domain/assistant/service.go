package assistant

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/yanqian/weather-companion/internal/infra/llm/chatgpt"
	apperrors "github.com/yanqian/weather-companion/pkg/errors"
	"github.com/yanqian/weather-companion/pkg/metrics"
)

const (
	defaultTimeout      = 35 * time.Second
	defaultFunFactCount = 5
	noResponseReply     = "No response."
)

// Service produces activity and fun-fact suggestions from the LLM.
type Service interface {
	SuggestActivities(ctx context.Context, req ActivityRequest) (Suggestion, error)
	SuggestFunFacts(ctx context.Context, req FunFactRequest) (Suggestion, error)
}

type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

// TokenCounter estimates prompt size when the API omits usage.
type TokenCounter interface {
	CountMessages(model string, messages []chatgpt.Message) int
}

type service struct {
	cfg     Config
	client  ChatClient
	counter TokenCounter
	logger  *slog.Logger
}

// NewService wires up the assistant domain. counter may be nil.
func NewService(cfg Config, client ChatClient, counter TokenCounter, logger *slog.Logger) Service {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &service{
		cfg:     cfg,
		client:  client,
		counter: counter,
		logger:  logger.With("component", "assistant.service"),
	}
}

func (s *service) SuggestActivities(ctx context.Context, req ActivityRequest) (Suggestion, error) {
	messages := s.buildActivityMessages(req)
	reply, usage, err := s.complete(ctx, messages)
	if err != nil {
		return Suggestion{}, err
	}

	out := Suggestion{Reply: reply, Usage: usage, Items: ExtractNumbered(reply)}
	if len(out.Items) == 0 {
		out.Items = FallbackActivities(req.Weather, req.DayPart)
		out.Fallback = true
	}
	s.logger.Info("assistant activities ready",
		"city", req.Weather.City,
		"day_part", req.DayPart,
		"items", len(out.Items),
		"fallback", out.Fallback,
		"prompt_tokens", usage.PromptTokens,
		"total_tokens", usage.TotalTokens,
		"usage_estimated", usage.Estimated,
	)
	return out, nil
}

func (s *service) SuggestFunFacts(ctx context.Context, req FunFactRequest) (Suggestion, error) {
	messages := []chatgpt.Message{
		{Role: "system", Content: s.buildFunFactPrompt(req.Weather, req.DayPart)},
		{Role: "user", Content: req.Weather.City},
	}
	reply, usage, err := s.complete(ctx, messages)
	if err != nil {
		return Suggestion{}, err
	}
	items := ExtractNumbered(reply)
	if limit := s.cfg.FunFactCount; limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	s.logger.Info("assistant fun facts ready", "city", req.Weather.City, "items", len(items), "total_tokens", usage.TotalTokens)
	return Suggestion{Reply: reply, Usage: usage, Items: items}, nil
}

type completionResult struct {
	resp chatgpt.ChatCompletionResponse
	err  error
}

// complete races the completion against the configured timeout. The losing
// request is cancelled through its context and its goroutine drains into a
// buffered channel.
func (s *service) complete(ctx context.Context, messages []chatgpt.Message) (string, metrics.TokenUsage, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	done := make(chan completionResult, 1)
	go func() {
		resp, err := s.client.CreateChatCompletion(callCtx, chatgpt.ChatCompletionRequest{
			Model:       s.cfg.Model,
			Messages:    messages,
			Temperature: s.cfg.Temperature,
		})
		done <- completionResult{resp: resp, err: err}
	}()

	var res completionResult
	select {
	case res = <-done:
	case <-callCtx.Done():
		res = completionResult{err: callCtx.Err()}
	}

	if res.err != nil {
		if errors.Is(res.err, context.DeadlineExceeded) {
			s.logger.Warn("chatgpt request timed out", "timeout", s.cfg.Timeout)
			return "", metrics.TokenUsage{}, apperrors.Wrap(apperrors.CodeLLMTimeout, "chatgpt request timed out", res.err)
		}
		s.logger.Error("chatgpt request failed", "error", res.err)
		return "", metrics.TokenUsage{}, apperrors.Wrap(apperrors.CodeLLMError, "chatgpt request failed", res.err)
	}

	reply := res.resp.FirstContent()
	if reply == "" {
		reply = noResponseReply
	}
	s.logger.Debug("chatgpt response received", "content", reply)
	usage := s.usageFor(res.resp, messages)
	if usage.IsZero() {
		s.logger.Debug("token usage unavailable", "model", s.cfg.Model)
	}
	return reply, usage, nil
}

func (s *service) usageFor(resp chatgpt.ChatCompletionResponse, messages []chatgpt.Message) metrics.TokenUsage {
	if resp.Usage != nil {
		return metrics.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	if s.counter == nil {
		return metrics.TokenUsage{}
	}
	prompt := s.counter.CountMessages(s.cfg.Model, messages)
	return metrics.TokenUsage{PromptTokens: prompt, TotalTokens: prompt, Estimated: true}
}
