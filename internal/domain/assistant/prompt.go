package assistant

import (
	"fmt"
	"strings"

	"github.com/yanqian/weather-companion/internal/domain/chat"
	"github.com/yanqian/weather-companion/internal/domain/weather"
	"github.com/yanqian/weather-companion/internal/infra/llm/chatgpt"
)

const defaultPersona = "FlorAI"

func (s *service) persona() string {
	if p := strings.TrimSpace(s.cfg.Persona); p != "" {
		return p
	}
	return defaultPersona
}

func (s *service) buildActivityPrompt(rec weather.Record, part weather.DayPart) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a helpful assistant named %s. You are only allowed to answer questions about the weather, and suggest activities based on the weather. You are not allowed to answer questions about anything else.", s.persona())
	fmt.Fprintf(&b, "\nThe current weather in %s is %s°C, %s.", rec.City, weather.FormatTemperature(rec.Temperature), rec.Description)
	tod := strings.ToUpper(string(part))
	if tod != "" {
		fmt.Fprintf(&b, "\nIt is currently %s in %s.", tod, rec.City)
	}
	fmt.Fprintf(&b, "\nBased on these conditions, suggest some suitable activities for the user. Be specific and creative, and explain why each activity fits the weather and time of day. If it is NIGHT, avoid suggesting activities that are not possible or safe at night (such as visiting parks or outdoor attractions that may be closed). Consider the user's location (%s), the weather, and the time of day (%s), and suggest activities that are relevant or unique to that city or region, not just generic weather-based suggestions. Output the activities as a numbered list, each on a new line.", rec.City, tod)
	return b.String()
}

func (s *service) buildFunFactPrompt(rec weather.Record, part weather.DayPart) string {
	count := s.cfg.FunFactCount
	if count <= 0 {
		count = defaultFunFactCount
	}
	return fmt.Sprintf("You are a helpful assistant named %s. Share %d fun and surprising facts about %s. The current weather there is %s°C, %s, and it is currently %s. Keep each fact to one or two sentences. Output the facts as a numbered list, each on a new line.",
		s.persona(), count, rec.City, weather.FormatTemperature(rec.Temperature), rec.Description, strings.ToUpper(string(part)))
}

// buildActivityMessages assembles system prompt, prior transcript and the new user turn.
func (s *service) buildActivityMessages(req ActivityRequest) []chatgpt.Message {
	messages := make([]chatgpt.Message, 0, len(req.Transcript)+2)
	messages = append(messages, chatgpt.Message{Role: "system", Content: s.buildActivityPrompt(req.Weather, req.DayPart)})
	for _, msg := range req.Transcript {
		switch msg.Sender {
		case chat.SenderUser:
			messages = append(messages, chatgpt.Message{Role: "user", Content: msg.Text})
		case chat.SenderBot:
			messages = append(messages, chatgpt.Message{Role: "assistant", Content: msg.Text})
		}
	}
	messages = append(messages, chatgpt.Message{Role: "user", Content: req.UserText})
	return messages
}
