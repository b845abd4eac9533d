package chat

// Sender identifies who authored a transcript entry.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one entry of the append-only chat transcript.
type Message struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// User builds a user-authored message.
func User(text string) Message {
	return Message{Sender: SenderUser, Text: text}
}

// Bot builds a bot-authored message.
func Bot(text string) Message {
	return Message{Sender: SenderBot, Text: text}
}
