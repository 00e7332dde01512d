package chat

// EventType 会话事件类型。
type EventType string

const (
	EventMessage EventType = "message"
	EventTyping  EventType = "typing"
)

// Event is pushed to session subscribers whenever the transcript or the
// typing indicator changes.
type Event struct {
	Type      EventType `json:"type"`
	SessionID string    `json:"sessionId"`
	Message   *Message  `json:"message,omitempty"`
	Typing    bool      `json:"typing"`
	Pending   int       `json:"pending"`
}
