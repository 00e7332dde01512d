package chat

import (
	"time"

	"github.com/mgdigi/portfolio/backend/internal/i18n"
)

// Session captures a transient anonymous conversation with the assistant.
type Session struct {
	ID        string        `json:"id"`
	Language  i18n.Language `json:"language"`
	CreatedAt time.Time     `json:"createdAt"`
}
