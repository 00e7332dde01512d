package contact

import (
	"time"

	"github.com/mgdigi/portfolio/backend/internal/i18n"
)

// Status 提交状态。
type Status string

const (
	StatusSending Status = "sending"
	StatusSent    Status = "sent"
)

// Notification is the toast shown once a submission completes.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Submission tracks one simulated contact form delivery. The form content
// itself is not retained.
type Submission struct {
	ID           string        `json:"id"`
	Status       Status        `json:"status"`
	Language     i18n.Language `json:"language"`
	CreatedAt    time.Time     `json:"createdAt"`
	CompletedAt  *time.Time    `json:"completedAt,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
}
