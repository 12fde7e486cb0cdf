package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatMessage is a single message in a collaboration's chat log.
// Messages live inside the Collaboration record, not in their own table.
type ChatMessage struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	MessageType string    `json:"message_type"`
}

// NewChatMessage constructs a plain text message from the given user.
func NewChatMessage(userID, message string) ChatMessage {
	return ChatMessage{
		ID:          uuid.New().String(),
		UserID:      userID,
		Message:     message,
		Timestamp:   time.Now().UTC(),
		MessageType: "text",
	}
}

// Collaboration is the per-decision collaboration record. DecisionID is
// a soft reference: the decision's existence is checked when a
// collaboration starts but never afterwards, and nothing prevents
// multiple collaborations on the same decision.
type Collaboration struct {
	ID           string        `gorm:"type:text;primaryKey" json:"id"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	DecisionID   string        `gorm:"type:text;not null;index" json:"decision_id"`
	Participants []string      `gorm:"serializer:json" json:"participants"`
	ChatMessages []ChatMessage `gorm:"serializer:json" json:"chat_messages"`
	SharedNotes  string        `gorm:"default:''" json:"shared_notes"`
	LastActivity time.Time     `json:"last_activity"`
}

// BeforeCreate generates a UUID primary key and seeds LastActivity.
func (col *Collaboration) BeforeCreate(_ *gorm.DB) error {
	if col.ID == "" {
		col.ID = uuid.New().String()
	}
	if col.LastActivity.IsZero() {
		col.LastActivity = time.Now().UTC()
	}
	return nil
}
