package types

import (
	"time"

	"github.com/google/uuid"
)

// ChatLog is an append-only record of interview messages, written
// best-effort after every processed turn.
type ChatLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Role      string    `gorm:"not null;column:role" json:"role"` // "user" | "model"
	Text      string    `gorm:"not null;column:text" json:"text"`
	Phase     int       `gorm:"not null;column:phase" json:"phase"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (ChatLog) TableName() string { return "chat_log" }
