package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WelcomeContent is the payload behind the welcome screen: header, image,
// the daily challenge and the challenge assistant configuration. At most one
// row is active at a time.
type WelcomeContent struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	IsActive            bool           `gorm:"not null;default:false;index;column:is_active" json:"is_active"`
	Title               string         `gorm:"not null;column:title" json:"title"`
	Subtitle            string         `gorm:"column:subtitle" json:"subtitle"`
	ImageURL            string         `gorm:"column:image_url" json:"image_url"`
	ChallengeTitle      string         `gorm:"column:challenge_title" json:"challenge_title"`
	ChallengeText       string         `gorm:"column:challenge_text" json:"challenge_text"`
	PodcastTitle        string         `gorm:"column:podcast_title" json:"podcast_title"`
	PodcastURL          string         `gorm:"column:podcast_url" json:"podcast_url"`
	AIInitialMessage    string         `gorm:"column:ai_initial_message" json:"ai_initial_message"`
	AISystemInstruction string         `gorm:"column:ai_system_instruction" json:"ai_system_instruction"`
	CreatedAt           time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (WelcomeContent) TableName() string { return "welcome_content" }
