package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FractalSession is the persisted interview state for one user: the
// accumulated profile, the current phase and the completion flag.
type FractalSession struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User       *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Fractal    datatypes.JSON `gorm:"type:jsonb;column:fractal" json:"fractal"`
	Phase      int            `gorm:"not null;default:1;column:phase" json:"phase"`
	IsComplete bool           `gorm:"not null;default:false;column:is_complete" json:"is_complete"`
	CreatedAt  time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (FractalSession) TableName() string { return "fractal_session" }
