package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/retodia/retodia-backend/internal/platform/logger"
	"github.com/retodia/retodia-backend/internal/types"
)

type ChatLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, entries []*types.ChatLog) error
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.ChatLog, error)
}

type chatLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatLogRepo(db *gorm.DB, baseLog *logger.Logger) ChatLogRepo {
	return &chatLogRepo{db: db, log: baseLog.With("repo", "ChatLogRepo")}
}

func (r *chatLogRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *chatLogRepo) Create(ctx context.Context, tx *gorm.DB, entries []*types.ChatLog) error {
	if len(entries) == 0 {
		return nil
	}
	for _, e := range entries {
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
	}
	return r.conn(tx).WithContext(ctx).Create(&entries).Error
}

func (r *chatLogRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.ChatLog, error) {
	var entries []*types.ChatLog
	q := r.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
