package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/retodia/retodia-backend/internal/platform/logger"
	"github.com/retodia/retodia-backend/internal/types"
)

type FractalSessionRepo interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.FractalSession, error)
	Upsert(ctx context.Context, tx *gorm.DB, session *types.FractalSession) (*types.FractalSession, error)
}

type fractalSessionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFractalSessionRepo(db *gorm.DB, baseLog *logger.Logger) FractalSessionRepo {
	return &fractalSessionRepo{db: db, log: baseLog.With("repo", "FractalSessionRepo")}
}

func (r *fractalSessionRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *fractalSessionRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.FractalSession, error) {
	var session types.FractalSession
	if err := r.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// Upsert writes the whole session row keyed by user_id; the last write wins.
func (r *fractalSessionRepo) Upsert(ctx context.Context, tx *gorm.DB, session *types.FractalSession) (*types.FractalSession, error) {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if err := r.conn(tx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"fractal", "phase", "is_complete", "updated_at"}),
		}).
		Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}
