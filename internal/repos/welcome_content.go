package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/retodia/retodia-backend/internal/platform/logger"
	"github.com/retodia/retodia-backend/internal/types"
)

type WelcomeContentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, content *types.WelcomeContent) (*types.WelcomeContent, error)
	Update(ctx context.Context, tx *gorm.DB, content *types.WelcomeContent) (*types.WelcomeContent, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.WelcomeContent, error)
	GetActive(ctx context.Context, tx *gorm.DB) (*types.WelcomeContent, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.WelcomeContent, error)
	SetActive(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type welcomeContentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWelcomeContentRepo(db *gorm.DB, baseLog *logger.Logger) WelcomeContentRepo {
	return &welcomeContentRepo{db: db, log: baseLog.With("repo", "WelcomeContentRepo")}
}

func (r *welcomeContentRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *welcomeContentRepo) Create(ctx context.Context, tx *gorm.DB, content *types.WelcomeContent) (*types.WelcomeContent, error) {
	if content.ID == uuid.Nil {
		content.ID = uuid.New()
	}
	if err := r.conn(tx).WithContext(ctx).Create(content).Error; err != nil {
		return nil, err
	}
	return content, nil
}

func (r *welcomeContentRepo) Update(ctx context.Context, tx *gorm.DB, content *types.WelcomeContent) (*types.WelcomeContent, error) {
	if err := r.conn(tx).WithContext(ctx).Save(content).Error; err != nil {
		return nil, err
	}
	return content, nil
}

func (r *welcomeContentRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.WelcomeContent, error) {
	var content types.WelcomeContent
	if err := r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *welcomeContentRepo) GetActive(ctx context.Context, tx *gorm.DB) (*types.WelcomeContent, error) {
	var content types.WelcomeContent
	if err := r.conn(tx).WithContext(ctx).
		Where("is_active = ?", true).
		Order("updated_at DESC").
		First(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *welcomeContentRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.WelcomeContent, error) {
	var contents []*types.WelcomeContent
	if err := r.conn(tx).WithContext(ctx).
		Order("created_at DESC").
		Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// SetActive activates one row and deactivates the rest.
func (r *welcomeContentRepo) SetActive(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	conn := r.conn(tx).WithContext(ctx)
	if err := conn.Model(&types.WelcomeContent{}).
		Where("is_active = ?", true).
		Update("is_active", false).Error; err != nil {
		return err
	}
	return conn.Model(&types.WelcomeContent{}).
		Where("id = ?", id).
		Update("is_active", true).Error
}

func (r *welcomeContentRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.WelcomeContent{}).Error
}

func (r *welcomeContentRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	var count int64
	if err := r.conn(tx).WithContext(ctx).
		Model(&types.WelcomeContent{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
