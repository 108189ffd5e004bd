package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"devmatter/internal/models/db_models"
)

type SecretKeyRepositoryInterface interface {
	Create(ctx context.Context, key *db_models.SecretKey) error
	FindByHash(ctx context.Context, hash string) (*db_models.SecretKey, error)
	FindByIDWithApp(ctx context.Context, id uint) (*db_models.SecretKey, error)
	ListByApp(ctx context.Context, appID uint) ([]db_models.SecretKey, error)
	Delete(ctx context.Context, id uint) error
}

type SecretKeyRepository struct {
	db *gorm.DB
}

func NewSecretKeyRepository(db *gorm.DB) SecretKeyRepositoryInterface {
	return &SecretKeyRepository{db: db}
}

func (r *SecretKeyRepository) Create(ctx context.Context, key *db_models.SecretKey) error {
	return r.db.WithContext(ctx).Create(key).Error
}

func (r *SecretKeyRepository) FindByHash(ctx context.Context, hash string) (*db_models.SecretKey, error) {
	var key db_models.SecretKey
	err := r.db.WithContext(ctx).First(&key, "hash = ?", hash).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &key, nil
}

func (r *SecretKeyRepository) FindByIDWithApp(ctx context.Context, id uint) (*db_models.SecretKey, error) {
	var key db_models.SecretKey
	err := r.db.WithContext(ctx).Preload("App").First(&key, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &key, nil
}

func (r *SecretKeyRepository) ListByApp(ctx context.Context, appID uint) ([]db_models.SecretKey, error) {
	var keys []db_models.SecretKey
	err := r.db.WithContext(ctx).Where("app_id = ?", appID).Find(&keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *SecretKeyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&db_models.SecretKey{}, "id = ?", id).Error
}
