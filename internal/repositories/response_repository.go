package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"devmatter/internal/models/db_models"
)

type ResponseRepositoryInterface interface {
	Create(ctx context.Context, response *db_models.FormResponse) error
	FindByIDWithOwner(ctx context.Context, id uint) (*db_models.FormResponse, error)
	ListByVersions(ctx context.Context, versionIDs []uint) ([]db_models.FormResponse, error)
	HasResponses(ctx context.Context, versionID uint) (bool, error)
	SetArchived(ctx context.Context, id uint, archived bool) error
}

type ResponseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepositoryInterface {
	return &ResponseRepository{db: db}
}

func (r *ResponseRepository) Create(ctx context.Context, response *db_models.FormResponse) error {
	return r.db.WithContext(ctx).Create(response).Error
}

func (r *ResponseRepository) FindByIDWithOwner(ctx context.Context, id uint) (*db_models.FormResponse, error) {
	var response db_models.FormResponse
	err := r.db.WithContext(ctx).
		Preload("FormVersion").
		Preload("FormVersion.Form").
		Preload("FormVersion.Form.App").
		First(&response, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &response, nil
}

func (r *ResponseRepository) ListByVersions(ctx context.Context, versionIDs []uint) ([]db_models.FormResponse, error) {
	if len(versionIDs) == 0 {
		return nil, nil
	}
	var responses []db_models.FormResponse
	err := r.db.WithContext(ctx).
		Where("form_version_id IN ?", versionIDs).
		Order("created_at DESC").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *ResponseRepository) HasResponses(ctx context.Context, versionID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.FormResponse{}).
		Where("form_version_id = ?", versionID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ResponseRepository) SetArchived(ctx context.Context, id uint, archived bool) error {
	return r.db.WithContext(ctx).
		Model(&db_models.FormResponse{}).
		Where("id = ?", id).
		Update("archived", archived).Error
}
