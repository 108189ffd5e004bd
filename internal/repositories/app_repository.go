package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"devmatter/internal/models/db_models"
)

type AppRepositoryInterface interface {
	Create(ctx context.Context, app *db_models.App) error
	FindByID(ctx context.Context, id uint) (*db_models.App, error)
	ListByUser(ctx context.Context, userID uint) ([]db_models.App, error)
	Update(ctx context.Context, id uint, name, url string) error
	Delete(ctx context.Context, id uint) error
}

type AppRepository struct {
	db *gorm.DB
}

func NewAppRepository(db *gorm.DB) AppRepositoryInterface {
	return &AppRepository{db: db}
}

func (r *AppRepository) Create(ctx context.Context, app *db_models.App) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *AppRepository) FindByID(ctx context.Context, id uint) (*db_models.App, error) {
	var app db_models.App
	err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *AppRepository) ListByUser(ctx context.Context, userID uint) ([]db_models.App, error) {
	var apps []db_models.App
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppRepository) Update(ctx context.Context, id uint, name, url string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.App{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "url": url}).Error
}

func (r *AppRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&db_models.App{}, "id = ?", id).Error
}
