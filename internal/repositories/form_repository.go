package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"devmatter/internal/models/db_models"
)

type FormRepositoryInterface interface {
	Create(ctx context.Context, form *db_models.Form) error
	FindByID(ctx context.Context, id uint) (*db_models.Form, error)
	// FindByIDWithOwner loads the form together with its app and the app's
	// owning user, which the submission pipeline needs for access checks,
	// quota metering and notification fan-out.
	FindByIDWithOwner(ctx context.Context, id uint) (*db_models.Form, error)
	ListByApp(ctx context.Context, appID uint) ([]db_models.Form, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	IncrementResponseCount(ctx context.Context, id uint) error
}

type FormRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) FormRepositoryInterface {
	return &FormRepository{db: db}
}

func (r *FormRepository) Create(ctx context.Context, form *db_models.Form) error {
	return r.db.WithContext(ctx).Create(form).Error
}

func (r *FormRepository) FindByID(ctx context.Context, id uint) (*db_models.Form, error) {
	var form db_models.Form
	err := r.db.WithContext(ctx).Preload("App").First(&form, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &form, nil
}

func (r *FormRepository) FindByIDWithOwner(ctx context.Context, id uint) (*db_models.Form, error) {
	var form db_models.Form
	err := r.db.WithContext(ctx).
		Preload("App").
		Preload("App.User").
		First(&form, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &form, nil
}

func (r *FormRepository) ListByApp(ctx context.Context, appID uint) ([]db_models.Form, error) {
	var forms []db_models.Form
	err := r.db.WithContext(ctx).Where("app_id = ?", appID).Find(&forms).Error
	if err != nil {
		return nil, err
	}
	return forms, nil
}

func (r *FormRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Form{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// IncrementResponseCount bumps the denormalized counter by exactly one.
// Executed once per accepted submission, after the response row is inserted.
func (r *FormRepository) IncrementResponseCount(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Form{}).
		Where("id = ?", id).
		UpdateColumn("response_count", gorm.Expr("response_count + 1")).Error
}
