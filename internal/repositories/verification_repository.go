package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"devmatter/internal/models/db_models"
)

type VerificationRepositoryInterface interface {
	Create(ctx context.Context, request *db_models.EmailVerificationRequest) error
	FindByUser(ctx context.Context, userID uint) (*db_models.EmailVerificationRequest, error)
	Delete(ctx context.Context, id uint) error
}

type VerificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepositoryInterface {
	return &VerificationRepository{db: db}
}

func (r *VerificationRepository) Create(ctx context.Context, request *db_models.EmailVerificationRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *VerificationRepository) FindByUser(ctx context.Context, userID uint) (*db_models.EmailVerificationRequest, error) {
	var request db_models.EmailVerificationRequest
	err := r.db.WithContext(ctx).First(&request, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *VerificationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&db_models.EmailVerificationRequest{}, "id = ?", id).Error
}
