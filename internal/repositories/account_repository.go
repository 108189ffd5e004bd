package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"devmatter/internal/models/db_models"
)

type AccountRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindByID(ctx context.Context, id uint) (*db_models.User, error)
	Insert(ctx context.Context, user *db_models.User) error
	UpdatePricingPlan(ctx context.Context, userID uint, plan db_models.PricingPlan) error
	MarkEmailVerified(ctx context.Context, userID uint) error
}

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id uint) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *AccountRepository) Insert(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *AccountRepository) UpdatePricingPlan(ctx context.Context, userID uint, plan db_models.PricingPlan) error {
	return r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", userID).
		Update("pricing_plan", plan).Error
}

func (r *AccountRepository) MarkEmailVerified(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", userID).
		Update("email_verified", true).Error
}
