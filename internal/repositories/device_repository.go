package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"devmatter/internal/models/db_models"
)

type DeviceRepositoryInterface interface {
	FindByIDAndUser(ctx context.Context, id string, userID uint) (*db_models.Device, error)
	Create(ctx context.Context, device *db_models.Device) error
	UpdateToken(ctx context.Context, id string, userID uint, token string) error
	ListByUser(ctx context.Context, userID uint) ([]db_models.Device, error)
}

type DeviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) DeviceRepositoryInterface {
	return &DeviceRepository{db: db}
}

func (r *DeviceRepository) FindByIDAndUser(ctx context.Context, id string, userID uint) (*db_models.Device, error) {
	var device db_models.Device
	err := r.db.WithContext(ctx).First(&device, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &device, nil
}

func (r *DeviceRepository) Create(ctx context.Context, device *db_models.Device) error {
	return r.db.WithContext(ctx).Create(device).Error
}

func (r *DeviceRepository) UpdateToken(ctx context.Context, id string, userID uint, token string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Device{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("fcm_token", token).Error
}

func (r *DeviceRepository) ListByUser(ctx context.Context, userID uint) ([]db_models.Device, error) {
	var devices []db_models.Device
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&devices).Error
	if err != nil {
		return nil, err
	}
	return devices, nil
}
