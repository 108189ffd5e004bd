package services

import (
	"context"

	"devmatter/internal/models/db_models"
	"devmatter/internal/repositories"
	"devmatter/pkg/utils"
)

type DeviceServiceInterface interface {
	RegisterDevice(ctx context.Context, userID uint, deviceID, token, platform string) error
}

type DeviceService struct {
	deviceRepo repositories.DeviceRepositoryInterface
}

func NewDeviceService(deviceRepo repositories.DeviceRepositoryInterface) DeviceServiceInterface {
	return &DeviceService{deviceRepo: deviceRepo}
}

// RegisterDevice upserts an FCM registration by client device id. Re-registering
// an existing device only refreshes its token.
func (s *DeviceService) RegisterDevice(ctx context.Context, userID uint, deviceID, token, platform string) error {
	existing, err := s.deviceRepo.FindByIDAndUser(ctx, deviceID, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if existing == nil {
		if err := s.deviceRepo.Create(ctx, &db_models.Device{
			ID:       deviceID,
			UserID:   userID,
			FcmToken: token,
			Platform: platform,
		}); err != nil {
			return utils.ErrDatabaseError
		}
		return nil
	}

	if err := s.deviceRepo.UpdateToken(ctx, deviceID, userID, token); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
