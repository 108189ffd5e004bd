package device_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"devmatter/internal/repositories"
	"devmatter/internal/services"
)

var Module = fx.Provide(
	provideDeviceService, provideDeviceRepo)

func provideDeviceRepo(db *gorm.DB) repositories.DeviceRepositoryInterface {
	return repositories.NewDeviceRepository(db)
}

func provideDeviceService(deviceRepo repositories.DeviceRepositoryInterface) services.DeviceServiceInterface {
	return services.NewDeviceService(deviceRepo)
}
