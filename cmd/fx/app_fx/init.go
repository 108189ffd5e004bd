package app_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"devmatter/internal/repositories"
	"devmatter/internal/services"
)

var Module = fx.Provide(
	provideAppService, provideSecretKeyService, provideAppRepo, provideSecretKeyRepo)

func provideAppRepo(db *gorm.DB) repositories.AppRepositoryInterface {
	return repositories.NewAppRepository(db)
}

func provideSecretKeyRepo(db *gorm.DB) repositories.SecretKeyRepositoryInterface {
	return repositories.NewSecretKeyRepository(db)
}

func provideAppService(
	appRepo repositories.AppRepositoryInterface,
	formRepo repositories.FormRepositoryInterface,
	secretKeyRepo repositories.SecretKeyRepositoryInterface,
) services.AppServiceInterface {
	return services.NewAppService(appRepo, formRepo, secretKeyRepo)
}

func provideSecretKeyService(
	secretKeyRepo repositories.SecretKeyRepositoryInterface,
	appRepo repositories.AppRepositoryInterface,
) services.SecretKeyServiceInterface {
	return services.NewSecretKeyService(secretKeyRepo, appRepo)
}
