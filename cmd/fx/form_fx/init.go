package form_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"devmatter/internal/repositories"
	"devmatter/internal/services"
)

var Module = fx.Provide(
	provideFormService, provideFormRepo, provideSchemaRepo, provideResponseRepo)

func provideFormRepo(db *gorm.DB) repositories.FormRepositoryInterface {
	return repositories.NewFormRepository(db)
}

func provideSchemaRepo(db *gorm.DB) repositories.SchemaRepositoryInterface {
	return repositories.NewSchemaRepository(db)
}

func provideResponseRepo(db *gorm.DB) repositories.ResponseRepositoryInterface {
	return repositories.NewResponseRepository(db)
}

func provideFormService(
	formRepo repositories.FormRepositoryInterface,
	schemaRepo repositories.SchemaRepositoryInterface,
	responseRepo repositories.ResponseRepositoryInterface,
	appRepo repositories.AppRepositoryInterface,
) services.FormServiceInterface {
	return services.NewFormService(formRepo, schemaRepo, responseRepo, appRepo)
}
