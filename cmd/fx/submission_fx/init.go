package submission_fx

import (
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"devmatter/internal/repositories"
	"devmatter/internal/services"
)

var Module = fx.Provide(
	provideSubmissionService,
	provideAccessService,
	provideQuotaService,
	provideNotificationService,
	provideUsageRepo)

func provideUsageRepo(db *gorm.DB) repositories.UsageRepositoryInterface {
	return repositories.NewUsageRepository(db)
}

func provideAccessService(secretKeyRepo repositories.SecretKeyRepositoryInterface) services.AccessServiceInterface {
	return services.NewAccessService(secretKeyRepo)
}

func provideQuotaService(usageRepo repositories.UsageRepositoryInterface) services.QuotaServiceInterface {
	return services.NewQuotaService(usageRepo)
}

func provideNotificationService(
	client *messaging.Client,
	deviceRepo repositories.DeviceRepositoryInterface,
) services.NotificationServiceInterface {
	return services.NewNotificationService(client, deviceRepo)
}

func provideSubmissionService(
	formRepo repositories.FormRepositoryInterface,
	schemaRepo repositories.SchemaRepositoryInterface,
	responseRepo repositories.ResponseRepositoryInterface,
	accessSvc services.AccessServiceInterface,
	quotaSvc services.QuotaServiceInterface,
	notifySvc services.NotificationServiceInterface,
) services.SubmissionServiceInterface {
	return services.NewSubmissionService(formRepo, schemaRepo, responseRepo, accessSvc, quotaSvc, notifySvc)
}
