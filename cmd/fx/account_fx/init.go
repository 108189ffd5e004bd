package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"devmatter/internal/repositories"
	"devmatter/internal/services"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideVerificationRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepositoryInterface {
	return repositories.NewAccountRepository(db)
}

func provideVerificationRepo(db *gorm.DB) repositories.VerificationRepositoryInterface {
	return repositories.NewVerificationRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	verificationRepo repositories.VerificationRepositoryInterface,
	mailService services.IMailService,
	quotaService services.QuotaServiceInterface,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, verificationRepo, mailService, quotaService)
}
