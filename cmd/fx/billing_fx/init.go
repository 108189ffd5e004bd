package billing_fx

import (
	"go.uber.org/fx"
	"devmatter/internal/repositories"
	"devmatter/internal/services"
)

var Module = fx.Provide(provideBillingService)

func provideBillingService(
	accountRepo repositories.AccountRepositoryInterface,
	usageRepo repositories.UsageRepositoryInterface,
) services.BillingServiceInterface {
	return services.NewBillingService(accountRepo, usageRepo)
}
