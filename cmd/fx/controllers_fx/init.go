package controllers_fx

import (
	"go.uber.org/fx"
	"devmatter/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewAppController),
	fx.Provide(controllers.NewFormController),
	fx.Provide(controllers.NewSecretKeyController),
	fx.Provide(controllers.NewSubmissionController),
	fx.Provide(controllers.NewDeviceController),
	fx.Provide(controllers.NewBillingController))
