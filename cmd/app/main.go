package main

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"log"
	"os"
	"devmatter/cmd/fx/account_fx"
	"devmatter/cmd/fx/app_fx"
	"devmatter/cmd/fx/billing_fx"
	"devmatter/cmd/fx/controllers_fx"
	"devmatter/cmd/fx/db_fx"
	"devmatter/cmd/fx/device_fx"
	"devmatter/cmd/fx/firebase_fx"
	"devmatter/cmd/fx/form_fx"
	"devmatter/cmd/fx/mail_fx"
	"devmatter/cmd/fx/submission_fx"
	"devmatter/internal/api/controllers"
	"devmatter/pkg/middleware"
)

// Submission bodies larger than this are rejected before validation.
const maxSubmissionBodyBytes = 20 << 20

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		firebase_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		app_fx.Module,
		form_fx.Module,
		device_fx.Module,
		submission_fx.Module,
		billing_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	appController *controllers.AppController,
	formController *controllers.FormController,
	secretKeyController *controllers.SecretKeyController,
	submissionController *controllers.SubmissionController,
	deviceController *controllers.DeviceController,
	billingController *controllers.BillingController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		appController,
		formController,
		secretKeyController,
		submissionController,
		deviceController,
		billingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	appController *controllers.AppController,
	formController *controllers.FormController,
	secretKeyController *controllers.SecretKeyController,
	submissionController *controllers.SubmissionController,
	deviceController *controllers.DeviceController,
	billingController *controllers.BillingController) {

	// Public surface: respondent intake and provider webhooks.
	r.POST("/forms/:formId",
		middleware.BodyLimitMiddleware(maxSubmissionBodyBytes),
		submissionController.Submit)
	r.POST("/billing/webhooks", billingController.HandleWebhook)

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())

	authed.POST("/verify-email", accountController.VerifyEmail)
	authed.POST("/verify-email/resend", accountController.ResendVerification)

	appsGroup := authed.Group("/apps")
	appsGroup.POST("", appController.CreateApp)
	appsGroup.GET("", appController.ListApps)
	appsGroup.GET("/:id", appController.GetApp)
	appsGroup.PUT("/:id", appController.UpdateApp)
	appsGroup.DELETE("/:id", appController.DeleteApp)
	appsGroup.POST("/:id/secret-keys", secretKeyController.CreateSecretKey)

	authed.DELETE("/secret-keys/:id", secretKeyController.RevokeSecretKey)

	formsGroup := authed.Group("/forms")
	formsGroup.POST("", formController.CreateForm)
	formsGroup.GET("/:id", formController.GetForm)
	formsGroup.PATCH("/:id", formController.UpdateForm)

	authed.PATCH("/responses/:id/archive", formController.ArchiveResponse)

	authed.POST("/fcm-registration", deviceController.RegisterDevice)
}
