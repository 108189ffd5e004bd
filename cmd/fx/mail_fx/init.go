package mail_fx

import (
	"go.uber.org/fx"
	"log"
	"devmatter/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	mailService, err := services.NewSMTPMailService(services.SMTPConfigFromEnv())
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
	}
	return mailService
}
