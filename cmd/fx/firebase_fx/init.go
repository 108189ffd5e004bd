package firebase_fx

import (
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"devmatter/internal/infra"
)

var Module = fx.Provide(provideMessagingClient)

func provideMessagingClient() *messaging.Client {
	return infra.InitFirebaseMessaging()
}
