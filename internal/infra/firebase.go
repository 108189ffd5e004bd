package infra

import (
	"context"
	"log"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// InitFirebaseMessaging builds the FCM client used for submission fan-out.
// Credentials come from FIREBASE_CREDENTIALS, falling back to application
// default credentials when unset.
func InitFirebaseMessaging() *messaging.Client {
	ctx := context.Background()

	var opts []option.ClientOption
	if credFile := os.Getenv("FIREBASE_CREDENTIALS"); credFile != "" {
		opts = append(opts, option.WithCredentialsFile(credFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		log.Fatalf("Firebase init error: %v", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Messaging client: %v", err)
	}

	return client
}
