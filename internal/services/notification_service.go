package services

import (
	"context"
	"log"
	"strconv"

	"firebase.google.com/go/v4/messaging"
	"devmatter/internal/models/db_models"
	"devmatter/internal/repositories"
)

// NotificationServiceInterface fans a new submission out to the form owner's
// registered devices. Delivery is best-effort: the submission has already
// been committed, so failures are logged and discarded.
type NotificationServiceInterface interface {
	NotifyNewSubmission(ctx context.Context, form *db_models.Form, responseID uint)
}

type NotificationService struct {
	client     *messaging.Client
	deviceRepo repositories.DeviceRepositoryInterface
}

func NewNotificationService(client *messaging.Client, deviceRepo repositories.DeviceRepositoryInterface) NotificationServiceInterface {
	return &NotificationService{client: client, deviceRepo: deviceRepo}
}

func (s *NotificationService) NotifyNewSubmission(ctx context.Context, form *db_models.Form, responseID uint) {
	devices, err := s.deviceRepo.ListByUser(ctx, form.App.UserID)
	if err != nil {
		log.Printf("Error loading devices for user %d: %v", form.App.UserID, err)
		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FcmToken)
	}

	message := &messaging.MulticastMessage{
		Notification: &messaging.Notification{
			Title: "New Form Submission",
			Body:  "A new form submission has been received for " + form.Name + ".",
		},
		Data: map[string]string{
			"appId":      strconv.FormatUint(uint64(form.App.ID), 10),
			"appName":    form.App.Name,
			"appUrl":     form.App.URL,
			"formId":     strconv.FormatUint(uint64(form.ID), 10),
			"formName":   form.Name,
			"formPublic": strconv.FormatBool(form.Public),
			"responseId": strconv.FormatUint(uint64(responseID), 10),
		},
		Tokens: tokens,
	}

	if _, err := s.client.SendEachForMulticast(ctx, message); err != nil {
		log.Printf("Error sending submission notification for form %d: %v", form.ID, err)
	}
}
