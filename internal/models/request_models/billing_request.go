package request_models

// BillingWebhookRequest is the provider event shape consumed by the billing
// webhook. Signature verification happens upstream of this service.
type BillingWebhookRequest struct {
	Type string           `json:"type" binding:"required"`
	Data BillingEventData `json:"data"`
}

type BillingEventData struct {
	Customer     BillingCustomer      `json:"customer"`
	Product      BillingProduct       `json:"product"`
	Subscription *BillingSubscription `json:"subscription"`
}

type BillingCustomer struct {
	ExternalID string `json:"externalId"`
}

type BillingProduct struct {
	Name string `json:"name"`
}

type BillingSubscription struct {
	RecurringInterval  string `json:"recurringInterval"`
	CurrentPeriodStart int64  `json:"currentPeriodStart"`
	CurrentPeriodEnd   int64  `json:"currentPeriodEnd"`
}
