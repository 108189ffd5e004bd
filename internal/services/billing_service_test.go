package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"devmatter/internal/models/db_models"
	"devmatter/internal/models/request_models"
	"devmatter/pkg/utils"
)

type stubAccountRepo struct {
	plans map[uint]db_models.PricingPlan
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{plans: map[uint]db_models.PricingPlan{}}
}

func (r *stubAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	return nil, nil
}

func (r *stubAccountRepo) FindByID(ctx context.Context, id uint) (*db_models.User, error) {
	return nil, nil
}

func (r *stubAccountRepo) Insert(ctx context.Context, user *db_models.User) error { return nil }

func (r *stubAccountRepo) UpdatePricingPlan(ctx context.Context, userID uint, plan db_models.PricingPlan) error {
	r.plans[userID] = plan
	return nil
}

func (r *stubAccountRepo) MarkEmailVerified(ctx context.Context, userID uint) error { return nil }

func orderCreated(userID string, product, interval string, start, end int64) request_models.BillingWebhookRequest {
	event := request_models.BillingWebhookRequest{Type: "order.created"}
	event.Data.Customer.ExternalID = userID
	event.Data.Product.Name = product
	event.Data.Subscription = &request_models.BillingSubscription{
		RecurringInterval:  interval,
		CurrentPeriodStart: start,
		CurrentPeriodEnd:   end,
	}
	return event
}

func TestOrderCreatedMonthlyUpgrade(t *testing.T) {
	usageRepo := newMemUsageRepo()
	accountRepo := newStubAccountRepo()
	svc := NewBillingService(accountRepo, usageRepo)

	start := utils.NowUnixSeconds()
	end := utils.AddMonths(start, 1)

	err := svc.HandleEvent(context.Background(), orderCreated("7", "Launch Monthly", "month", start, end))
	require.NoError(t, err)

	assert.Equal(t, db_models.PlanLaunch, accountRepo.plans[7])
	require.Len(t, usageRepo.cycles, 1)
	assert.Equal(t, start, usageRepo.cycles[0].StartDate)
	assert.Equal(t, end, usageRepo.cycles[0].EndDate)
	require.Len(t, usageRepo.months, 1)
	assert.Equal(t, start, usageRepo.months[0].StartDate)
	assert.Equal(t, end, usageRepo.months[0].EndDate)
}

func TestOrderCreatedYearlyDecomposesIntoMonths(t *testing.T) {
	usageRepo := newMemUsageRepo()
	svc := NewBillingService(newStubAccountRepo(), usageRepo)

	start := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC).Unix()
	end := utils.AddMonths(start, 12)

	err := svc.HandleEvent(context.Background(), orderCreated("7", "Launch Yearly", "year", start, end))
	require.NoError(t, err)

	require.Len(t, usageRepo.months, 12)
	assert.Equal(t, start, usageRepo.months[0].StartDate)
	assert.Equal(t, end, usageRepo.months[11].EndDate)

	// Windows tile the cycle with no gaps.
	for i := 1; i < len(usageRepo.months); i++ {
		assert.Equal(t, usageRepo.months[i-1].EndDate, usageRepo.months[i].StartDate)
	}
}

func TestOrderCreatedClosesOpenCycle(t *testing.T) {
	usageRepo := newMemUsageRepo()
	svc := NewBillingService(newStubAccountRepo(), usageRepo)

	now := utils.NowUnixSeconds()
	require.NoError(t, usageRepo.CreateCycle(context.Background(), &db_models.SubscriptionCycle{
		UserID:    7,
		StartDate: now - 1000,
		EndDate:   utils.AddMonths(now, 1),
	}))

	err := svc.HandleEvent(context.Background(), orderCreated("7", "Launch Monthly", "month", now, utils.AddMonths(now, 1)))
	require.NoError(t, err)

	require.Len(t, usageRepo.cycles, 2)
	assert.LessOrEqual(t, usageRepo.cycles[0].EndDate, utils.NowUnixSeconds())
}

func TestOrderCreatedIgnoresOtherProducts(t *testing.T) {
	usageRepo := newMemUsageRepo()
	accountRepo := newStubAccountRepo()
	svc := NewBillingService(accountRepo, usageRepo)

	now := utils.NowUnixSeconds()
	err := svc.HandleEvent(context.Background(), orderCreated("7", "Sticker pack", "month", now, utils.AddMonths(now, 1)))
	require.NoError(t, err)

	assert.Empty(t, accountRepo.plans)
	assert.Empty(t, usageRepo.cycles)
}

func TestOrderCreatedIgnoresOneTimePurchases(t *testing.T) {
	usageRepo := newMemUsageRepo()
	svc := NewBillingService(newStubAccountRepo(), usageRepo)

	event := request_models.BillingWebhookRequest{Type: "order.created"}
	event.Data.Customer.ExternalID = "7"
	event.Data.Product.Name = "Launch Monthly"

	require.NoError(t, svc.HandleEvent(context.Background(), event))
	assert.Empty(t, usageRepo.cycles)
}

func TestSubscriptionRevokedDowngradesAndClosesCycle(t *testing.T) {
	usageRepo := newMemUsageRepo()
	accountRepo := newStubAccountRepo()
	svc := NewBillingService(accountRepo, usageRepo)

	now := utils.NowUnixSeconds()
	require.NoError(t, usageRepo.CreateCycle(context.Background(), &db_models.SubscriptionCycle{
		UserID:    7,
		StartDate: now - 1000,
		EndDate:   utils.AddMonths(now, 6),
	}))

	event := request_models.BillingWebhookRequest{Type: "subscription.revoked"}
	event.Data.Customer.ExternalID = "7"

	require.NoError(t, svc.HandleEvent(context.Background(), event))

	assert.Equal(t, db_models.PlanFree, accountRepo.plans[7])
	assert.LessOrEqual(t, usageRepo.cycles[0].EndDate, utils.NowUnixSeconds())
}

func TestUnknownEventTypeIsIgnored(t *testing.T) {
	svc := NewBillingService(newStubAccountRepo(), newMemUsageRepo())

	err := svc.HandleEvent(context.Background(), request_models.BillingWebhookRequest{Type: "benefit.granted"})
	assert.NoError(t, err)
}
