package services

import (
	"context"
	"log"
	"strconv"
	"strings"

	"devmatter/internal/models/db_models"
	"devmatter/internal/models/request_models"
	"devmatter/internal/repositories"
	"devmatter/pkg/utils"
)

// BillingServiceInterface ingests provider webhook events and mutates the
// plan/cycle state the quota ledger reads. Signature verification is handled
// by the provider integration upstream.
type BillingServiceInterface interface {
	HandleEvent(ctx context.Context, event request_models.BillingWebhookRequest) error
}

type BillingService struct {
	accountRepo repositories.AccountRepositoryInterface
	usageRepo   repositories.UsageRepositoryInterface
}

func NewBillingService(
	accountRepo repositories.AccountRepositoryInterface,
	usageRepo repositories.UsageRepositoryInterface,
) BillingServiceInterface {
	return &BillingService{accountRepo: accountRepo, usageRepo: usageRepo}
}

func (s *BillingService) HandleEvent(ctx context.Context, event request_models.BillingWebhookRequest) error {
	switch event.Type {
	case "order.created":
		return s.handleOrderCreated(ctx, event)
	case "subscription.revoked":
		return s.handleSubscriptionRevoked(ctx, event)
	default:
		log.Printf("Ignoring billing event type %q", event.Type)
		return nil
	}
}

func (s *BillingService) handleOrderCreated(ctx context.Context, event request_models.BillingWebhookRequest) error {
	userID, err := parseExternalUserID(event.Data.Customer.ExternalID)
	if err != nil {
		return err
	}

	sub := event.Data.Subscription
	if sub == nil || sub.RecurringInterval == "" {
		return nil
	}
	if !strings.HasPrefix(event.Data.Product.Name, "Launch") {
		return nil
	}
	if sub.CurrentPeriodStart == 0 || sub.CurrentPeriodEnd == 0 {
		return nil
	}

	if err := s.accountRepo.UpdatePricingPlan(ctx, userID, db_models.PlanLaunch); err != nil {
		return utils.ErrDatabaseError
	}

	return s.usageRepo.Transaction(ctx, func(tx repositories.UsageRepositoryInterface) error {
		if err := tx.LockUser(ctx, userID); err != nil {
			return err
		}
		now := utils.NowUnixSeconds()

		// Close any still-open cycle before opening the provider's period,
		// so only one cycle contains "now".
		current, err := tx.LatestCycle(ctx, userID)
		if err != nil {
			return err
		}
		if current != nil && current.EndDate > now {
			if err := tx.CloseCycle(ctx, current.ID, now); err != nil {
				return err
			}
		}

		cycle := &db_models.SubscriptionCycle{
			UserID:    userID,
			StartDate: sub.CurrentPeriodStart,
			EndDate:   sub.CurrentPeriodEnd,
		}
		if err := tx.CreateCycle(ctx, cycle); err != nil {
			return err
		}

		if sub.RecurringInterval == "month" {
			return tx.CreateMonth(ctx, &db_models.Month{
				SubscriptionCycleID: cycle.ID,
				StartDate:           cycle.StartDate,
				EndDate:             cycle.EndDate,
			})
		}

		// Yearly cycles decompose into monthly usage windows.
		start := cycle.StartDate
		for start < cycle.EndDate {
			end := utils.AddMonths(start, 1)
			if end > cycle.EndDate {
				end = cycle.EndDate
			}
			if err := tx.CreateMonth(ctx, &db_models.Month{
				SubscriptionCycleID: cycle.ID,
				StartDate:           start,
				EndDate:             end,
			}); err != nil {
				return err
			}
			start = end
		}
		return nil
	})
}

func (s *BillingService) handleSubscriptionRevoked(ctx context.Context, event request_models.BillingWebhookRequest) error {
	userID, err := parseExternalUserID(event.Data.Customer.ExternalID)
	if err != nil {
		return err
	}

	current, err := s.usageRepo.LatestCycle(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if current != nil {
		if err := s.usageRepo.CloseCycle(ctx, current.ID, utils.NowUnixSeconds()); err != nil {
			return utils.ErrDatabaseError
		}
	}

	if err := s.accountRepo.UpdatePricingPlan(ctx, userID, db_models.PlanFree); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func parseExternalUserID(externalID string) (uint, error) {
	id, err := strconv.ParseUint(externalID, 10, 64)
	if err != nil {
		return 0, utils.ErrAccountNotFound
	}
	return uint(id), nil
}
