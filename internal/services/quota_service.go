package services

import (
	"context"
	"log"

	"devmatter/internal/models/db_models"
	"devmatter/internal/repositories"
	"devmatter/pkg/utils"
)

// Plan submission limits per billing month. Plans not listed here are
// unlimited.
var planLimits = map[db_models.PricingPlan]int{
	db_models.PlanFree:   100,
	db_models.PlanLaunch: 1000,
}

// QuotaServiceInterface is the usage ledger. Admit counts one submission
// against the user's current billing month, creating the cycle, month and
// counter rows lazily on first use.
type QuotaServiceInterface interface {
	Admit(ctx context.Context, userID uint, plan db_models.PricingPlan) *utils.SubmissionError
	EnsureCurrentCycle(ctx context.Context, userID uint) (*db_models.SubscriptionCycle, error)
}

type QuotaService struct {
	usageRepo repositories.UsageRepositoryInterface
}

func NewQuotaService(usageRepo repositories.UsageRepositoryInterface) QuotaServiceInterface {
	return &QuotaService{usageRepo: usageRepo}
}

// EnsureCurrentCycle returns the subscription cycle containing now, creating
// a one-month cycle plus its first billing month when none is active. The
// whole operation runs in one transaction under the per-user lock, so two
// overlapping cycles are never left behind.
func (s *QuotaService) EnsureCurrentCycle(ctx context.Context, userID uint) (*db_models.SubscriptionCycle, error) {
	var cycle *db_models.SubscriptionCycle

	err := s.usageRepo.Transaction(ctx, func(tx repositories.UsageRepositoryInterface) error {
		if err := tx.LockUser(ctx, userID); err != nil {
			return err
		}
		now := utils.NowUnixSeconds()

		existing, err := tx.CurrentCycle(ctx, userID, now)
		if err != nil {
			return err
		}
		if existing != nil {
			cycle = existing
			return nil
		}

		created, err := createCycleWithMonth(ctx, tx, userID, now)
		if err != nil {
			return err
		}
		cycle = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cycle, nil
}

func (s *QuotaService) Admit(ctx context.Context, userID uint, plan db_models.PricingPlan) *utils.SubmissionError {
	var rejected *utils.SubmissionError

	err := s.usageRepo.Transaction(ctx, func(tx repositories.UsageRepositoryInterface) error {
		// Serializes the whole check-then-create sequence per user; without
		// it two first-of-the-cycle submissions would each insert their own
		// cycle and counter, splitting the count.
		if err := tx.LockUser(ctx, userID); err != nil {
			return err
		}
		now := utils.NowUnixSeconds()

		cycle, err := tx.CurrentCycle(ctx, userID, now)
		if err != nil {
			return err
		}
		if cycle == nil {
			cycle, err = createCycleWithMonth(ctx, tx, userID, now)
			if err != nil {
				return err
			}
		}

		month, err := tx.CurrentMonth(ctx, cycle.ID, now)
		if err != nil {
			return err
		}
		if month == nil {
			// Defensive: every active cycle should already have a month
			// covering now, but a hole never blocks a submission.
			end := utils.AddMonths(now, 1)
			if end > cycle.EndDate {
				end = cycle.EndDate
			}
			month = &db_models.Month{
				SubscriptionCycleID: cycle.ID,
				StartDate:           now,
				EndDate:             end,
			}
			if err := tx.CreateMonth(ctx, month); err != nil {
				return err
			}
		}

		usage, err := tx.UsageForUpdate(ctx, month.ID)
		if err != nil {
			return err
		}

		if usage == nil {
			// First submission of the month: the row starts at 1 directly,
			// no redundant increment.
			return tx.CreateUsage(ctx, &db_models.FormResponsesUsage{
				UserID:     userID,
				MonthID:    month.ID,
				UsageCount: 1,
			})
		}

		if limit, metered := planLimits[plan]; metered && usage.UsageCount >= limit {
			rejected = utils.ErrLimitReached
			return nil
		}

		return tx.IncrementUsage(ctx, usage.ID)
	})
	if err != nil {
		log.Printf("quota admission failed for user %d: %v", userID, err)
		return utils.ErrSubmissionInternal
	}

	return rejected
}

func createCycleWithMonth(ctx context.Context, tx repositories.UsageRepositoryInterface, userID uint, now int64) (*db_models.SubscriptionCycle, error) {
	cycle := &db_models.SubscriptionCycle{
		UserID:    userID,
		StartDate: now,
		EndDate:   utils.AddMonths(now, 1),
	}
	if err := tx.CreateCycle(ctx, cycle); err != nil {
		return nil, err
	}
	if err := tx.CreateMonth(ctx, &db_models.Month{
		SubscriptionCycleID: cycle.ID,
		StartDate:           cycle.StartDate,
		EndDate:             cycle.EndDate,
	}); err != nil {
		return nil, err
	}
	return cycle, nil
}
