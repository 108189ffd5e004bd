package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"devmatter/internal/models/db_models"
)

// UsageRepositoryInterface backs the quota ledger. Transaction hands the
// callback a repository bound to the transaction; callers that read cycle or
// counter state before writing must take LockUser first so the
// check-then-create sequence for one user is serialized against concurrent
// submissions.
type UsageRepositoryInterface interface {
	Transaction(ctx context.Context, fn func(tx UsageRepositoryInterface) error) error
	LockUser(ctx context.Context, userID uint) error

	CurrentCycle(ctx context.Context, userID uint, now int64) (*db_models.SubscriptionCycle, error)
	LatestCycle(ctx context.Context, userID uint) (*db_models.SubscriptionCycle, error)
	CreateCycle(ctx context.Context, cycle *db_models.SubscriptionCycle) error
	CloseCycle(ctx context.Context, cycleID uint, at int64) error

	CreateMonth(ctx context.Context, month *db_models.Month) error
	CurrentMonth(ctx context.Context, cycleID uint, now int64) (*db_models.Month, error)

	UsageForUpdate(ctx context.Context, monthID uint) (*db_models.FormResponsesUsage, error)
	CreateUsage(ctx context.Context, usage *db_models.FormResponsesUsage) error
	IncrementUsage(ctx context.Context, usageID uint) error
}

type UsageRepository struct {
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) UsageRepositoryInterface {
	return &UsageRepository{db: db}
}

func (r *UsageRepository) Transaction(ctx context.Context, fn func(tx UsageRepositoryInterface) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UsageRepository{db: tx})
	})
}

// LockUser takes a transaction-scoped advisory lock keyed by user id, held
// until commit or rollback. Two transactions admitting submissions for the
// same user cannot both observe "no active cycle" and insert one each.
func (r *UsageRepository) LockUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", int64(userID)).Error
}

// CurrentCycle returns the cycle whose [startDate, endDate) interval contains
// now, preferring the most recent endDate should overlapping rows ever exist.
func (r *UsageRepository) CurrentCycle(ctx context.Context, userID uint, now int64) (*db_models.SubscriptionCycle, error) {
	var cycle db_models.SubscriptionCycle
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND start_date <= ? AND end_date > ?", userID, now, now).
		Order("end_date DESC").
		First(&cycle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cycle, nil
}

func (r *UsageRepository) LatestCycle(ctx context.Context, userID uint) (*db_models.SubscriptionCycle, error) {
	var cycle db_models.SubscriptionCycle
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("end_date DESC").
		First(&cycle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cycle, nil
}

func (r *UsageRepository) CreateCycle(ctx context.Context, cycle *db_models.SubscriptionCycle) error {
	return r.db.WithContext(ctx).Create(cycle).Error
}

func (r *UsageRepository) CloseCycle(ctx context.Context, cycleID uint, at int64) error {
	return r.db.WithContext(ctx).
		Model(&db_models.SubscriptionCycle{}).
		Where("id = ?", cycleID).
		Update("end_date", at).Error
}

func (r *UsageRepository) CreateMonth(ctx context.Context, month *db_models.Month) error {
	return r.db.WithContext(ctx).Create(month).Error
}

// CurrentMonth finds the billing month of a cycle that covers now. Monthly
// cycles have exactly one; yearly cycles have twelve.
func (r *UsageRepository) CurrentMonth(ctx context.Context, cycleID uint, now int64) (*db_models.Month, error) {
	var month db_models.Month
	err := r.db.WithContext(ctx).
		Where("subscription_cycle_id = ? AND start_date <= ? AND end_date > ?", cycleID, now, now).
		Order("end_date DESC").
		First(&month).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &month, nil
}

// UsageForUpdate reads the counter row under a row-level lock, so two
// concurrent submissions for the same user cannot both pass the limit check.
func (r *UsageRepository) UsageForUpdate(ctx context.Context, monthID uint) (*db_models.FormResponsesUsage, error) {
	var usage db_models.FormResponsesUsage
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("month_id = ?", monthID).
		First(&usage).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &usage, nil
}

func (r *UsageRepository) CreateUsage(ctx context.Context, usage *db_models.FormResponsesUsage) error {
	return r.db.WithContext(ctx).Create(usage).Error
}

func (r *UsageRepository) IncrementUsage(ctx context.Context, usageID uint) error {
	return r.db.WithContext(ctx).
		Model(&db_models.FormResponsesUsage{}).
		Where("id = ?", usageID).
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1")).Error
}
