package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"devmatter/internal/models/db_models"
	"devmatter/internal/repositories"
)

// lockingLedger models real transaction semantics: writes buffer inside a
// transaction and become visible to other transactions only at commit, and
// LockUser blocks until the holding transaction finishes. A transaction that
// skipped LockUser would read the pre-commit state, exactly like an unlocked
// SELECT under default isolation.
type lockingLedger struct {
	mu     sync.Mutex
	nextID uint

	cycles []*db_models.SubscriptionCycle
	months []*db_models.Month
	usages []*db_models.FormResponsesUsage

	userLocks map[uint]*sync.Mutex
}

func newLockingLedger() *lockingLedger {
	return &lockingLedger{nextID: 1, userLocks: map[uint]*sync.Mutex{}}
}

func (l *lockingLedger) id() uint {
	id := l.nextID
	l.nextID++
	return id
}

func (l *lockingLedger) Transaction(ctx context.Context, fn func(tx repositories.UsageRepositoryInterface) error) error {
	tx := &ledgerTx{ledger: l}
	err := fn(tx)
	if err == nil {
		tx.commit()
	}
	for _, held := range tx.held {
		held.Unlock()
	}
	return err
}

func (l *lockingLedger) LockUser(ctx context.Context, userID uint) error {
	panic("LockUser outside a transaction")
}

func (l *lockingLedger) CurrentCycle(ctx context.Context, userID uint, now int64) (*db_models.SubscriptionCycle, error) {
	panic("read outside a transaction")
}

func (l *lockingLedger) LatestCycle(ctx context.Context, userID uint) (*db_models.SubscriptionCycle, error) {
	panic("read outside a transaction")
}

func (l *lockingLedger) CreateCycle(ctx context.Context, cycle *db_models.SubscriptionCycle) error {
	panic("write outside a transaction")
}

func (l *lockingLedger) CloseCycle(ctx context.Context, cycleID uint, at int64) error {
	panic("write outside a transaction")
}

func (l *lockingLedger) CreateMonth(ctx context.Context, month *db_models.Month) error {
	panic("write outside a transaction")
}

func (l *lockingLedger) CurrentMonth(ctx context.Context, cycleID uint, now int64) (*db_models.Month, error) {
	panic("read outside a transaction")
}

func (l *lockingLedger) UsageForUpdate(ctx context.Context, monthID uint) (*db_models.FormResponsesUsage, error) {
	panic("read outside a transaction")
}

func (l *lockingLedger) CreateUsage(ctx context.Context, usage *db_models.FormResponsesUsage) error {
	panic("write outside a transaction")
}

func (l *lockingLedger) IncrementUsage(ctx context.Context, usageID uint) error {
	panic("write outside a transaction")
}

type ledgerTx struct {
	ledger *lockingLedger
	held   []*sync.Mutex

	cycles     []*db_models.SubscriptionCycle
	months     []*db_models.Month
	usages     []*db_models.FormResponsesUsage
	increments []uint
}

func (t *ledgerTx) commit() {
	l := t.ledger
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cycles = append(l.cycles, t.cycles...)
	l.months = append(l.months, t.months...)
	l.usages = append(l.usages, t.usages...)
	for _, id := range t.increments {
		for _, u := range l.usages {
			if u.ID == id {
				u.UsageCount++
			}
		}
	}
}

func (t *ledgerTx) Transaction(ctx context.Context, fn func(tx repositories.UsageRepositoryInterface) error) error {
	return fn(t)
}

func (t *ledgerTx) LockUser(ctx context.Context, userID uint) error {
	l := t.ledger
	l.mu.Lock()
	lock, ok := l.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		l.userLocks[userID] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	t.held = append(t.held, lock)
	return nil
}

func (t *ledgerTx) CurrentCycle(ctx context.Context, userID uint, now int64) (*db_models.SubscriptionCycle, error) {
	t.ledger.mu.Lock()
	defer t.ledger.mu.Unlock()
	for _, set := range [][]*db_models.SubscriptionCycle{t.ledger.cycles, t.cycles} {
		for _, c := range set {
			if c.UserID == userID && c.StartDate <= now && c.EndDate > now {
				return c, nil
			}
		}
	}
	return nil, nil
}

func (t *ledgerTx) LatestCycle(ctx context.Context, userID uint) (*db_models.SubscriptionCycle, error) {
	t.ledger.mu.Lock()
	defer t.ledger.mu.Unlock()
	var latest *db_models.SubscriptionCycle
	for _, set := range [][]*db_models.SubscriptionCycle{t.ledger.cycles, t.cycles} {
		for _, c := range set {
			if c.UserID == userID && (latest == nil || c.EndDate > latest.EndDate) {
				latest = c
			}
		}
	}
	return latest, nil
}

func (t *ledgerTx) CreateCycle(ctx context.Context, cycle *db_models.SubscriptionCycle) error {
	t.ledger.mu.Lock()
	cycle.ID = t.ledger.id()
	t.ledger.mu.Unlock()
	t.cycles = append(t.cycles, cycle)
	return nil
}

func (t *ledgerTx) CloseCycle(ctx context.Context, cycleID uint, at int64) error {
	t.ledger.mu.Lock()
	defer t.ledger.mu.Unlock()
	for _, set := range [][]*db_models.SubscriptionCycle{t.ledger.cycles, t.cycles} {
		for _, c := range set {
			if c.ID == cycleID {
				c.EndDate = at
			}
		}
	}
	return nil
}

func (t *ledgerTx) CreateMonth(ctx context.Context, month *db_models.Month) error {
	t.ledger.mu.Lock()
	month.ID = t.ledger.id()
	t.ledger.mu.Unlock()
	t.months = append(t.months, month)
	return nil
}

func (t *ledgerTx) CurrentMonth(ctx context.Context, cycleID uint, now int64) (*db_models.Month, error) {
	t.ledger.mu.Lock()
	defer t.ledger.mu.Unlock()
	for _, set := range [][]*db_models.Month{t.ledger.months, t.months} {
		for _, m := range set {
			if m.SubscriptionCycleID == cycleID && m.StartDate <= now && m.EndDate > now {
				return m, nil
			}
		}
	}
	return nil, nil
}

func (t *ledgerTx) UsageForUpdate(ctx context.Context, monthID uint) (*db_models.FormResponsesUsage, error) {
	t.ledger.mu.Lock()
	defer t.ledger.mu.Unlock()
	for _, set := range [][]*db_models.FormResponsesUsage{t.ledger.usages, t.usages} {
		for _, u := range set {
			if u.MonthID == monthID {
				return u, nil
			}
		}
	}
	return nil, nil
}

func (t *ledgerTx) CreateUsage(ctx context.Context, usage *db_models.FormResponsesUsage) error {
	t.ledger.mu.Lock()
	usage.ID = t.ledger.id()
	t.ledger.mu.Unlock()
	t.usages = append(t.usages, usage)
	return nil
}

func (t *ledgerTx) IncrementUsage(ctx context.Context, usageID uint) error {
	t.increments = append(t.increments, usageID)
	return nil
}

func TestAdmitConcurrentFirstSubmissionsShareOneCycle(t *testing.T) {
	ledger := newLockingLedger()
	svc := NewQuotaService(ledger)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Nil(t, svc.Admit(context.Background(), 1, db_models.PlanFree))
		}()
	}
	wg.Wait()

	// Both admissions must land in one cycle and one counter; a split
	// counter would let a user exceed the plan limit.
	assert.Len(t, ledger.cycles, 1)
	assert.Len(t, ledger.months, 1)
	require.Len(t, ledger.usages, 1)
	assert.Equal(t, 2, ledger.usages[0].UsageCount)
}

func TestEnsureCurrentCycleConcurrentCallsCreateOneCycle(t *testing.T) {
	ledger := newLockingLedger()
	svc := NewQuotaService(ledger)

	ids := make([]uint, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			cycle, err := svc.EnsureCurrentCycle(context.Background(), 1)
			if assert.NoError(t, err) && assert.NotNil(t, cycle) {
				ids[slot] = cycle.ID
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, ledger.cycles, 1)
	assert.Equal(t, ids[0], ids[1])
}
