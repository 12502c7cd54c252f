package fuel

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vkuzn/depot-stock/internal/domain/errs"
	"github.com/vkuzn/depot-stock/internal/infra/metrics"
)

// Ledger owns the depot's shared diesel balance. Consumption is the one
// place where a request is rejected because of current state rather than
// malformed input, so the check and the decrement happen atomically in the
// Store and never as a read-then-write in this layer.
type Ledger struct {
	store Store
}

func NewLedger(store Store) *Ledger { return &Ledger{store: store} }

func (l *Ledger) GetBalance(ctx context.Context) (float64, error) {
	return l.store.Balance(ctx)
}

// RecordConsumption draws amount liters for a machine/shift and returns
// the new balance. A draw larger than the balance fails with
// ErrInsufficientStock and leaves balance, events and audit untouched.
func (l *Ledger) RecordConsumption(ctx context.Context, machine string, shift Shift, amount float64, actor string) (float64, error) {
	if strings.TrimSpace(machine) == "" {
		return 0, errs.Validationf("machine must not be empty")
	}
	if !shift.Valid() {
		return 0, errs.Validationf("unknown shift %q", shift)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, errs.Validationf("amount must be a number")
	}
	if amount <= 0 {
		return 0, errs.Validationf("amount must be > 0, got %v", amount)
	}

	newBalance, ok, err := l.store.Consume(ctx, machine, shift, amount, actor)
	if err != nil {
		return 0, err
	}
	if !ok {
		metrics.FuelConsumptionRejected.Inc()
		return 0, fmt.Errorf("%w: draw of %vL exceeds tank balance", errs.ErrInsufficientStock, amount)
	}

	metrics.MutationsTotal.WithLabelValues("fuel", "consumption").Inc()
	return newBalance, nil
}

// SetBalance overrides the balance for physical reconciliation (refill or
// recount). It deliberately bypasses the consumption-only discipline.
func (l *Ledger) SetBalance(ctx context.Context, newTotal float64, actor string) (float64, error) {
	if math.IsNaN(newTotal) || math.IsInf(newTotal, 0) {
		return 0, errs.Validationf("total must be a number")
	}
	if newTotal < 0 {
		return 0, errs.Validationf("total must be >= 0, got %v", newTotal)
	}

	if _, err := l.store.Override(ctx, newTotal, actor); err != nil {
		return 0, err
	}

	metrics.MutationsTotal.WithLabelValues("fuel", "stock_adjustment").Inc()
	return newTotal, nil
}

// ListHistory returns tank events most recent first. The sort is applied
// here so the store may return its natural order.
func (l *Ledger) ListHistory(ctx context.Context) ([]Event, error) {
	events, err := l.store.History(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].CreatedAt.Equal(events[j].CreatedAt) {
			return events[i].ID > events[j].ID
		}
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	return events, nil
}
