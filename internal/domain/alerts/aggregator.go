package alerts

import (
	"context"
	"fmt"

	"github.com/vkuzn/depot-stock/internal/domain/inventory"
)

type ItemLister interface {
	Category() inventory.Category
	List(ctx context.Context) ([]inventory.Item, error)
}

type BalanceReader interface {
	GetBalance(ctx context.Context) (float64, error)
}

type ActivityCounter interface {
	Count(ctx context.Context) (int64, error)
}

// Summary is the overview screen's counters.
type Summary struct {
	OilsCount      int
	ChemicalsCount int
	PartsCount     int
	DieselLiters   float64
	LowStockCount  int
	ActivityCount  int64
}

// Aggregator derives the cross-category alert view. It holds no state and
// caches nothing: every call fans out to the live stores, trading
// efficiency for freshness.
type Aggregator struct {
	stores []ItemLister
	fuel   BalanceReader
	audit  ActivityCounter
}

func NewAggregator(stores []ItemLister, fuel BalanceReader, audit ActivityCounter) *Aggregator {
	return &Aggregator{stores: stores, fuel: fuel, audit: audit}
}

// ComputeLowStock returns the low items of every category, keyed by
// category. Items keep their store's order; categories with nothing low
// are absent from the map.
func (a *Aggregator) ComputeLowStock(ctx context.Context) (map[inventory.Category][]inventory.Item, error) {
	out := make(map[inventory.Category][]inventory.Item)
	for _, st := range a.stores {
		items, err := st.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", st.Category(), err)
		}
		for _, it := range items {
			if IsLow(it) {
				out[st.Category()] = append(out[st.Category()], it)
			}
		}
	}
	return out, nil
}

func (a *Aggregator) Summary(ctx context.Context) (Summary, error) {
	var s Summary
	for _, st := range a.stores {
		items, err := st.List(ctx)
		if err != nil {
			return Summary{}, fmt.Errorf("list %s: %w", st.Category(), err)
		}
		switch st.Category() {
		case inventory.CategoryOil:
			s.OilsCount = len(items)
		case inventory.CategoryChemical:
			s.ChemicalsCount = len(items)
		case inventory.CategoryPart:
			s.PartsCount = len(items)
		}
		for _, it := range items {
			if IsLow(it) {
				s.LowStockCount++
			}
		}
	}

	balance, err := a.fuel.GetBalance(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("fuel balance: %w", err)
	}
	s.DieselLiters = balance

	count, err := a.audit.Count(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("audit count: %w", err)
	}
	s.ActivityCount = count

	return s, nil
}
