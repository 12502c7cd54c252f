package alerts

import (
	"context"
	"testing"

	"github.com/vkuzn/depot-stock/internal/domain/inventory"
)

type stubStore struct {
	category inventory.Category
	items    []inventory.Item
}

func (s *stubStore) Category() inventory.Category { return s.category }

func (s *stubStore) List(ctx context.Context) ([]inventory.Item, error) {
	return s.items, nil
}

type stubBalance struct{ liters float64 }

func (s *stubBalance) GetBalance(ctx context.Context) (float64, error) { return s.liters, nil }

type stubCounter struct{ n int64 }

func (s *stubCounter) Count(ctx context.Context) (int64, error) { return s.n, nil }

func threeStores() []ItemLister {
	return []ItemLister{
		&stubStore{category: inventory.CategoryOil, items: []inventory.Item{
			{ID: 1, Name: "Hydraulic 46", Quantity: 2, AlertThreshold: 5},
			{ID: 2, Name: "Gear oil", Quantity: 40, AlertThreshold: 5},
		}},
		&stubStore{category: inventory.CategoryChemical, items: []inventory.Item{
			{ID: 3, Name: "Bentonite", Quantity: 10, AlertThreshold: 10},
		}},
		&stubStore{category: inventory.CategoryPart, items: []inventory.Item{
			{ID: 4, Name: "Cutter head seal", Quantity: 1, AlertThreshold: 2},
			{ID: 5, Name: "Bearing", Quantity: 8, AlertThreshold: 2},
		}},
	}
}

func TestComputeLowStock_OneLowPerCategory(t *testing.T) {
	agg := NewAggregator(threeStores(), &stubBalance{}, &stubCounter{})

	low, err := agg.ComputeLowStock(context.Background())
	if err != nil {
		t.Fatalf("ComputeLowStock failed: %v", err)
	}

	total := 0
	for _, items := range low {
		total += len(items)
	}
	if total != 3 {
		t.Fatalf("expected 3 low items, got %d", total)
	}

	want := map[inventory.Category]string{
		inventory.CategoryOil:      "Hydraulic 46",
		inventory.CategoryChemical: "Bentonite",
		inventory.CategoryPart:     "Cutter head seal",
	}
	for cat, name := range want {
		items := low[cat]
		if len(items) != 1 {
			t.Errorf("category %s: expected 1 low item, got %d", cat, len(items))
			continue
		}
		if items[0].Name != name {
			t.Errorf("category %s: expected %q, got %q", cat, name, items[0].Name)
		}
	}
}

func TestComputeLowStock_Empty(t *testing.T) {
	stores := []ItemLister{
		&stubStore{category: inventory.CategoryOil, items: []inventory.Item{
			{ID: 1, Name: "Gear oil", Quantity: 40, AlertThreshold: 5},
		}},
		&stubStore{category: inventory.CategoryChemical},
	}
	agg := NewAggregator(stores, &stubBalance{}, &stubCounter{})

	low, err := agg.ComputeLowStock(context.Background())
	if err != nil {
		t.Fatalf("ComputeLowStock failed: %v", err)
	}
	if len(low) != 0 {
		t.Errorf("expected empty map, got %v", low)
	}
}

func TestSummary(t *testing.T) {
	agg := NewAggregator(threeStores(), &stubBalance{liters: 750}, &stubCounter{n: 42})

	s, err := agg.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	if s.OilsCount != 2 || s.ChemicalsCount != 1 || s.PartsCount != 2 {
		t.Errorf("unexpected category counts: %+v", s)
	}
	if s.DieselLiters != 750 {
		t.Errorf("expected diesel 750, got %v", s.DieselLiters)
	}
	if s.LowStockCount != 3 {
		t.Errorf("expected 3 low-stock items, got %d", s.LowStockCount)
	}
	if s.ActivityCount != 42 {
		t.Errorf("expected 42 activities, got %d", s.ActivityCount)
	}
}
