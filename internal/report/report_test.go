package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vkuzn/depot-stock/internal/domain/alerts"
	"github.com/vkuzn/depot-stock/internal/domain/fuel"
	"github.com/vkuzn/depot-stock/internal/domain/inventory"
)

type stubStore struct {
	category inventory.Category
	items    []inventory.Item
}

func (s *stubStore) Category() inventory.Category { return s.category }

func (s *stubStore) List(ctx context.Context) ([]inventory.Item, error) { return s.items, nil }

type stubFuelStore struct {
	balance float64
	events  []fuel.Event
}

func (s *stubFuelStore) Balance(ctx context.Context) (float64, error) { return s.balance, nil }

func (s *stubFuelStore) Consume(ctx context.Context, machine string, shift fuel.Shift, amount float64, actor string) (float64, bool, error) {
	return 0, false, nil
}

func (s *stubFuelStore) Override(ctx context.Context, newTotal float64, actor string) (float64, error) {
	return 0, nil
}

func (s *stubFuelStore) History(ctx context.Context) ([]fuel.Event, error) { return s.events, nil }

type stubMachines struct{ names []string }

func (s *stubMachines) List(ctx context.Context, listName string) ([]string, error) {
	return s.names, nil
}

func TestBuildStockWorkbook(t *testing.T) {
	stores := []alerts.ItemLister{
		&stubStore{category: inventory.CategoryOil, items: []inventory.Item{
			{ID: 1, Name: "Hydraulic 46", Quantity: 20, Unit: "L", AlertThreshold: 5, UpdatedBy: "Alice", UpdatedAt: time.Now()},
		}},
		&stubStore{category: inventory.CategoryChemical},
		&stubStore{category: inventory.CategoryPart, items: []inventory.Item{
			{ID: 7, Name: "Bearing", Quantity: 3, Unit: "pcs", Location: "Rack B2", AlertThreshold: 2, UpdatedBy: "Bob", UpdatedAt: time.Now()},
		}},
	}
	ledger := fuel.NewLedger(&stubFuelStore{balance: 850})

	data, err := BuildStockWorkbook(context.Background(), stores, ledger)
	if err != nil {
		t.Fatalf("BuildStockWorkbook failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not reopen: %v", err)
	}
	defer func() { _ = f.Close() }()

	for _, sheet := range []string{"Oils", "Chemicals", "Parts", "Fuel"} {
		if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
			t.Errorf("missing sheet %q", sheet)
		}
	}

	if got, _ := f.GetCellValue("Oils", "B2"); got != "Hydraulic 46" {
		t.Errorf("Oils B2 = %q, want Hydraulic 46", got)
	}
	if got, _ := f.GetCellValue("Parts", "E2"); got != "Rack B2" {
		t.Errorf("Parts E2 = %q, want Rack B2", got)
	}
	if got, _ := f.GetCellValue("Fuel", "A2"); got != "850" {
		t.Errorf("Fuel A2 = %q, want 850", got)
	}
}

func TestBuildFuelHistoryWorkbook(t *testing.T) {
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	store := &stubFuelStore{events: []fuel.Event{
		{ID: 1, CreatedAt: base.Add(-time.Hour), Kind: fuel.KindManualAdjustment, Amount: 500, Actor: "Bob"},
		{ID: 2, CreatedAt: base, Kind: fuel.KindConsumption, Amount: 120, Machine: "Drill-1", Shift: fuel.ShiftDay, Actor: "Alice"},
	}}
	ledger := fuel.NewLedger(store)
	machines := &stubMachines{names: []string{"Drill-1", "Pump-1"}}

	data, err := BuildFuelHistoryWorkbook(context.Background(), ledger, machines)
	if err != nil {
		t.Fatalf("BuildFuelHistoryWorkbook failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not reopen: %v", err)
	}
	defer func() { _ = f.Close() }()

	// most recent event first
	if got, _ := f.GetCellValue("History", "D2"); got != "Drill-1" {
		t.Errorf("History D2 = %q, want Drill-1 (most recent first)", got)
	}
	if got, _ := f.GetCellValue("History", "B3"); got != "manual_adjustment" {
		t.Errorf("History B3 = %q, want manual_adjustment", got)
	}
	if got, _ := f.GetCellValue("Machines", "A2"); got != "Pump-1" {
		t.Errorf("Machines A2 = %q, want Pump-1", got)
	}
}
