// Package report builds xlsx workbooks for the export/report layer. It is
// a read-only consumer of the stores; nothing here mutates state.
package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vkuzn/depot-stock/internal/domain/alerts"
	"github.com/vkuzn/depot-stock/internal/domain/fuel"
	"github.com/vkuzn/depot-stock/internal/domain/inventory"
)

type MachineLister interface {
	List(ctx context.Context, listName string) ([]string, error)
}

// BuildStockWorkbook renders one sheet per category plus a Fuel sheet with
// the tank balance.
func BuildStockWorkbook(ctx context.Context, stores []alerts.ItemLister, ledger *fuel.Ledger) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())

	for i, st := range stores {
		items, err := st.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", st.Category(), err)
		}

		sheet := sheetName(st.Category())
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, err
			}
		}

		header := []interface{}{"id", "name", "quantity", "unit", "location", "alert_threshold", "updated_by", "updated_at"}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return nil, err
		}

		row := 2
		for _, it := range items {
			excelRow := []interface{}{
				it.ID,
				it.Name,
				it.Quantity,
				it.Unit,
				it.Location,
				it.AlertThreshold,
				it.UpdatedBy,
				it.UpdatedAt.Format("2006-01-02 15:04"),
			}
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
				return nil, err
			}
			row++
		}
	}

	balance, err := ledger.GetBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("fuel balance: %w", err)
	}
	if _, err := f.NewSheet("Fuel"); err != nil {
		return nil, err
	}
	fuelHeader := []interface{}{"total_liters"}
	if err := f.SetSheetRow("Fuel", "A1", &fuelHeader); err != nil {
		return nil, err
	}
	fuelRow := []interface{}{balance}
	if err := f.SetSheetRow("Fuel", "A2", &fuelRow); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildFuelHistoryWorkbook renders the tank history plus a machines
// reference sheet, most recent events first.
func BuildFuelHistoryWorkbook(ctx context.Context, ledger *fuel.Ledger, machines MachineLister) ([]byte, error) {
	events, err := ledger.ListHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("fuel history: %w", err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, "History"); err != nil {
		return nil, err
	}

	header := []interface{}{"date", "kind", "amount_liters", "machine", "shift", "actor"}
	if err := f.SetSheetRow("History", "A1", &header); err != nil {
		return nil, err
	}

	row := 2
	for _, e := range events {
		excelRow := []interface{}{
			e.CreatedAt.Format("2006-01-02 15:04"),
			string(e.Kind),
			e.Amount,
			e.Machine,
			string(e.Shift),
			e.Actor,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow("History", cell, &excelRow); err != nil {
			return nil, err
		}
		row++
	}

	if machines != nil {
		names, err := machines.List(ctx, "machines")
		if err != nil {
			return nil, fmt.Errorf("machines list: %w", err)
		}
		if _, err := f.NewSheet("Machines"); err != nil {
			return nil, err
		}
		for i, name := range names {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue("Machines", cell, name); err != nil {
				return nil, err
			}
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sheetName(c inventory.Category) string {
	switch c {
	case inventory.CategoryOil:
		return "Oils"
	case inventory.CategoryChemical:
		return "Chemicals"
	case inventory.CategoryPart:
		return "Parts"
	}
	return string(c)
}
