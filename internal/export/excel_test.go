// internal/export/excel_test.go
package export

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/reinhardt-bit/OrderFlow-Pricing/internal"
	"github.com/reinhardt-bit/OrderFlow-Pricing/internal/engine"
)

func TestOrdersToExcel(t *testing.T) {
	created := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	orders := []internal.Order{
		{
			ID:           1,
			Reference:    "ref-1",
			CreatedAt:    created,
			LeadTimeDays: 30,
			ClientName:   "Client A",
			Contact:      "11 98765-4321",
			Freight:      10.5,
			Discount:     5,
			TotalPrice:   1562.5,
			Comment:      "Urgent order",
			Items: []internal.OrderItem{
				{ProductID: 7, Description: "Caixa 7 gavetas", Color: "Branco", Reinforced: true, BasePrice: 760, Price: 775},
				{Description: "Caixa 7 gavetas", BasePrice: 782, Price: 782},
			},
		},
		{
			ID:         2,
			CreatedAt:  created,
			ClientName: "Client B",
			Completed:  true,
		},
	}
	calc := engine.DeadlineCalculator{Now: func() time.Time { return time.Date(2025, 1, 30, 9, 0, 0, 0, time.UTC) }}

	tmpFile := filepath.Join(t.TempDir(), "orders_test.xlsx")
	if err := OrdersToExcel(orders, calc, tmpFile); err != nil {
		t.Fatalf("OrdersToExcel failed: %v", err)
	}

	f, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	sheetRows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("failed to get sheet rows: %v", err)
	}

	if len(sheetRows) != 4 {
		t.Fatalf("expected 4 rows (header + 3 data), got %d", len(sheetRows))
	}

	if !reflect.DeepEqual(sheetRows[0], Headers) {
		t.Errorf("expected headers %v, got %v", Headers, sheetRows[0])
	}

	expectedFirst := []string{
		"1",
		"ref-1",
		"01/01/2025 12:00",
		"Client A",
		"11 98765-4321",
		"31/01/2025",
		"Entrega amanhã",
		"Caixa 7 gavetas",
		"Branco",
		"Sim",
		"R$ 775,00",
		"R$ 10,50",
		"R$ 5,00",
		"R$ 1.562,50",
		"Urgent order",
		"Pending",
	}
	if !reflect.DeepEqual(sheetRows[1], expectedFirst) {
		t.Errorf("expected data row %v, got %v", expectedFirst, sheetRows[1])
	}

	if sheetRows[2][10] != "R$ 782,00" || sheetRows[2][9] != "" {
		t.Errorf("unexpected second item row %v", sheetRows[2])
	}

	last := sheetRows[3]
	if last[0] != "2" || last[6] != engine.LabelNotInformed || last[15] != "Completed" {
		t.Errorf("unexpected row for order without items %v", last)
	}
}

func TestOrdersToExcel_EmptyData(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "orders_empty_test.xlsx")

	if err := OrdersToExcel(nil, engine.DeadlineCalculator{}, tmpFile); err != nil {
		t.Fatalf("OrdersToExcel failed: %v", err)
	}

	f, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	sheetRows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("failed to get sheet rows: %v", err)
	}

	if len(sheetRows) != 1 {
		t.Fatalf("expected only header row, got %d rows", len(sheetRows))
	}
}

func TestOrdersToExcel_BadPath(t *testing.T) {
	badPath := filepath.Join(t.TempDir(), "missing", "dir", "orders.xlsx")

	if err := OrdersToExcel(nil, engine.DeadlineCalculator{}, badPath); err == nil {
		t.Error("expected error saving to a missing directory")
	}
}

func TestOrdersToExcel_UnsupportedExtension(t *testing.T) {
	calc := engine.DeadlineCalculator{}
	orders := []internal.Order{{ID: 1, ClientName: "Client A"}}

	if err := OrdersToExcel(orders, calc, filepath.Join(t.TempDir(), "orders.txt")); !errors.Is(err, excelize.ErrWorkbookFileFormat) {
		t.Errorf("expected a wrapped workbook format error, got %v", err)
	}
}
