// internal/export/excel.go
package export

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/reinhardt-bit/OrderFlow-Pricing/internal"
	"github.com/reinhardt-bit/OrderFlow-Pricing/internal/engine"
)

const SheetName = "Orders"

var Headers = []string{
	"Order ID",
	"Reference",
	"Date",
	"Client Name",
	"Contact",
	"Due Date",
	"Delivery Status",
	"Item",
	"Color",
	"Reinforced",
	"Item Price",
	"Freight",
	"Discount",
	"Total Order Price",
	"Comment",
	"Status",
}

// OrdersToExcel writes one row per order item, repeating the order columns,
// and saves the workbook at filePath. Orders without items get a single row.
func OrdersToExcel(orders []internal.Order, calc engine.DeadlineCalculator, filePath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("error naming sheet: %w", err)
	}

	for i, header := range Headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("error naming column %d: %w", i+1, err)
		}
		if err := f.SetCellValue(SheetName, col+"1", header); err != nil {
			return fmt.Errorf("error writing header %q: %w", header, err)
		}
		if err := f.SetColWidth(SheetName, col, col, 15); err != nil {
			return fmt.Errorf("error sizing column %s: %w", col, err)
		}
	}

	rowIndex := 2
	for _, o := range orders {
		est := o.Estimate(calc)
		dueDate := ""
		if est.Known() {
			dueDate = est.DueDate.Format("02/01/2006")
		}
		status := "Pending"
		if o.Completed {
			status = "Completed"
		}

		items := o.Items
		if len(items) == 0 {
			items = []internal.OrderItem{{}}
		}
		for _, item := range items {
			reinforced := ""
			if item.Reinforced {
				reinforced = "Sim"
			}
			rowData := []interface{}{
				o.ID,
				o.Reference,
				o.CreatedAt.Format("02/01/2006 15:04"),
				o.ClientName,
				o.Contact,
				dueDate,
				est.Label,
				item.Description,
				item.Color,
				reinforced,
				money(item.Price),
				money(o.Freight),
				money(o.Discount),
				money(o.TotalPrice),
				o.Comment,
				status,
			}
			for i, value := range rowData {
				cell, err := excelize.CoordinatesToCellName(i+1, rowIndex)
				if err != nil {
					return fmt.Errorf("error addressing cell: %w", err)
				}
				if err := f.SetCellValue(SheetName, cell, value); err != nil {
					return fmt.Errorf("error writing cell %s: %w", cell, err)
				}
			}
			rowIndex++
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E0E0E0"},
			Pattern: 1,
		},
	})
	if err != nil {
		return fmt.Errorf("error creating header style: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, style); err != nil {
		return fmt.Errorf("error styling header: %w", err)
	}

	lastCell, err := excelize.CoordinatesToCellName(len(Headers), max(rowIndex-1, 1))
	if err != nil {
		return fmt.Errorf("error addressing filter range: %w", err)
	}
	if err := f.AutoFilter(SheetName, "A1:"+lastCell, []excelize.AutoFilterOptions{}); err != nil {
		return fmt.Errorf("error adding filter: %w", err)
	}

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("error saving Excel file: %w", err)
	}

	return nil
}

func money(v float64) string {
	return engine.FormatBRL(decimal.NewFromFloat(v))
}
