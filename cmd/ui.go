// cmd/ui.go
package main

import (
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/reinhardt-bit/OrderFlow-Pricing/internal"
	"github.com/reinhardt-bit/OrderFlow-Pricing/internal/engine"
)

var orderColumns = []string{"Data", "Cliente", "Itens", "Total", "Entrega"}

const statusColumn = 4

type tableRow struct {
	cells    []string
	estimate engine.DeliveryEstimate
}

func orderRow(o internal.Order, calc engine.DeadlineCalculator) tableRow {
	est := o.Estimate(calc)

	items := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, it.Description)
	}

	return tableRow{
		cells: []string{
			o.CreatedAt.Format("02/01/2006 15:04"),
			o.ClientName,
			strings.Join(items, ", "),
			money(o.TotalPrice),
			est.Label,
		},
		estimate: est,
	}
}

// sortByUrgency puts the most urgent orders first, then the earliest due.
// Orders keep their load order otherwise.
func sortByUrgency(orders []internal.Order, calc engine.DeadlineCalculator) {
	estimates := make(map[int64]engine.DeliveryEstimate, len(orders))
	for _, o := range orders {
		estimates[o.ID] = o.Estimate(calc)
	}
	sort.SliceStable(orders, func(i, j int) bool {
		a, b := estimates[orders[i].ID], estimates[orders[j].ID]
		if a.Urgency.Severity() != b.Urgency.Severity() {
			return a.Urgency.Severity() > b.Urgency.Severity()
		}
		if a.Known() && b.Known() {
			return *a.DaysRemaining < *b.DaysRemaining
		}
		return false
	})
}

// hexColor parses "#RRGGBB"; anything else is transparent.
func hexColor(hex string) color.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return color.Transparent
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.Transparent
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0x60}
}
