// internal/engine/totals.go
package engine

import "github.com/shopspring/decimal"

// Recompute derives order totals from the lines and the typed freight and
// discount. Negative freight or discount is taken as typed; only the grand
// total is floored at zero.
func Recompute(lines []OrderLineItem, freightText, discountText string) OrderTotals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice)
	}
	return Totals(subtotal, ParseAmount(freightText), ParseAmount(discountText))
}

// Totals is Recompute for values that are already numbers, such as a stored order.
func Totals(subtotal, freight, discount decimal.Decimal) OrderTotals {
	grand := subtotal.Add(freight).Sub(discount)
	if grand.IsNegative() {
		grand = decimal.Zero
	}
	return OrderTotals{
		ItemsSubtotal: subtotal,
		Freight:       freight,
		Discount:      discount,
		GrandTotal:    grand,
	}
}
