// internal/engine/orderline.go
package engine

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ColorPlaceholder is the colour picker entry meaning "no colour chosen".
const ColorPlaceholder = "Selecione uma cor"

// ReinforcementSurcharge is added once to the unit price of a reinforced line.
var ReinforcementSurcharge = decimal.NewFromInt(15)

// LineInput carries what the order form holds for a line being added.
type LineInput struct {
	Text       string
	PriceText  string
	Color      string
	Reinforced bool
}

// BuildLine prices a line. With a resolved product the catalog name and base
// price are used; otherwise the typed text and price are kept. It never
// fails: an unreadable price is zero.
func BuildLine(resolved *ProductCatalogEntry, in LineInput) OrderLineItem {
	line := OrderLineItem{
		Description: strings.TrimSpace(in.Text),
		BasePrice:   ParseAmount(in.PriceText),
	}
	if resolved != nil {
		line.ProductID = resolved.ID
		line.Description = strings.TrimSpace(resolved.Name)
		line.BasePrice = resolved.BasePrice
	}
	return line.WithColor(in.Color).WithReinforced(in.Reinforced)
}

// WithReinforced returns a copy of l priced with or without the surcharge.
// The price is always derived from BasePrice, so toggling is idempotent.
func (l OrderLineItem) WithReinforced(reinforced bool) OrderLineItem {
	l.Reinforced = reinforced
	l.UnitPrice = l.BasePrice
	if reinforced {
		l.UnitPrice = l.BasePrice.Add(ReinforcementSurcharge)
	}
	return l
}

// WithColor returns a copy of l with a normalized colour.
func (l OrderLineItem) WithColor(color string) OrderLineItem {
	l.Color = NormalizeColor(color)
	return l
}

// NormalizeColor maps blank input and the picker placeholder to "".
func NormalizeColor(color string) string {
	if strings.TrimSpace(color) == "" || strings.EqualFold(strings.TrimSpace(color), ColorPlaceholder) {
		return ""
	}
	return color
}
