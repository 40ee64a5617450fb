// cmd/orderform.go
package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/reinhardt-bit/OrderFlow-Pricing/internal"
	"github.com/reinhardt-bit/OrderFlow-Pricing/internal/engine"
)

var colorOptions = []string{
	engine.ColorPlaceholder,
	"Branco",
	"Preto",
	"Natural",
	"Mogno",
	"Cinza",
	"Tabaco",
}

// orderForm is the state behind the new-order dialog. Widgets only read and
// write text; every rule lives in the engine.
type orderForm struct {
	catalog *engine.CatalogIndex
	clients *engine.ClientIndex
	calc    engine.DeadlineCalculator

	clientText   string
	contact      string
	lines        []engine.OrderLineItem
	freightText  string
	discountText string
	dueDateText  string
	leadTimeText string
	comment      string

	editing *internal.Order
}

func newOrderForm(catalog *engine.CatalogIndex, clients *engine.ClientIndex, calc engine.DeadlineCalculator) *orderForm {
	return &orderForm{catalog: catalog, clients: clients, calc: calc}
}

func (f *orderForm) client() (*engine.ClientRecord, bool) {
	c, ok := f.clients.Resolve(f.clientText)
	if !ok {
		return nil, false
	}
	return &c, true
}

// productHint describes what the product text currently resolves to.
func (f *orderForm) productHint(text string) string {
	p, ok := f.catalog.Resolve(text)
	if !ok {
		if strings.TrimSpace(text) == "" {
			return ""
		}
		return "Item avulso: informe o preço"
	}
	return p.Name + " - " + engine.FormatBRL(p.BasePrice)
}

// addLine resolves text against the catalog and appends the priced line.
func (f *orderForm) addLine(in engine.LineInput) engine.OrderLineItem {
	var resolved *engine.ProductCatalogEntry
	if p, ok := f.catalog.Resolve(in.Text); ok {
		resolved = &p
	}
	line := engine.BuildLine(resolved, in)
	f.lines = append(f.lines, line)
	return line
}

func (f *orderForm) removeLine(i int) {
	if i < 0 || i >= len(f.lines) {
		return
	}
	f.lines = append(f.lines[:i], f.lines[i+1:]...)
}

func (f *orderForm) toggleReinforced(i int) {
	if i < 0 || i >= len(f.lines) {
		return
	}
	f.lines[i] = f.lines[i].WithReinforced(!f.lines[i].Reinforced)
}

func (f *orderForm) totals() engine.OrderTotals {
	return engine.Recompute(f.lines, f.freightText, f.discountText)
}

func (f *orderForm) leadTimeDays() int {
	days, err := strconv.Atoi(strings.TrimSpace(f.leadTimeText))
	if err != nil || days < 0 {
		return 0
	}
	return days
}

// estimate previews the delivery status. A new order counts as created now.
func (f *orderForm) estimate(now time.Time) engine.DeliveryEstimate {
	createdAt := now
	if f.editing != nil {
		createdAt = f.editing.CreatedAt
	}
	return f.calc.Estimate(f.dueDateText, createdAt, f.leadTimeDays())
}

func (f *orderForm) draft() internal.Draft {
	d := internal.Draft{
		ClientText:   f.clientText,
		Contact:      f.contact,
		Lines:        append([]engine.OrderLineItem(nil), f.lines...),
		Totals:       f.totals(),
		LeadTimeDays: f.leadTimeDays(),
		Comment:      strings.TrimSpace(f.comment),
	}
	if c, ok := f.client(); ok {
		d.Client = c
	}
	if due, ok := engine.ParseDate(f.dueDateText); ok {
		d.DueDate = &due
	}
	return d
}

// loadOrder fills the form from a stored order so it can be edited.
func (f *orderForm) loadOrder(o internal.Order) {
	totals := o.Totals()

	f.editing = &o
	f.clientText = o.ClientName
	f.contact = o.Contact
	f.lines = o.Lines()
	f.freightText = engine.FormatAmount(totals.Freight)
	f.discountText = engine.FormatAmount(totals.Discount)
	f.dueDateText = ""
	if o.DueDate != nil {
		f.dueDateText = o.DueDate.Format("02/01/2006")
	}
	f.leadTimeText = ""
	if o.LeadTimeDays > 0 {
		f.leadTimeText = strconv.Itoa(o.LeadTimeDays)
	}
	f.comment = o.Comment
}

// order builds the order to store. An edited order keeps its id, reference
// and creation time.
func (f *orderForm) order(now time.Time) internal.Order {
	if f.editing == nil {
		return internal.NewOrderFromDraft(f.draft(), now)
	}
	o := internal.NewOrderFromDraft(f.draft(), f.editing.CreatedAt)
	o.ID = f.editing.ID
	o.Reference = f.editing.Reference
	o.Completed = f.editing.Completed
	return o
}
