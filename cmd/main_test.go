// cmd/main_test.go
package main

import (
	"image/color"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reinhardt-bit/OrderFlow-Pricing/internal"
	"github.com/reinhardt-bit/OrderFlow-Pricing/internal/engine"
)

var testNow = time.Date(2025, 1, 20, 10, 0, 0, 0, time.Local)

func testForm() *orderForm {
	catalog := engine.NewCatalogIndex([]engine.ProductCatalogEntry{
		{ID: 1, Name: "Caixa 7 gavetas", BasePrice: decimal.NewFromInt(760)},
		{ID: 2, Name: "Mesa Simples", BasePrice: decimal.NewFromInt(300)},
		{ID: 3, Name: "Mesa Reforçada", BasePrice: decimal.NewFromInt(420)},
	})
	clients := engine.NewClientIndex([]engine.ClientRecord{
		{ID: 5, Name: "João da Silva", Phone: "(11) 98765-4321"},
	})
	return newOrderForm(catalog, clients, engine.DeadlineCalculator{Now: func() time.Time { return testNow }})
}

func TestOrderFormLinesAndTotals(t *testing.T) {
	form := testForm()

	line := form.addLine(engine.LineInput{Text: "caixa 7 gav", Reinforced: true, Color: engine.ColorPlaceholder})
	assert.Equal(t, "Caixa 7 gavetas", line.Description)
	assert.True(t, line.UnitPrice.Equal(decimal.NewFromInt(775)))
	assert.Equal(t, "", line.Color)

	line = form.addLine(engine.LineInput{Text: "mesa", PriceText: "R$ 250,00"})
	assert.Equal(t, int64(0), line.ProductID)
	assert.True(t, line.UnitPrice.Equal(decimal.NewFromInt(250)))

	form.freightText = "10,50"
	form.discountText = "5"
	assert.True(t, form.totals().GrandTotal.Equal(decimal.RequireFromString("1030.5")))

	form.toggleReinforced(0)
	form.toggleReinforced(0)
	form.toggleReinforced(0)
	assert.True(t, form.totals().ItemsSubtotal.Equal(decimal.NewFromInt(1010)))

	form.removeLine(1)
	form.removeLine(7)
	require.Len(t, form.lines, 1)
	assert.True(t, form.totals().GrandTotal.Equal(decimal.RequireFromString("765.5")))
}

func TestOrderFormProductHint(t *testing.T) {
	form := testForm()

	assert.Equal(t, "Caixa 7 gavetas - R$ 760,00", form.productHint("caixa"))
	assert.Equal(t, "Item avulso: informe o preço", form.productHint("mesa"))
	assert.Equal(t, "", form.productHint("  "))
}

func TestOrderFormDraft(t *testing.T) {
	form := testForm()
	form.clientText = "4321"
	form.dueDateText = "25/01/2025"
	form.leadTimeText = "abc"
	form.comment = "  entregar pela manhã "
	form.addLine(engine.LineInput{Text: "Mesa Simples"})

	d := form.draft()

	require.NotNil(t, d.Client)
	assert.Equal(t, int64(5), d.Client.ID)
	require.NotNil(t, d.DueDate)
	assert.Equal(t, time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC), *d.DueDate)
	assert.Equal(t, 0, d.LeadTimeDays)
	assert.Equal(t, "entregar pela manhã", d.Comment)
	require.Len(t, d.Lines, 1)

	order := internal.NewOrderFromDraft(d, testNow)
	assert.Equal(t, "João da Silva", order.ClientName)
	assert.Equal(t, 300.0, order.TotalPrice)
}

func TestOrderFormEstimate(t *testing.T) {
	form := testForm()
	assert.Equal(t, engine.UrgencyNotInformed, form.estimate(testNow).Urgency)

	form.leadTimeText = "1"
	assert.Equal(t, engine.UrgencyTomorrow, form.estimate(testNow).Urgency)

	form.leadTimeText = "-4"
	assert.Equal(t, engine.UrgencyNotInformed, form.estimate(testNow).Urgency)

	form.dueDateText = "2025-01-20"
	assert.Equal(t, engine.UrgencyToday, form.estimate(testNow).Urgency)
}

func TestSortByUrgency(t *testing.T) {
	calc := engine.DeadlineCalculator{Now: func() time.Time { return testNow }}
	overdue := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	soon := time.Date(2025, 1, 23, 0, 0, 0, 0, time.UTC)
	later := time.Date(2025, 2, 23, 0, 0, 0, 0, time.UTC)

	orders := []internal.Order{
		{ID: 1},
		{ID: 2, DueDate: &later},
		{ID: 3, DueDate: &overdue},
		{ID: 4, DueDate: &soon},
	}
	sortByUrgency(orders, calc)

	var ids []int64
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []int64{3, 4, 2, 1}, ids)
}

func TestOrderRow(t *testing.T) {
	calc := engine.DeadlineCalculator{Now: func() time.Time { return testNow }}
	row := orderRow(internal.Order{
		CreatedAt:  time.Date(2025, 1, 2, 9, 30, 0, 0, time.UTC),
		ClientName: "Cliente",
		TotalPrice: 1234.5,
		Items:      []internal.OrderItem{{Description: "Mesa"}, {Description: "Banco"}},
	}, calc)

	assert.Equal(t, []string{"02/01/2025 09:30", "Cliente", "Mesa, Banco", "R$ 1.234,50", engine.LabelNotInformed}, row.cells)
	assert.Equal(t, engine.ColorNotInformed, row.estimate.Color)
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0xD3, G: 0x2F, B: 0x2F, A: 0x60}, hexColor(engine.ColorOverdue))
	assert.Equal(t, color.Transparent, hexColor("red"))
	assert.Equal(t, color.Transparent, hexColor("#GGGGGG"))
}

func TestDescribeLine(t *testing.T) {
	line := engine.BuildLine(nil, engine.LineInput{Text: "Mesa", PriceText: "100", Color: "Branco", Reinforced: true})
	assert.Equal(t, "Mesa / Branco / reforçado - R$ 115,00", describeLine(line))
}

func TestOrderFormEditStoredOrder(t *testing.T) {
	created := time.Date(2025, 1, 19, 8, 0, 0, 0, time.UTC)
	due := time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC)
	stored := internal.Order{
		ID:         9,
		Reference:  "ref-9",
		CreatedAt:  created,
		DueDate:    &due,
		ClientID:   5,
		ClientName: "João da Silva",
		Contact:    "11 98765-4321",
		Freight:    20,
		Discount:   5,
		TotalPrice: 790,
		Comment:    "porta lateral",
		Items: []internal.OrderItem{
			{ProductID: 1, Description: "Caixa 7 gavetas", Color: "Branco", Reinforced: true, BasePrice: 760, Price: 775},
		},
	}

	form := testForm()
	form.loadOrder(stored)

	assert.Equal(t, "25/01/2025", form.dueDateText)
	assert.Equal(t, "20.00", form.freightText)
	assert.Equal(t, "5.00", form.discountText)
	assert.Equal(t, "", form.leadTimeText)
	require.Len(t, form.lines, 1)
	assert.True(t, form.lines[0].UnitPrice.Equal(decimal.NewFromInt(775)))
	assert.True(t, form.totals().GrandTotal.Equal(decimal.NewFromInt(790)))

	form.toggleReinforced(0)
	form.addLine(engine.LineInput{Text: "Mesa Simples"})
	order := form.order(testNow)

	assert.Equal(t, int64(9), order.ID)
	assert.Equal(t, "ref-9", order.Reference)
	assert.Equal(t, created, order.CreatedAt)
	assert.Equal(t, int64(5), order.ClientID)
	assert.Equal(t, "porta lateral", order.Comment)
	assert.Equal(t, 1075.0, order.TotalPrice)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Branco", order.Items[0].Color)
	assert.False(t, order.Items[0].Reinforced)
	assert.Equal(t, 760.0, order.Items[0].Price)
}

func TestOrderFormEditKeepsCreationDate(t *testing.T) {
	form := testForm()
	form.loadOrder(internal.Order{
		ID:           3,
		CreatedAt:    time.Date(2025, 1, 19, 8, 0, 0, 0, time.UTC),
		LeadTimeDays: 2,
	})

	assert.Equal(t, "2", form.leadTimeText)
	assert.Equal(t, engine.UrgencyTomorrow, form.estimate(testNow).Urgency)
}
