// internal/loadOrders.go
package internal

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/reinhardt-bit/OrderFlow-Pricing/internal/engine"
)

type OrderItem struct {
	ID          int64
	ProductID   int64 // 0 for a free-form line
	Description string
	Color       string
	Reinforced  bool
	BasePrice   float64
	Price       float64
}

type Order struct {
	ID           int64
	Reference    string
	CreatedAt    time.Time
	DueDate      *time.Time
	LeadTimeDays int
	ClientID     int64 // 0 when the client was typed, not picked
	ClientName   string
	Contact      string
	Freight      float64
	Discount     float64
	TotalPrice   float64
	Comment      string
	Completed    bool
	Items        []OrderItem
}

// Draft is what the order form holds when the user saves.
type Draft struct {
	Client       *engine.ClientRecord
	ClientText   string
	Contact      string
	Lines        []engine.OrderLineItem
	Totals       engine.OrderTotals
	DueDate      *time.Time
	LeadTimeDays int
	Comment      string
}

// NewOrderFromDraft turns engine lines and totals into a storable order.
func NewOrderFromDraft(d Draft, createdAt time.Time) Order {
	o := Order{
		CreatedAt:    createdAt,
		DueDate:      d.DueDate,
		LeadTimeDays: d.LeadTimeDays,
		ClientName:   strings.TrimSpace(d.ClientText),
		Contact:      strings.TrimSpace(d.Contact),
		Freight:      d.Totals.Freight.InexactFloat64(),
		Discount:     d.Totals.Discount.InexactFloat64(),
		TotalPrice:   d.Totals.GrandTotal.InexactFloat64(),
		Comment:      d.Comment,
	}
	if d.Client != nil {
		o.ClientID = d.Client.ID
		o.ClientName = d.Client.Name
		if o.Contact == "" {
			o.Contact = d.Client.Phone
		}
	}
	for _, l := range d.Lines {
		o.Items = append(o.Items, OrderItem{
			ProductID:   l.ProductID,
			Description: l.Description,
			Color:       l.Color,
			Reinforced:  l.Reinforced,
			BasePrice:   l.BasePrice.InexactFloat64(),
			Price:       l.UnitPrice.InexactFloat64(),
		})
	}
	return o
}

// Lines rebuilds engine lines from stored items so an order can be edited.
func (o Order) Lines() []engine.OrderLineItem {
	lines := make([]engine.OrderLineItem, 0, len(o.Items))
	for _, it := range o.Items {
		line := engine.OrderLineItem{
			ProductID:   it.ProductID,
			Description: it.Description,
			BasePrice:   decimal.NewFromFloat(it.BasePrice),
		}
		lines = append(lines, line.WithColor(it.Color).WithReinforced(it.Reinforced))
	}
	return lines
}

// Totals recomputes the order totals from its items.
func (o Order) Totals() engine.OrderTotals {
	subtotal := decimal.Zero
	for _, l := range o.Lines() {
		subtotal = subtotal.Add(l.UnitPrice)
	}
	return engine.Totals(subtotal, decimal.NewFromFloat(o.Freight), decimal.NewFromFloat(o.Discount))
}

// Estimate reports the delivery status of the order.
func (o Order) Estimate(calc engine.DeadlineCalculator) engine.DeliveryEstimate {
	return calc.Estimate(o.DueDate, o.CreatedAt, o.LeadTimeDays)
}

const selectOpenOrders = `
        SELECT o.id, o.reference, o.created_at, o.due_date, o.lead_time_days,
               o.client_id, o.client_name, o.contact, o.freight, o.discount,
               o.total_price, o.comment, o.completed
        FROM orders o
        WHERE o.completed = false
        ORDER BY o.created_at DESC
    `

const selectOrderItems = `
        SELECT oi.id, oi.product_id, oi.description, oi.color, oi.reinforced,
               oi.base_price, oi.price
        FROM order_items oi
        WHERE oi.order_id = ?
        ORDER BY oi.id
    `

// LoadOrders returns open orders, newest first, with their items.
func LoadOrders(db *sql.DB) ([]Order, error) {
	rows, err := db.Query(selectOpenOrders)
	if err != nil {
		return nil, err
	}

	var orders []Order
	for rows.Next() {
		var (
			o         Order
			reference sql.NullString
			dueDate   sql.NullTime
			clientID  sql.NullInt64
			contact   sql.NullString
			comment   sql.NullString
		)
		err := rows.Scan(
			&o.ID, &reference, &o.CreatedAt, &dueDate, &o.LeadTimeDays,
			&clientID, &o.ClientName, &contact, &o.Freight, &o.Discount,
			&o.TotalPrice, &comment, &o.Completed,
		)
		if err != nil {
			rows.Close()
			return nil, err
		}
		o.Reference = reference.String
		if dueDate.Valid {
			due := dueDate.Time
			o.DueDate = &due
		}
		o.ClientID = clientID.Int64
		o.Contact = contact.String
		o.Comment = comment.String
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range orders {
		items, err := loadOrderItems(db, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func loadOrderItems(db *sql.DB, orderID int64) ([]OrderItem, error) {
	rows, err := db.Query(selectOrderItems, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var (
			it        OrderItem
			productID sql.NullInt64
			color     sql.NullString
		)
		if err := rows.Scan(&it.ID, &productID, &it.Description, &color, &it.Reinforced, &it.BasePrice, &it.Price); err != nil {
			return nil, err
		}
		it.ProductID = productID.Int64
		it.Color = color.String
		items = append(items, it)
	}
	return items, rows.Err()
}

// SaveOrder inserts a new order and its items in one transaction and
// returns the new order id. A public reference is assigned when missing.
func SaveOrder(db *sql.DB, order Order) (int64, error) {
	if order.Reference == "" {
		order.Reference = uuid.NewString()
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}

	res, err := tx.Exec(`
        INSERT INTO orders (
            reference, created_at, due_date, lead_time_days, client_id,
            client_name, contact, freight, discount, total_price,
            comment, completed
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.Reference, order.CreatedAt, nullTime(order.DueDate), order.LeadTimeDays,
		nullID(order.ClientID), order.ClientName, order.Contact, order.Freight,
		order.Discount, order.TotalPrice, order.Comment, false,
	)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := insertItems(tx, id, order.Items); err != nil {
		tx.Rollback()
		return 0, err
	}

	return id, tx.Commit()
}

// EditOrder rewrites an order and replaces all of its items.
func EditOrder(db *sql.DB, order Order) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
        UPDATE orders SET due_date = ?, lead_time_days = ?, client_id = ?,
            client_name = ?, contact = ?, freight = ?, discount = ?,
            total_price = ?, comment = ?
        WHERE id = ?`,
		nullTime(order.DueDate), order.LeadTimeDays, nullID(order.ClientID),
		order.ClientName, order.Contact, order.Freight, order.Discount,
		order.TotalPrice, order.Comment, order.ID,
	)
	if err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.Exec("DELETE FROM order_items WHERE order_id = ?", order.ID); err != nil {
		tx.Rollback()
		return err
	}

	if err := insertItems(tx, order.ID, order.Items); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// CompleteOrder marks an order as delivered.
func CompleteOrder(db *sql.DB, id int64) error {
	_, err := db.Exec("UPDATE orders SET completed = true WHERE id = ?", id)
	return err
}

func insertItems(tx *sql.Tx, orderID int64, items []OrderItem) error {
	for _, it := range items {
		_, err := tx.Exec(`
            INSERT INTO order_items (
                order_id, product_id, description, color, reinforced, base_price, price
            ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			orderID, nullID(it.ProductID), it.Description, it.Color,
			it.Reinforced, it.BasePrice, it.Price,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func nullID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
