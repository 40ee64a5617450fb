// internal/engine/records.go
package engine

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type DocumentKind string

const (
	DocumentNone DocumentKind = ""
	DocumentCPF  DocumentKind = "CPF"
	DocumentCNPJ DocumentKind = "CNPJ"
)

type Address struct {
	Street   string
	Number   string
	District string
	City     string
	State    string
	ZIP      string
}

// ClientRecord is a read-only snapshot of a client row.
type ClientRecord struct {
	ID       int64
	Name     string
	Document string // CPF or CNPJ, never both
	Phone    string
	Address  Address
}

// DocumentKind infers CPF or CNPJ from the number of digits in Document.
func (c ClientRecord) DocumentKind() DocumentKind {
	switch len(digitsOnly(c.Document)) {
	case 11:
		return DocumentCPF
	case 14:
		return DocumentCNPJ
	}
	return DocumentNone
}

// DisplayKey is the string shown in client pickers.
func (c ClientRecord) DisplayKey() string {
	name := strings.TrimSpace(c.Name)
	if phone := strings.TrimSpace(c.Phone); phone != "" {
		return name + " - " + phone
	}
	return name
}

// ProductCatalogEntry is a read-only snapshot of a product row.
type ProductCatalogEntry struct {
	ID        int64
	Name      string
	Code      string
	BasePrice decimal.Decimal
	Category  string
}

// DisplayKey is the string shown in product pickers.
func (p ProductCatalogEntry) DisplayKey() string {
	name := strings.TrimSpace(p.Name)
	if code := strings.TrimSpace(p.Code); code != "" {
		return code + " - " + name
	}
	return name
}

// OrderLineItem is one priced line of an order being edited.
// BasePrice never includes the reinforcement surcharge.
type OrderLineItem struct {
	ProductID   int64
	Description string
	BasePrice   decimal.Decimal
	UnitPrice   decimal.Decimal
	Color       string
	Reinforced  bool
}

type OrderTotals struct {
	ItemsSubtotal decimal.Decimal
	Freight       decimal.Decimal
	Discount      decimal.Decimal
	GrandTotal    decimal.Decimal
}

type DeliveryEstimate struct {
	DueDate       *time.Time
	DaysRemaining *int
	Urgency       Urgency
	Label         string
	Color         string
}

// Known reports whether a due date could be derived.
func (e DeliveryEstimate) Known() bool {
	return e.DueDate != nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
