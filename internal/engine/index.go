// internal/engine/index.go
package engine

import (
	"strings"

	"golang.org/x/text/cases"
)

// fold returns the case-insensitive form of s used for every non-exact key.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

type entry[T any] struct {
	folded string
	record T
}

// index holds the lookup structures shared by products and clients.
// It is written only while being built.
type index[T any] struct {
	byKey   map[string]T
	byName  map[string]T
	entries []entry[T]
}

func newIndex[T any](capacity int) index[T] {
	return index[T]{
		byKey:   make(map[string]T, capacity),
		byName:  make(map[string]T, capacity),
		entries: make([]entry[T], 0, capacity),
	}
}

func (ix *index[T]) add(name string, keys []string, record T) {
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, taken := ix.byKey[k]; !taken {
			ix.byKey[k] = record
		}
	}
	folded := fold(name)
	if _, taken := ix.byName[folded]; !taken {
		ix.byName[folded] = record
	}
	ix.entries = append(ix.entries, entry[T]{folded: folded, record: record})
}

// CatalogIndex is an immutable lookup over a product snapshot.
type CatalogIndex struct {
	index[ProductCatalogEntry]
	byCode map[string]ProductCatalogEntry
}

// NewCatalogIndex indexes rows by display key, folded name and code.
// Rows without a name are skipped; on duplicate keys the first row wins.
func NewCatalogIndex(rows []ProductCatalogEntry) *CatalogIndex {
	ci := &CatalogIndex{
		index:  newIndex[ProductCatalogEntry](len(rows)),
		byCode: make(map[string]ProductCatalogEntry),
	}
	for _, p := range rows {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		ci.add(name, []string{p.DisplayKey(), name}, p)
		if code := fold(p.Code); code != "" {
			if _, taken := ci.byCode[code]; !taken {
				ci.byCode[code] = p
			}
		}
	}
	return ci
}

// Len returns the number of indexed products.
func (ci *CatalogIndex) Len() int {
	return len(ci.entries)
}

// Names lists canonical product names in snapshot order, for completion lists.
func (ci *CatalogIndex) Names() []string {
	names := make([]string, len(ci.entries))
	for i, e := range ci.entries {
		names[i] = strings.TrimSpace(e.record.Name)
	}
	return names
}

// ByCode looks a product up by its code, ignoring case.
func (ci *CatalogIndex) ByCode(code string) (ProductCatalogEntry, bool) {
	p, ok := ci.byCode[fold(code)]
	return p, ok
}

// phoneKeyLen is the number of trailing digits used as the phone map key.
const phoneKeyLen = 8

type phoneEntry struct {
	digits string
	client ClientRecord
}

// ClientIndex is an immutable lookup over a client snapshot.
type ClientIndex struct {
	index[ClientRecord]
	byPhone map[string][]phoneEntry
	phones  []phoneEntry
}

// NewClientIndex indexes rows by display key, folded name and phone digits.
// Rows without a name are skipped; on duplicate keys the first row wins.
func NewClientIndex(rows []ClientRecord) *ClientIndex {
	ci := &ClientIndex{
		index:   newIndex[ClientRecord](len(rows)),
		byPhone: make(map[string][]phoneEntry),
	}
	for _, c := range rows {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		ci.add(name, []string{c.DisplayKey(), name}, c)

		digits := NormalizePhone(c.Phone)
		if digits == "" {
			continue
		}
		pe := phoneEntry{digits: digits, client: c}
		ci.phones = append(ci.phones, pe)
		key := trailing(digits, phoneKeyLen)
		ci.byPhone[key] = append(ci.byPhone[key], pe)
	}
	return ci
}

// Len returns the number of indexed clients.
func (ci *ClientIndex) Len() int {
	return len(ci.entries)
}

// DisplayKeys lists client display keys in snapshot order.
func (ci *ClientIndex) DisplayKeys() []string {
	keys := make([]string, len(ci.entries))
	for i, e := range ci.entries {
		keys[i] = e.record.DisplayKey()
	}
	return keys
}

// NormalizePhone keeps only the digits of a phone number.
func NormalizePhone(phone string) string {
	return digitsOnly(phone)
}

func trailing(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
