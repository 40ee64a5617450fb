// internal/engine/resolver.go
package engine

import "strings"

// minPhoneDigits is the shortest digit run accepted for phone-suffix matching.
const minPhoneDigits = 4

// Resolve maps free text typed by a user to at most one product. Tiers are
// tried in order and a tier only answers when it yields exactly one record:
// exact display key, folded name or code, unique prefix, unique substring.
// ok is false when the text should be kept as a free-form description.
func (ci *CatalogIndex) Resolve(query string) (ProductCatalogEntry, bool) {
	q := strings.TrimSpace(query)
	if q == "" || ci == nil {
		return ProductCatalogEntry{}, false
	}
	if p, ok := ci.lookupExact(q); ok {
		return p, true
	}
	if p, ok := ci.ByCode(q); ok {
		return p, true
	}
	return ci.lookupPartial(q)
}

// Resolve maps free text typed by a user to at most one client. After the
// name tiers it tries a unique trailing-digits match on the phone number.
func (ci *ClientIndex) Resolve(query string) (ClientRecord, bool) {
	q := strings.TrimSpace(query)
	if q == "" || ci == nil {
		return ClientRecord{}, false
	}
	if c, ok := ci.lookupExact(q); ok {
		return c, true
	}
	if c, ok := ci.lookupPartial(q); ok {
		return c, true
	}
	return ci.lookupPhone(q)
}

func (ix *index[T]) lookupExact(q string) (T, bool) {
	if r, ok := ix.byKey[q]; ok {
		return r, true
	}
	r, ok := ix.byName[fold(q)]
	return r, ok
}

func (ix *index[T]) lookupPartial(q string) (T, bool) {
	folded := fold(q)
	if r, ok := ix.unique(func(name string) bool { return strings.HasPrefix(name, folded) }); ok {
		return r, true
	}
	return ix.unique(func(name string) bool { return strings.Contains(name, folded) })
}

// unique returns the only entry accepted by match, if there is exactly one.
func (ix *index[T]) unique(match func(folded string) bool) (T, bool) {
	var (
		found T
		hits  int
	)
	for _, e := range ix.entries {
		if !match(e.folded) {
			continue
		}
		hits++
		if hits > 1 {
			var zero T
			return zero, false
		}
		found = e.record
	}
	return found, hits == 1
}

func (ci *ClientIndex) lookupPhone(q string) (ClientRecord, bool) {
	digits := NormalizePhone(q)
	if len(digits) < minPhoneDigits {
		return ClientRecord{}, false
	}

	candidates := ci.phones
	if len(digits) >= phoneKeyLen {
		candidates = ci.byPhone[trailing(digits, phoneKeyLen)]
	}

	var (
		found ClientRecord
		hits  int
	)
	for _, pe := range candidates {
		if !phoneMatches(pe.digits, digits) {
			continue
		}
		hits++
		if hits > 1 {
			return ClientRecord{}, false
		}
		found = pe.client
	}
	return found, hits == 1
}

// phoneMatches accepts a typed suffix of the stored number, or a typed number
// that carries extra leading digits such as a country code.
func phoneMatches(stored, typed string) bool {
	if strings.HasSuffix(stored, typed) {
		return true
	}
	return len(stored) >= phoneKeyLen && strings.HasSuffix(typed, stored)
}
