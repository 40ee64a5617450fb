// internal/engine/money.go
package engine

import (
	"strings"

	"github.com/shopspring/decimal"
)

const currencyMarker = "R$"

// ParseAmount reads a user-typed money value. It accepts a comma or a dot as
// the decimal separator, thousands separators, surrounding spaces and a
// leading "R$". Anything it cannot read is zero.
func ParseAmount(text string) decimal.Decimal {
	s := strings.TrimSpace(text)
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = strings.TrimSpace(s[1:])
	}
	if len(s) >= len(currencyMarker) && strings.EqualFold(s[:len(currencyMarker)], currencyMarker) {
		s = strings.TrimSpace(s[len(currencyMarker):])
	}
	if strings.HasPrefix(s, "-") && !negative {
		negative = true
		s = strings.TrimSpace(s[1:])
	}
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero
	}

	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != ',' {
			return decimal.Zero
		}
	}

	s, ok := normalizeSeparators(s)
	if !ok {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if negative {
		d = d.Neg()
	}
	return d
}

// normalizeSeparators rewrites s so that "." is the only separator left and
// marks the decimal point. When both separators appear the last one wins as
// decimal point; a separator repeated on its own is a thousands separator.
// Thousands groups must have three digits, otherwise ok is false.
func normalizeSeparators(s string) (string, bool) {
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			intPart, ok := ungroup(s[:lastComma], ".")
			return intPart + "." + s[lastComma+1:], ok
		}
		intPart, ok := ungroup(s[:lastDot], ",")
		return intPart + "." + s[lastDot+1:], ok
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			return ungroup(s, ",")
		}
		return strings.Replace(s, ",", ".", 1), true
	case lastDot >= 0:
		if strings.Count(s, ".") > 1 {
			return ungroup(s, ".")
		}
	}
	return s, true
}

// ungroup strips thousands separators from an integer part like "1.234.567".
func ungroup(s, sep string) (string, bool) {
	groups := strings.Split(s, sep)
	for i, g := range groups {
		if strings.ContainsAny(g, ".,") {
			return "", false
		}
		if i == 0 && (len(g) == 0 || len(g) > 3) {
			return "", false
		}
		if i > 0 && len(g) != 3 {
			return "", false
		}
	}
	return strings.Join(groups, ""), true
}

// FormatAmount renders d with two decimals and a dot separator.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatBRL renders d the way it is shown to users, e.g. "R$ 1.234,50".
func FormatBRL(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return sign + currencyMarker + " " + b.String() + "," + frac
}
