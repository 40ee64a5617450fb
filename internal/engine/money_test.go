package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	cases := map[string]string{
		"100":          "100",
		"10,50":        "10.5",
		"R$ 5.00":      "5",
		"r$5,5":        "5.5",
		"  42.10 ":     "42.1",
		"1.234,56":     "1234.56",
		"1,234.56":     "1234.56",
		"1.234.567":    "1234567",
		"-3,25":        "-3.25",
		"R$ -3,25":     "-3.25",
		"R$ 1.234,50":  "1234.5",
		"":             "0",
		"   ":          "0",
		"abc":          "0",
		"12abc":        "0",
		"R$":           "0",
		",":            "0",
		"1e3":          "0",
		"1,234,567":    "1234567",
		"1,234,56":     "0",
		"12.34.567":    "0",
		"1234.567,89":  "0",
		"1.23,45":      "0",
		"1,2.5":        "0",
	}
	for in, want := range cases {
		got := ParseAmount(in)
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "ParseAmount(%q) = %s, want %s", in, got, want)
	}
}

func TestFormatAmountRoundTrip(t *testing.T) {
	for _, v := range []string{"0", "775", "10.5", "0.01", "1234.56", "99999.99"} {
		d := decimal.RequireFromString(v)

		assert.True(t, ParseAmount(FormatAmount(d)).Equal(d), "FormatAmount round trip for %s", v)
		assert.True(t, ParseAmount(FormatBRL(d)).Equal(d), "FormatBRL round trip for %s", v)
	}
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatBRL(decimal.Zero))
	assert.Equal(t, "R$ 775,00", FormatBRL(decimal.NewFromInt(775)))
	assert.Equal(t, "R$ 1.234,50", FormatBRL(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "R$ 1.000.000,00", FormatBRL(decimal.NewFromInt(1000000)))
	assert.Equal(t, "-R$ 5,25", FormatBRL(decimal.RequireFromString("-5.25")))
}
