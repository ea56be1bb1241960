// Package core holds the domain types shared by every stage of the
// query pipeline: transactions, customers, categories and date ranges.
//
// This file covers amount parsing and display formatting. Amounts are
// decimals end to end; an amount that cannot be parsed is carried as
// an invalid NullDecimal and stays out of every sum.
package core

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// ParseAmount converts a raw amount column value to a decimal.
// Parsing is best-effort: thousands separators and surrounding
// whitespace are tolerated, anything else yields an invalid value
// rather than an error.
//
// Examples:
//
//	ParseAmount("1200.50") -> 1200.50, valid
//	ParseAmount("1,200")   -> 1200, valid
//	ParseAmount("n/a")     -> invalid
func ParseAmount(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	// Grouped input like "1,200.50" is common in exported statements.
	if strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		s = strings.ReplaceAll(s, ",", "")
		d, err = decimal.NewFromString(s)
		if err != nil {
			return decimal.NullDecimal{}
		}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// FormatAmount renders a sum for answer text: zero decimal places,
// grouped thousands (1234567.8 -> "1,234,568").
func FormatAmount(d decimal.Decimal) string {
	return humanize.Comma(d.Round(0).IntPart())
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	time.RFC3339,
}

// ParseDate converts a raw date column value to a calendar Date.
// Returns the zero Date when no known layout matches.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t)
		}
	}
	return Date{}
}
