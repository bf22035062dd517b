package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawRecord is a source-native transaction mapping as produced by a source
// adapter (an aggregator JSON object or a CSV row keyed by header) before
// normalization. Key names and value encodings vary by source.
type RawRecord = map[string]any

// Transaction is the canonical transaction record consumed by aggregation.
//
// Date keeps the raw value found under a date alias: unparseable dates are
// not dropped at normalization time, so downstream consumers that need a
// calendar date must go through ParseDate and tolerate failure.
// Amount keeps the source's sign convention; aggregation uses magnitude only.
type Transaction struct {
	Date     string          `json:"date"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
}

// dateLayouts are tried in order when interpreting a transaction date.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
}

// ParseDate interprets the transaction's date at day resolution.
// Returns false when the value matches none of the accepted layouts.
func (t *Transaction) ParseDate() (time.Time, bool) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, t.Date); err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// Magnitude returns the absolute value of the signed amount.
func (t *Transaction) Magnitude() decimal.Decimal {
	return t.Amount.Abs()
}
