package models

import "github.com/shopspring/decimal"

// TopCategoryLimit caps the ranked category breakdown in an Insights summary.
const TopCategoryLimit = 5

// CategoryTotal is one entry of the ranked category breakdown.
type CategoryTotal struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// Insights is the derived spending summary computed from a Transaction batch.
// It is ephemeral: recomputed fresh on every request, never cached.
//
// TotalThisMonth keeps its historical name, but the aggregation deliberately
// applies no calendar-month window: it sums the magnitude of every nonzero
// transaction in the supplied batch. Callers wanting a true monthly figure
// pre-filter the batch by date before computing.
type Insights struct {
	TotalThisMonth decimal.Decimal `json:"totalThisMonth"`
	TopCategories  []CategoryTotal `json:"topCategories"`
}
