package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"spendsight/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInputShape = errors.New("insights input must be a sequence of transactions")
)

// insightsService folds a Transaction batch into the Insights summary.
// Like the normalization stage it is pure: same batch in, same summary out,
// with no state carried between calls.
type insightsService struct {
	normalizer NormalizeServiceInterface
}

// NewInsightsService creates the aggregation stage
func NewInsightsService(normalizer NormalizeServiceInterface) InsightsServiceInterface {
	return &insightsService{
		normalizer: normalizer,
	}
}

// ComputeInsights sums transaction magnitudes and ranks category totals.
//
// The period filter is magnitude > 0 and nothing else: despite the
// TotalThisMonth field name there is deliberately no calendar-month window,
// so demo, historical, and future-dated records all surface. Callers wanting
// real date windowing pre-filter the batch (see FilterMonth) before invoking.
func (s *insightsService) ComputeInsights(batch any) (*models.Insights, error) {
	transactions, err := s.CoerceBatch(batch)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	insertionOrder := make([]string, 0)

	for i := range transactions {
		magnitude := transactions[i].Magnitude()
		if !magnitude.IsPositive() {
			continue
		}

		total = total.Add(magnitude)

		category := transactions[i].Category
		if _, seen := byCategory[category]; !seen {
			insertionOrder = append(insertionOrder, category)
		}
		byCategory[category] = byCategory[category].Add(magnitude)
	}

	ranked := make([]models.CategoryTotal, 0, len(insertionOrder))
	for _, name := range insertionOrder {
		ranked = append(ranked, models.CategoryTotal{Name: name, Total: byCategory[name]})
	}

	// Stable sort over insertion-ordered entries: ties keep first-encountered order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total.GreaterThan(ranked[j].Total)
	})

	if len(ranked) > models.TopCategoryLimit {
		ranked = ranked[:models.TopCategoryLimit]
	}

	return &models.Insights{
		TotalThisMonth: total,
		TopCategories:  ranked,
	}, nil
}

// CoerceBatch resolves the dynamically-typed batch contract: typed
// Transaction slices pass through, raw-record slices and JSON-decoded arrays
// are normalized element by element with the canonical alias table. Anything
// that is not a sequence at all is the one rejected shape.
func (s *insightsService) CoerceBatch(batch any) ([]models.Transaction, error) {
	switch v := batch.(type) {
	case []models.Transaction:
		return v, nil
	case []models.RawRecord:
		return s.normalizer.NormalizeBatch(v, models.AggregatorAliases()), nil
	case []any:
		aliases := models.AggregatorAliases()
		transactions := make([]models.Transaction, 0, len(v))
		for _, element := range v {
			txn, err := s.normalizer.Normalize(element, aliases)
			if err != nil {
				// A non-mapping element degrades to the zero-amount default
				// transaction, which the magnitude filter then excludes.
				txn = models.Transaction{Category: models.CategoryOther}
			}
			transactions = append(transactions, txn)
		}
		return transactions, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidInputShape, batch)
	}
}

// FilterMonth is the explicit, opt-in calendar window the aggregation stage
// itself never applies. Transactions whose dates do not parse are kept, in
// line with the engine's graceful-degradation bias.
func (s *insightsService) FilterMonth(transactions []models.Transaction, year int, month time.Month) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(transactions))
	for i := range transactions {
		date, ok := transactions[i].ParseDate()
		if ok && (date.Year() != year || date.Month() != month) {
			continue
		}
		filtered = append(filtered, transactions[i])
	}
	return filtered
}
