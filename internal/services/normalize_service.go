package services

import (
	"errors"
	"fmt"
	"strings"

	"spendsight/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRecordShape = errors.New("record must be a mapping")
)

// normalizeService maps source-native records into the canonical Transaction
// shape. It is a pure function over its input: no I/O, no state, and no
// failure for any mapping input, however malformed its fields are.
type normalizeService struct{}

// NewNormalizeService creates the normalization stage
func NewNormalizeService() NormalizeServiceInterface {
	return &normalizeService{}
}

func (s *normalizeService) Normalize(raw any, aliases models.KeyAliasTable) (models.Transaction, error) {
	record, ok := raw.(map[string]any)
	if !ok {
		return models.Transaction{}, fmt.Errorf("%w: got %T", ErrInvalidRecordShape, raw)
	}

	return models.Transaction{
		Date:     s.resolveDate(record, aliases),
		Name:     s.resolveName(record, aliases),
		Amount:   s.resolveAmount(record, aliases),
		Category: s.resolveCategory(record, aliases),
	}, nil
}

func (s *normalizeService) NormalizeBatch(records []models.RawRecord, aliases models.KeyAliasTable) []models.Transaction {
	transactions := make([]models.Transaction, 0, len(records))
	for _, record := range records {
		txn, err := s.Normalize(record, aliases)
		if err != nil {
			// Unreachable for a RawRecord slice; degrade to the all-defaults
			// transaction rather than dropping the row.
			txn = models.Transaction{Category: models.CategoryOther}
		}
		transactions = append(transactions, txn)
	}
	return transactions
}

func (s *normalizeService) resolveDate(record map[string]any, aliases models.KeyAliasTable) string {
	if value, ok := firstPresent(record, aliases.Date); ok {
		return stringify(value)
	}

	// Delimited files with no recognizable date header: the first column
	// present in the record carries the date.
	for _, key := range aliases.DateFallbackOrder {
		if value, ok := record[key]; ok {
			return stringify(value)
		}
	}

	return ""
}

func (s *normalizeService) resolveName(record map[string]any, aliases models.KeyAliasTable) string {
	if value, ok := firstPresent(record, aliases.Name); ok {
		return stringify(value)
	}
	return ""
}

func (s *normalizeService) resolveAmount(record map[string]any, aliases models.KeyAliasTable) decimal.Decimal {
	// Bank exports with split DEBIT/CREDIT columns leave one side blank on
	// every row; a blank cell falls through to the next alias.
	var value any
	found := false
	for _, key := range aliases.Amount {
		candidate, ok := record[key]
		if !ok {
			continue
		}
		if text, isString := candidate.(string); isString && strings.TrimSpace(text) == "" {
			continue
		}
		value = candidate
		found = true
		break
	}
	if !found {
		return decimal.Zero
	}

	switch v := value.(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	case string:
		return parseAmountString(v)
	default:
		return decimal.Zero
	}
}

func (s *normalizeService) resolveCategory(record map[string]any, aliases models.KeyAliasTable) string {
	// The aggregator's structured personal-finance-category primary label
	// wins over the legacy scalar/array field when both are present.
	if aliases.PrimaryCategoryKey != "" {
		if structured, ok := record[aliases.PrimaryCategoryKey].(map[string]any); ok {
			if primary, ok := structured["primary"].(string); ok && primary != "" {
				return primary
			}
		}
	}

	value, ok := firstPresent(record, aliases.Category)
	if !ok {
		return models.CategoryOther
	}
	return models.CategoryFromRaw(value).Resolve()
}

// firstPresent probes the ordered alias list and returns the value under the
// first key present in the record.
func firstPresent(record map[string]any, aliases []string) (any, bool) {
	for _, key := range aliases {
		if value, ok := record[key]; ok {
			return value, true
		}
	}
	return nil, false
}

// parseAmountString strips every character that is not a digit, a decimal
// point, or a leading minus sign, then parses the remainder as a decimal.
// Currency symbols, thousands separators, and surrounding noise all fall
// away; anything unparseable after stripping yields zero.
func parseAmountString(raw string) decimal.Decimal {
	var cleaned strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == '.':
			cleaned.WriteRune(r)
		case r == '-' && cleaned.Len() == 0:
			cleaned.WriteRune(r)
		}
	}

	amount, err := decimal.NewFromString(cleaned.String())
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// stringify renders a raw field value as its canonical string form.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
