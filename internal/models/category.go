package models

// CategoryOther is the fallback label assigned when a source record carries
// no usable category value.
const CategoryOther = "Other"

// Personal finance category primary labels used by the aggregator source
const (
	CategoryFoodAndDrink       = "FOOD_AND_DRINK"
	CategoryTransportation     = "TRANSPORTATION"
	CategoryTravel             = "TRAVEL"
	CategoryGeneralMerchandise = "GENERAL_MERCHANDISE"
	CategoryEntertainment      = "ENTERTAINMENT"
	CategoryRentAndUtilities   = "RENT_AND_UTILITIES"
	CategoryMedical            = "MEDICAL"
	CategoryPersonalCare       = "PERSONAL_CARE"
	CategoryLoanPayments       = "LOAN_PAYMENTS"
	CategoryIncome             = "INCOME"
)

type categoryKind int

const (
	categoryAbsent categoryKind = iota
	categoryScalar
	categoryOrdered
)

// CategoryValue is the tagged variant for a source category field, which may
// arrive as a single scalar label or as an ordered hierarchy of increasing
// specificity. It is decoded once from the raw value and resolved to the
// canonical scalar at normalization time.
type CategoryValue struct {
	kind    categoryKind
	scalar  string
	ordered []string
}

// CategoryFromRaw decodes an untyped source value into a CategoryValue.
// Unrecognized shapes decode as absent rather than failing.
func CategoryFromRaw(value any) CategoryValue {
	switch v := value.(type) {
	case string:
		return CategoryValue{kind: categoryScalar, scalar: v}
	case []string:
		return CategoryValue{kind: categoryOrdered, ordered: v}
	case []any:
		labels := make([]string, 0, len(v))
		for _, item := range v {
			if label, ok := item.(string); ok {
				labels = append(labels, label)
			}
		}
		return CategoryValue{kind: categoryOrdered, ordered: labels}
	default:
		return CategoryValue{kind: categoryAbsent}
	}
}

// Resolve collapses the variant into the canonical scalar label: a hierarchy
// keeps its most general (first) level, anything empty becomes CategoryOther.
func (cv CategoryValue) Resolve() string {
	switch cv.kind {
	case categoryScalar:
		if cv.scalar != "" {
			return cv.scalar
		}
	case categoryOrdered:
		if len(cv.ordered) > 0 && cv.ordered[0] != "" {
			return cv.ordered[0]
		}
	}
	return CategoryOther
}

// IsAbsent reports whether the source carried no category value at all.
func (cv CategoryValue) IsAbsent() bool {
	return cv.kind == categoryAbsent
}
