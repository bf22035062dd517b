package models

// KeyAliasTable declares, per logical transaction field, the ordered list of
// source key names that may carry the value. Normalization consults each list
// deterministically and takes the first alias present in the record, which
// keeps the heterogeneous field mapping declarative instead of an ad hoc
// conditional chain per source.
type KeyAliasTable struct {
	Date     []string
	Name     []string
	Amount   []string
	Category []string

	// PrimaryCategoryKey names a structured category object whose "primary"
	// label takes precedence over the legacy scalar/array Category aliases.
	// Empty when the source has no such field.
	PrimaryCategoryKey string

	// DateFallbackOrder lists record keys in source column order. When no
	// Date alias matches (a delimited file with no recognizable header), the
	// value under the first of these keys present in the record is used.
	DateFallbackOrder []string
}

// AggregatorAliases is the canonical alias table for aggregator-sourced
// records and for JSON batches supplied directly by clients.
func AggregatorAliases() KeyAliasTable {
	return KeyAliasTable{
		Date:               []string{"date", "Date", "datetime", "authorized_date"},
		Name:               []string{"description", "Description", "merchant_name", "name", "Merchant"},
		Amount:             []string{"amount", "Amount", "DEBIT", "CREDIT"},
		Category:           []string{"category", "Category"},
		PrimaryCategoryKey: "personal_finance_category",
	}
}

// DelimitedAliases builds the alias table for delimited-file records. The
// column order of the file drives the date fallback probe.
func DelimitedAliases(columns []string) KeyAliasTable {
	table := KeyAliasTable{
		Date:              []string{"date", "Date", "datetime", "authorized_date"},
		Name:              []string{"description", "Description", "merchant_name", "name", "Merchant"},
		Amount:            []string{"amount", "Amount", "DEBIT", "CREDIT"},
		Category:          []string{"category", "Category"},
		DateFallbackOrder: make([]string, len(columns)),
	}
	copy(table.DateFallbackOrder, columns)
	return table
}
