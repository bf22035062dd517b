package dto

// Wire DTOs for the remote aggregator API. The sandbox client never touches
// these; only the live HTTP client marshals them.

type AggregatorLinkTokenRequest struct {
	ClientID   string   `json:"client_id"`
	Secret     string   `json:"secret"`
	ClientName string   `json:"client_name"`
	Products   []string `json:"products"`
	Language   string   `json:"language"`
}

type AggregatorLinkTokenResponse struct {
	LinkToken  string `json:"link_token"`
	Expiration string `json:"expiration"`
	RequestID  string `json:"request_id"`
}

type AggregatorSandboxPublicTokenRequest struct {
	ClientID        string   `json:"client_id"`
	Secret          string   `json:"secret"`
	InstitutionID   string   `json:"institution_id"`
	InitialProducts []string `json:"initial_products"`
}

type AggregatorSandboxPublicTokenResponse struct {
	PublicToken string `json:"public_token"`
	RequestID   string `json:"request_id"`
}

type AggregatorExchangeRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	PublicToken string `json:"public_token"`
}

type AggregatorExchangeResponse struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
	RequestID   string `json:"request_id"`
}

type AggregatorTransactionsRequest struct {
	ClientID    string                       `json:"client_id"`
	Secret      string                       `json:"secret"`
	AccessToken string                       `json:"access_token"`
	StartDate   string                       `json:"start_date"`
	EndDate     string                       `json:"end_date"`
	Options     AggregatorTransactionOptions `json:"options"`
}

type AggregatorTransactionOptions struct {
	Count  int `json:"count"`
	Offset int `json:"offset"`
}

// AggregatorTransactionsResponse carries transactions as untyped mappings:
// the key set varies by institution and the normalizer resolves them
// downstream, so decoding into a fixed struct here would discard fields.
type AggregatorTransactionsResponse struct {
	Transactions      []map[string]any `json:"transactions"`
	TotalTransactions int              `json:"total_transactions"`
	RequestID         string           `json:"request_id"`
}

type AggregatorErrorResponse struct {
	ErrorType    string `json:"error_type"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
	RequestID    string `json:"request_id"`
}
