package dto

import "spendsight/internal/models"

// Transaction Request DTOs

// FetchTransactionsRequest represents the request payload for pulling
// transactions from a linked item
type FetchTransactionsRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
	StartDate   string `json:"start_date" validate:"omitempty,iso_date"`
	EndDate     string `json:"end_date" validate:"omitempty,iso_date"`
	Count       int    `json:"count" validate:"omitempty,min=1,max=500"`
}

// Transaction Response DTOs

// TransactionResponse represents a single normalized transaction
type TransactionResponse struct {
	Date     string `json:"date"`
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
}

// TransactionListResponse represents a batch of normalized transactions
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ImportResponse represents the outcome of a delimited file import
type ImportResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
	Columns      []string              `json:"columns"`
}

// NewTransactionResponse maps a canonical transaction onto the wire shape.
// Amounts render as strings so clients never lose precision to float decoding.
func NewTransactionResponse(txn models.Transaction) TransactionResponse {
	return TransactionResponse{
		Date:     txn.Date,
		Name:     txn.Name,
		Amount:   txn.Amount.String(),
		Category: txn.Category,
	}
}

// NewTransactionListResponse maps a canonical batch onto the wire shape
func NewTransactionListResponse(txns []models.Transaction) TransactionListResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		out = append(out, NewTransactionResponse(txn))
	}
	return TransactionListResponse{Transactions: out, Total: len(out)}
}
