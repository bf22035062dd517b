package dto

// Assistant Request DTOs

// ChatRequest represents a spending question for the assistant. Transactions
// carries the batch the answer should be grounded on, in any shape the
// insights service can coerce.
type ChatRequest struct {
	Message      string `json:"message" validate:"required,max=2000"`
	Transactions any    `json:"transactions"`
}

// Assistant Response DTOs

// ChatResponse represents the assistant reply together with the insights
// summary it was grounded on
type ChatResponse struct {
	Reply   string `json:"reply"`
	Summary string `json:"summary"`
}
