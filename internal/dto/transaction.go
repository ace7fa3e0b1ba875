package dto

import (
	"finance-tracker/internal/models"
)

// Transaction Request DTOs

// CreateTransactionRequest represents the request payload for recording a transaction
type CreateTransactionRequest struct {
	Date          string `json:"date" validate:"required"`
	Amount        string `json:"amount" validate:"required,tx_amount"`
	Category      string `json:"category" validate:"required,tx_category"`
	PaymentMethod string `json:"payment_method" validate:"required,payment_method"`
	Description   string `json:"description" validate:"required,min=1,max=255"`
	Status        string `json:"status" validate:"omitempty,tx_status"`
}

// UpdateTransactionRequest represents the request payload for updating a
// transaction. Every field is updatable except the transaction identity.
type UpdateTransactionRequest struct {
	Date          string `json:"date" validate:"required"`
	Amount        string `json:"amount" validate:"required,tx_amount"`
	Category      string `json:"category" validate:"required,tx_category"`
	PaymentMethod string `json:"payment_method" validate:"required,payment_method"`
	Description   string `json:"description" validate:"required,min=1,max=255"`
	Status        string `json:"status" validate:"required,tx_status"`
}

// Transaction Response DTOs

// TransactionResponse represents a single transaction in API responses
type TransactionResponse struct {
	*models.Transaction
}

// TransactionListResponse represents a filtered list of transactions,
// newest first
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
