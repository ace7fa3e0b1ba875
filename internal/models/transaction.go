package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction categories form a closed set. Extending it is a data-model
// change, so everything that iterates categories goes through AllCategories.
const (
	CategoryFood          = "Food"
	CategoryRent          = "Rent"
	CategoryEntertainment = "Entertainment"
	CategoryTravel        = "Travel"
	CategoryMiscellaneous = "Miscellaneous"

	PaymentMethodCard = "Card"
	PaymentMethodCash = "Cash"

	TransactionStatusCompleted = "Completed"
	TransactionStatusPending   = "Pending"
)

var (
	ErrInvalidCategory      = errors.New("invalid transaction category")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidStatus        = errors.New("invalid transaction status")
	ErrNegativeAmount       = errors.New("transaction amount must not be negative")
)

// Transaction represents a single spending record owned by one user.
// Any field except ID and OwnerID may change through an explicit update.
type Transaction struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Date          time.Time       `gorm:"not null;index" json:"date"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category      string          `gorm:"type:varchar(20);not null" json:"category"`
	PaymentMethod string          `gorm:"type:varchar(10);not null" json:"payment_method"`
	Description   string          `gorm:"type:text;not null" json:"description"`
	Status        string          `gorm:"type:varchar(10);not null;default:'Completed'" json:"status"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()

	if t.Status == "" {
		t.Status = TransactionStatusCompleted
	}

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}

	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if !IsValidCategory(t.Category) {
		return ErrInvalidCategory
	}

	if !IsValidPaymentMethod(t.PaymentMethod) {
		return ErrInvalidPaymentMethod
	}

	if !IsValidTransactionStatus(t.Status) {
		return ErrInvalidStatus
	}

	if t.Description == "" {
		return errors.New("transaction description is required")
	}

	return nil
}

// IsCompleted returns true if the transaction is completed
func (t *Transaction) IsCompleted() bool {
	return t.Status == TransactionStatusCompleted
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// AllCategories returns the closed category set in its stable enumeration
// order. The order is load-bearing: aggregation tie-breaks resolve to the
// category that appears first here.
func AllCategories() []string {
	return []string{
		CategoryFood,
		CategoryRent,
		CategoryEntertainment,
		CategoryTravel,
		CategoryMiscellaneous,
	}
}

// CategoryRank returns the position of a category in the stable enumeration
// order, or len(AllCategories()) for unknown categories.
func CategoryRank(category string) int {
	for i, c := range AllCategories() {
		if c == category {
			return i
		}
	}
	return len(AllCategories())
}

// IsValidCategory checks if the category is part of the closed set
func IsValidCategory(category string) bool {
	return CategoryRank(category) < len(AllCategories())
}

// IsValidPaymentMethod checks if the payment method is valid
func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCard, PaymentMethodCash:
		return true
	default:
		return false
	}
}

// IsValidTransactionStatus checks if the transaction status is valid
func IsValidTransactionStatus(status string) bool {
	switch status {
	case TransactionStatusCompleted, TransactionStatusPending:
		return true
	default:
		return false
	}
}
