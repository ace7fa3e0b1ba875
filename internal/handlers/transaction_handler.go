package handlers

import (
	"fmt"
	"net/http"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// ListTransactions retrieves the caller's transaction history, newest first
// @Summary List transactions
// @Description Retrieve the caller's transactions with optional filtering
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param category query string false "Filter by category" Enums(Food, Rent, Entertainment, Travel, Miscellaneous)
// @Param payment_method query string false "Filter by payment method" Enums(Card, Cash)
// @Param status query string false "Filter by status" Enums(Completed, Pending)
// @Param search query string false "Case-insensitive description search"
// @Param start_date query string false "Filter by start date (YYYY-MM-DD)"
// @Param end_date query string false "Filter by end date (YYYY-MM-DD)"
// @Success 200 {object} dto.TransactionListResponse "Transaction list"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transactions, err := h.transactionService.ListTransactions(userID, filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
	})
}

// GetTransaction retrieves a single transaction by ID
// @Summary Get transaction
// @Description Retrieve a single transaction owned by the caller
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionResponse "Transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	transaction, err := h.transactionService.GetTransaction(userID, transactionID)
	if err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionResponse{Transaction: transaction})
}

// CreateTransaction records a new transaction for the caller
// @Summary Create transaction
// @Description Record a new spending transaction
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse "Created transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction, err := transactionFromRequest(userID, req.Date, req.Amount, req.Category, req.PaymentMethod, req.Description, req.Status)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	created, err := h.transactionService.CreateTransaction(transaction)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.TransactionResponse{Transaction: created})
}

// UpdateTransaction replaces the mutable fields of an existing transaction
// @Summary Update transaction
// @Description Update an existing transaction owned by the caller
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateTransactionRequest true "Updated transaction details"
// @Success 200 {object} dto.TransactionResponse "Updated transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction, err := transactionFromRequest(userID, req.Date, req.Amount, req.Category, req.PaymentMethod, req.Description, req.Status)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	transaction.ID = transactionID

	updated, err := h.transactionService.UpdateTransaction(transaction)
	if err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionResponse{Transaction: updated})
}

// DeleteTransaction removes a transaction owned by the caller
// @Summary Delete transaction
// @Description Delete a transaction owned by the caller
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Deletion confirmation"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	if err := h.transactionService.DeleteTransaction(userID, transactionID); err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted successfully"})
}

// transactionFromRequest builds a model from validated request fields.
// Validation guarantees the enums and amount parse; only the date can
// still fail here.
func transactionFromRequest(ownerID uuid.UUID, date, amount, category, paymentMethod, description, status string) (*models.Transaction, error) {
	parsedDate, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("date must be formatted as YYYY-MM-DD")
	}

	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, err
	}

	if status == "" {
		status = models.TransactionStatusCompleted
	}

	return &models.Transaction{
		OwnerID:       ownerID,
		Date:          parsedDate,
		Amount:        parsedAmount,
		Category:      category,
		PaymentMethod: paymentMethod,
		Description:   description,
		Status:        status,
	}, nil
}

// parseTransactionFilters reads the list filter query parameters
func parseTransactionFilters(c echo.Context) (models.TransactionFilters, error) {
	filters := models.TransactionFilters{
		Category:      c.QueryParam("category"),
		PaymentMethod: c.QueryParam("payment_method"),
		Status:        c.QueryParam("status"),
		Search:        c.QueryParam("search"),
	}

	if filters.Category != "" && !models.IsValidCategory(filters.Category) {
		return filters, models.ErrInvalidCategory
	}
	if filters.PaymentMethod != "" && !models.IsValidPaymentMethod(filters.PaymentMethod) {
		return filters, models.ErrInvalidPaymentMethod
	}
	if filters.Status != "" && !models.IsValidTransactionStatus(filters.Status) {
		return filters, models.ErrInvalidStatus
	}

	if start := c.QueryParam("start_date"); start != "" {
		parsed, err := time.Parse(dateLayout, start)
		if err != nil {
			return filters, fmt.Errorf("invalid date filter: must be formatted as YYYY-MM-DD")
		}
		filters.StartDate = &parsed
	}

	if end := c.QueryParam("end_date"); end != "" {
		parsed, err := time.Parse(dateLayout, end)
		if err != nil {
			return filters, fmt.Errorf("invalid date filter: must be formatted as YYYY-MM-DD")
		}
		filters.EndDate = &parsed
	}

	return filters, nil
}
