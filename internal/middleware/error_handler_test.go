package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")
	return c, rec
}

func TestCustomHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	c, rec := newErrorContext(t)

	CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound, "route not found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "route not found")
	assert.Contains(t, rec.Body.String(), "test-trace-id")
}

func TestCustomHTTPErrorHandler_ValidationErrors(t *testing.T) {
	c, rec := newErrorContext(t)

	// A request that fails multiple validator rules
	req := dto.CreateTransactionRequest{
		Date:          "2025-04-10",
		Amount:        "not-a-number",
		Category:      "Groceries",
		PaymentMethod: "Card",
		Description:   "x",
	}
	err := validation.GetValidator().GetValidate().Struct(req)
	assert.Error(t, err)

	CustomHTTPErrorHandler(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_001")
	assert.Contains(t, rec.Body.String(), "amount")
	assert.Contains(t, rec.Body.String(), "category")
}

func TestCustomHTTPErrorHandler_UnknownError(t *testing.T) {
	c, rec := newErrorContext(t)

	CustomHTTPErrorHandler(errors.New("database exploded"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_001")
	// Internal detail never leaks to the client
	assert.NotContains(t, rec.Body.String(), "database exploded")
}

func TestCustomHTTPErrorHandler_RateLimitStatus(t *testing.T) {
	c, rec := newErrorContext(t)

	CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusTooManyRequests, "slow down"), c)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_004")
}
