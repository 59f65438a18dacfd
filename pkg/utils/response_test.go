package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/gamemarket/internal/domain"
)

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name           string
		code           int
		expectedStatus string
	}{
		{"Client error", http.StatusBadRequest, StatusFail},
		{"Not found", http.StatusNotFound, StatusFail},
		{"Server error", http.StatusInternalServerError, StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RespondWithError(rec, tt.code, "boom")

			var resp Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.expectedStatus, resp.Status)
			assert.Equal(t, "boom", resp.Message)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestRespondWithDomainError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedCode    int
		expectedMessage string
	}{
		{"Not found", fmt.Errorf("%w: Listing not found", domain.ErrNotFound), http.StatusNotFound, "Listing not found"},
		{"Validation", fmt.Errorf("%w: Insufficient stock", domain.ErrValidation), http.StatusBadRequest, "Insufficient stock"},
		{"Unauthorized", fmt.Errorf("%w: Invalid credentials", domain.ErrUnauthorized), http.StatusUnauthorized, "Invalid credentials"},
		{"Forbidden", fmt.Errorf("%w: Account is deactivated", domain.ErrForbidden), http.StatusForbidden, "Account is deactivated"},
		{"Conflict", fmt.Errorf("%w: email already registered", domain.ErrConflict), http.StatusConflict, "email already registered"},
		{"Insufficient funds", domain.ErrInsufficientFunds, http.StatusPaymentRequired, "insufficient funds"},
		{"Wrapped twice", fmt.Errorf("checkout: %w", fmt.Errorf("%w: Cart is empty", domain.ErrValidation)), http.StatusBadRequest, "Cart is empty"},
		{"Unknown", errors.New("connection refused"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RespondWithDomainError(rec, tt.err)

			var resp Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}
