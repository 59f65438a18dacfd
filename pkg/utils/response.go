package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gamemarket/internal/domain"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

// RespondWithError writes the error body. Client errors are reported as "fail", server errors as "error".
func RespondWithError(w http.ResponseWriter, code int, message string) {
	status := StatusFail
	if code >= http.StatusInternalServerError {
		status = StatusError
	}
	RespondWithJSON(w, code, Response{Status: status, Message: message})
}

var statusBySentinel = []struct {
	err  error
	code int
}{
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrInsufficientFunds, http.StatusPaymentRequired},
}

// RespondWithDomainError maps a service error onto an HTTP status. The sentinel prefix is
// dropped from the message, so "validation failed: Insufficient stock" reaches the client
// as "Insufficient stock". Unknown errors are logged and hidden behind a generic message.
func RespondWithDomainError(w http.ResponseWriter, err error) {
	for _, s := range statusBySentinel {
		if errors.Is(err, s.err) {
			RespondWithError(w, s.code, clientMessage(err, s.err))
			return
		}
	}
	zap.L().Error("unhandled error", zap.Error(err))
	RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}

func clientMessage(err, sentinel error) string {
	msg := err.Error()
	if i := strings.Index(msg, sentinel.Error()+": "); i >= 0 {
		return msg[i+len(sentinel.Error())+2:]
	}
	return msg
}
