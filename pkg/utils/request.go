package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/pkg/validate"
)

// DecodeJSON reads the body into dst and validates it. Both failures are reported as
// domain.ErrValidation so handlers can pass them to RespondWithDomainError.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: Invalid request body", domain.ErrValidation)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}
	return nil
}

// QueryInt returns the integer query parameter, or 0 when it is absent or malformed.
func QueryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}

func URLParamUUID(r *http.Request, key string) (uuid.UUID, error) {
	return ParseUUID(key, chi.URLParam(r, key))
}

// ParseUUID parses value as the id named field, reporting a malformed one as domain.ErrValidation.
func ParseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: Invalid %s", domain.ErrValidation, field)
	}
	return id, nil
}
