package pg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgErrorCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		outOfRange bool
	}{
		{name: "Unique violation", err: &pgconn.PgError{Code: "23505"}, unique: true},
		{name: "Wrapped foreign key violation", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}), foreignKey: true},
		{name: "Numeric out of range", err: &pgconn.PgError{Code: "22003"}, outOfRange: true},
		{name: "Plain error", err: errors.New("boom")},
		{name: "Nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, IsUniqueViolation(tt.err))
			assert.Equal(t, tt.foreignKey, IsForeignKeyViolation(tt.err))
			assert.Equal(t, tt.outOfRange, IsNumericOutOfRange(tt.err))
		})
	}
}
