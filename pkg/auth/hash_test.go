package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hashService := NewHashService(bcrypt.MinCost)

	tests := []struct {
		name        string
		password    string
		expectError error
	}{
		{
			name:     "Valid Password",
			password: "securepassword",
		},
		{
			name:        "Empty Password",
			password:    "",
			expectError: ErrEmptyPassword,
		},
		{
			name:        "Too long",
			password:    strings.Repeat("a", 73),
			expectError: ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedPassword, err := hashService.HashPassword(tt.password)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Empty(t, hashedPassword)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, hashedPassword)
			}
		})
	}
}

func TestComparePassword(t *testing.T) {
	hashService := NewHashService(bcrypt.MinCost)
	stored, err := hashService.HashPassword("securepassword")
	assert.NoError(t, err)

	tests := []struct {
		name           string
		password       string
		hashedPassword string
		expectMatch    bool
	}{
		{"Matching Password", "securepassword", stored, true},
		{"Non-Matching Password", "wrongpassword", stored, false},
		{"Account without password", "securepassword", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectMatch, hashService.ComparePassword(tt.hashedPassword, tt.password))
		})
	}
}

func TestNewHashService_CostOutOfRange(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHashService(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewHashService(99).cost)
	assert.Equal(t, bcrypt.MinCost, NewHashService(bcrypt.MinCost).cost)
}
