package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hashService := &HashService{}

	tests := []struct {
		name        string
		password    string
		expectedErr error
	}{
		{
			name:     "Valid Password",
			password: "securepassword",
		},
		{
			name:        "Empty Password",
			password:    "",
			expectedErr: ErrEmptyPassword,
		},
		{
			name:        "Password over 72 bytes",
			password:    strings.Repeat("a", 73),
			expectedErr: ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedPassword, err := hashService.HashPassword(tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, hashedPassword)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, hashedPassword)
			}
		})
	}
}

func TestComparePassword(t *testing.T) {
	hashService := &HashService{}

	hashed, err := hashService.HashPassword("securepassword")
	assert.NoError(t, err)

	assert.True(t, hashService.ComparePassword(hashed, "securepassword"))
	assert.False(t, hashService.ComparePassword(hashed, "wrongpassword"))
	assert.False(t, hashService.ComparePassword("not-a-hash", "securepassword"))
}
