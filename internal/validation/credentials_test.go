package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid", "validuser1", false},
		{"underscore", "john_doe_1", false},
		{"shortest", "abcdefgh", false},
		{"longest", "abcdefghijklmno", false},
		{"too short", "abcdefg", true},
		{"too long", "abcdefghijklmnop", true},
		{"starts with digit", "1validuser", true},
		{"starts with underscore", "_validuser", true},
		{"dash", "valid-user", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Username(tt.username)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidUsername)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"simple", "a@b.com", false},
		{"plus", "john+tag@example.co.uk", false},
		{"no tld", "john@localhost", false},
		{"missing at", "john.example.com", true},
		{"double at", "john@@example.com", true},
		{"space", "john doe@example.com", true},
		{"empty domain label", "john@example..com", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email(tt.email)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEmail)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Abcdef1!", false},
		{"valid max length", "Abcdefghijk12!x", false},
		{"no uppercase", "short1!", true},
		{"too short", "Abc1!", true},
		{"too long", "Abcdefghijk12!xy", true},
		{"no digit", "Abcdefg!", true},
		{"no lowercase", "ABCDEF1!", true},
		{"no special", "Abcdefg1", true},
		{"whitespace", "Abc def1!", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Password(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPassword)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
