package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanZipcode(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"five digits", "80219", "80219"},
		{"four digits padded", "2021", "02021"},
		{"empty", "", "00000"},
		{"single digit", "7", "00007"},
		{"zip plus four truncated", "802191234", "80219"},
		{"non-numeric passes through", "ab", "000ab"},
		{"long non-numeric truncated", "abcdefg", "abcde"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanZipcode(tt.raw))
		})
	}
}

func TestCleanZipcode_Idempotent(t *testing.T) {
	for _, raw := range []string{"80219", "2021", "", "123456789"} {
		once := CleanZipcode(raw)
		assert.Equal(t, once, CleanZipcode(once), "raw %q", raw)
		assert.Len(t, once, 5)
	}
}

func TestCleanPhoneNumber(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"already formatted", "123-456-7890", "123-456-7890"},
		{"ten digits", "1234567890", "123-456-7890"},
		{"eleven digits leading one", "11234567890", "123-456-7890"},
		{"eleven digits other lead", "21234567890", InvalidPhoneNumber},
		{"too short", "123456", InvalidPhoneNumber},
		{"too long", "123456789012", InvalidPhoneNumber},
		{"punctuation and spaces", "(315) 450.6000", "315-450-6000"},
		{"leading one with punctuation", "+1 (315) 450-6000", "315-450-6000"},
		{"empty", "", InvalidPhoneNumber},
		{"letters only", "phone", InvalidPhoneNumber},
		{"nine digits", "123456789", InvalidPhoneNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanPhoneNumber(tt.raw))
		})
	}
}

func TestCleanPhoneNumber_Idempotent(t *testing.T) {
	for _, raw := range []string{"1234567890", "11234567890", "21234567890", "123"} {
		once := CleanPhoneNumber(raw)
		assert.Equal(t, once, CleanPhoneNumber(once), "raw %q", raw)
	}
}
