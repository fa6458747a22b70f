package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		expected bool
	}{
		{"Plain address", "user@example.com", true},
		{"Dots and plus", "first.last+tag@example.co.id", true},
		{"Missing at sign", "userexample.com", false},
		{"Missing domain", "user@", false},
		{"Missing TLD", "user@example", false},
		{"Spaces", "user @example.com", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsEmail(tt.email))
		})
	}
}

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"Plain word", "Budi", true},
		{"Padded word", "  Budi  ", true},
		{"Empty", "", false},
		{"Only spaces", "   ", false},
		{"Only tabs and newlines", "\t\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NotBlank(tt.value))
		})
	}
}
