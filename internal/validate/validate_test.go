package validate

import (
	"testing"

	"github.com/drigmma/zabugorn/internal/config"

	"github.com/stretchr/testify/assert"
)

var testPhoneCfg = config.PhoneConfig{
	CountryCode:  "7",
	TrunkPrefix:  "8",
	RewriteTrunk: true,
	Length:       12,
}

func TestFullName(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{
			name:     "valid two-word name",
			input:    "Иванов Иван",
			expected: "Иванов Иван",
		},
		{
			name:     "valid three-word name",
			input:    "Иванов Иван Иванович",
			expected: "Иванов Иван Иванович",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  Иванов Иван  ",
			expected: "Иванов Иван",
		},
		{
			name:     "hyphenated surname",
			input:    "Петрова-Сидорова Анна",
			expected: "Петрова-Сидорова Анна",
		},
		{
			name:        "digits rejected",
			input:       "Иванов Иван 3й",
			expectError: true,
		},
		{
			name:        "latin letters rejected",
			input:       "Ivanov Ivan",
			expectError: true,
		},
		{
			name:        "single word rejected",
			input:       "Иванов",
			expectError: true,
		},
		{
			name:        "empty rejected",
			input:       "   ",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := FullName(tt.input)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{
			name:     "trunk prefix rewritten",
			input:    "89991234567",
			expected: "+79991234567",
		},
		{
			name:     "formatted international number",
			input:    "+7 (999) 123-45-67",
			expected: "+79991234567",
		},
		{
			name:     "plain international number",
			input:    "+79991234567",
			expected: "+79991234567",
		},
		{
			name:     "country code without plus",
			input:    "79991234567",
			expected: "+79991234567",
		},
		{
			name:        "too short",
			input:       "+7999123456",
			expectError: true,
		},
		{
			name:        "too long",
			input:       "+799912345678",
			expectError: true,
		},
		{
			name:        "wrong country code",
			input:       "+19991234567",
			expectError: true,
		},
		{
			name:        "no digits",
			input:       "abc",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Phone(tt.input, testPhoneCfg)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestPhone_NoTrunkRewrite(t *testing.T) {
	cfg := testPhoneCfg
	cfg.RewriteTrunk = false

	// Without rewrite an 8-prefixed number fails the country code check
	_, err := Phone("89991234567", cfg)
	assert.Error(t, err)

	// International form still works
	result, err := Phone("+79991234567", cfg)
	assert.NoError(t, err)
	assert.Equal(t, "+79991234567", result)
}

func TestFreeText(t *testing.T) {
	result, err := FreeText("  BMW X5  ")
	assert.NoError(t, err)
	assert.Equal(t, "BMW X5", result)

	_, err = FreeText("   ")
	assert.Error(t, err)
}

func TestIsSkip(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"-", true},
		{"нет", true},
		{"НЕТ", true},
		{"no", true},
		{"None", true},
		{"ничего", true},
		{" - ", true},
		{"BMW", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSkip(tt.input))
		})
	}
}
