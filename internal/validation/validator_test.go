package validation

import (
	"strings"
	"testing"

	"task-manager/internal/config"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Valid string", "hello", true},
		{"String with leading/trailing spaces", "  hello  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsNonEmptyString(tt.input)
			if result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsWithinLength(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		max      int
		expected bool
	}{
		{"Under limit", "hello", 10, true},
		{"Exactly max", "hello", 5, true},
		{"Over limit", "hello!", 5, false},
		{"Spaces are trimmed first", "  hello  ", 5, true},
		{"Counts characters not bytes", "héllo", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsWithinLength(tt.input, tt.max)
			if result != tt.expected {
				t.Errorf("IsWithinLength(%q, %d) = %v, expected %v", tt.input, tt.max, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidDate(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		input    string
		expected bool
	}{
		{"2025-03-14", true},
		{"2024-02-29", true},
		{"2025-02-29", false},
		{"2025-13-01", false},
		{"14/03/2025", false},
		{"2025-03-14T10:00:00Z", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := validator.IsValidDate(tt.input); result != tt.expected {
				t.Errorf("IsValidDate(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidEmail(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		input    string
		expected bool
	}{
		{"ada@example.com", true},
		{"ada.lovelace+tasks@example.co.uk", true},
		{"ada", false},
		{"@example.com", false},
		{"Ada <ada@example.com>", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := validator.IsValidEmail(tt.input); result != tt.expected {
				t.Errorf("IsValidEmail(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_LimitsFromConfig(t *testing.T) {
	if got := NewValidator().TitleMaxLength(); got != 255 {
		t.Errorf("default TitleMaxLength() = %d, expected 255", got)
	}

	cfg := config.NewConfig()
	cfg.Validation.TitleMaxLength = 10
	cfg.Validation.DescriptionMaxLength = 20
	validator := NewValidatorWithConfig(cfg)

	if got := validator.TitleMaxLength(); got != 10 {
		t.Errorf("TitleMaxLength() = %d, expected 10", got)
	}
	if got := validator.DescriptionMaxLength(); got != 20 {
		t.Errorf("DescriptionMaxLength() = %d, expected 20", got)
	}
	if validator.IsWithinLength(strings.Repeat("a", 11), validator.TitleMaxLength()) {
		t.Error("expected 11 characters to exceed a 10 character limit")
	}
}
