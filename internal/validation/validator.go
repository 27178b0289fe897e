package validation

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"task-manager/internal/config"
	"task-manager/internal/domain"
)

const (
	defaultTitleMaxLength       = 255
	defaultDescriptionMaxLength = 2000
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a validator using the default limits
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorWithConfig creates a validator whose limits come from cfg
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsWithinLength reports whether the trimmed string has at most max characters
func (v *Validator) IsWithinLength(s string, max int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) <= max
}

// IsValidDate checks for a YYYY-MM-DD calendar date
func (v *Validator) IsValidDate(s string) bool {
	_, err := time.Parse(domain.DateLayout, s)
	return err == nil
}

// IsValidEmail checks for a bare address such as ada@example.com
func (v *Validator) IsValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// TitleMaxLength returns the configured title limit or the default
func (v *Validator) TitleMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMaxLength
	}
	return defaultTitleMaxLength
}

// DescriptionMaxLength returns the configured description limit or the default
func (v *Validator) DescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return defaultDescriptionMaxLength
}
