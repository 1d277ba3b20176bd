package validation

import (
	"strings"
	"unicode/utf8"
)

// Column limits of the relational schema
const (
	StudentIDMaxLength = 10
	CodeMaxLength      = 20
)

// StringValidation checks a required string against an optional length cap
type StringValidation struct {
	Value  string
	MaxLen int
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{Value: value}
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// Validate performs validation. Blank values are rejected and lengths are in runes.
func (v *StringValidation) Validate() bool {
	if strings.TrimSpace(v.Value) == "" {
		return false
	}
	return v.MaxLen <= 0 || utf8.RuneCountInString(v.Value) <= v.MaxLen
}
