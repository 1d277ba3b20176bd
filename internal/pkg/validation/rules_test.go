package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringValidation(t *testing.T) {
	assert.False(t, NewStringValidation("").Validate())
	assert.False(t, NewStringValidation("   ").Validate())
	assert.True(t, NewStringValidation("STU001").Validate())

	assert.True(t, NewStringValidation("123456789").WithMaxLength(StudentIDMaxLength).Validate())
	assert.True(t, NewStringValidation("1234567890").WithMaxLength(StudentIDMaxLength).Validate())
	assert.False(t, NewStringValidation("12345678901").WithMaxLength(StudentIDMaxLength).Validate())

	// lengths count runes, not bytes
	assert.True(t, NewStringValidation(strings.Repeat("é", CodeMaxLength)).WithMaxLength(CodeMaxLength).Validate())
	assert.False(t, NewStringValidation(strings.Repeat("é", CodeMaxLength+1)).WithMaxLength(CodeMaxLength).Validate())
}
