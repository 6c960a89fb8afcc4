// Package validation provides the field validators applied to raw request
// input before any store access. Validators are pure functions: they either
// return nil or an *apperr.Error carrying a 400 status and a field-specific
// message.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/meepleshelf/meeple-api/internal/apperr"
)

// String checks that value is a string, optionally non-empty after trimming,
// and that its trimmed length does not exceed maxLen. A trimmed length of
// exactly maxLen passes. Length is counted in characters, not bytes, to
// match the VARCHAR column limits the caller mirrors.
func String(value any, fieldName string, maxLen int, required bool) error {
	s, ok := value.(string)
	if !ok {
		return apperr.BadRequest(
			fmt.Sprintf("Invalid data type for field: %s. Expected a string", fieldName),
		)
	}

	trimmed := strings.TrimSpace(s)

	if trimmed == "" && required {
		return apperr.BadRequest(fmt.Sprintf("Field cannot be empty: %s", fieldName))
	}

	if utf8.RuneCountInString(trimmed) > maxLen {
		return apperr.BadRequest(
			fmt.Sprintf("Field cannot be larger than %d: %s", maxLen, fieldName),
		)
	}

	return nil
}

// Int checks that value is of numeric kind and does not exceed max.
// There is deliberately no lower bound and no integrality check: negative
// values and fractional values pass as long as they are numeric.
func Int(value any, fieldName string, max float64) error {
	n, ok := asNumber(value)
	if !ok {
		return apperr.BadRequest(
			fmt.Sprintf("Invalid data type for field: %s. Expected a Number", fieldName),
		)
	}

	if n > max {
		return apperr.BadRequest(
			fmt.Sprintf("Field cannot be larger than %v: %s", max, fieldName),
		)
	}

	return nil
}

// asNumber reports whether value is of numeric kind and returns it as a
// float64. JSON decoding produces float64, the other kinds cover direct
// callers.
func asNumber(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
