package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/meepleshelf/meeple-api/internal/apperr"
	"github.com/meepleshelf/meeple-api/internal/validation"
)

// pathIDMaxLen bounds the raw id path parameter before numeric parsing.
const pathIDMaxLen = 100

// getPathID extracts a numeric ID from the URL path parameters.
// It validates the raw parameter as a string first, then parses it,
// returning typed 400 errors for both failure modes.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, apperr.BadRequest(MissingInformationMessage)
	}

	if err := validation.String(pathParam, paramName, pathIDMaxLen, true); err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, apperr.BadRequest(
			fmt.Sprintf("Invalid data type for field: %s. Expected a Number", paramName))
	}

	return id, nil
}

// asInt coerces a JSON value that already passed numeric validation to int.
// The numeric validator accepts fractional values, so a value like 2.5 is
// truncated toward zero here before it reaches the store. For referenced
// ids this means 1.5 resolves against boardgame 1 rather than failing the
// existence check.
func asInt(value any) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case float32:
		return int(v)
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	}
	return 0
}

// asIntPtr coerces an optional numeric JSON value to *int, nil when absent.
func asIntPtr(value any) *int {
	if value == nil {
		return nil
	}
	n := asInt(value)
	return &n
}

// asStringPtr coerces an optional string JSON value to *string, nil when absent.
func asStringPtr(value any) *string {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	return &s
}
