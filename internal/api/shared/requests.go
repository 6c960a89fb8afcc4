package shared

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// IsMissing reports whether a raw JSON field value counts as absent for the
// purposes of presence checks and the partial-update fallback: nil, an empty
// string, a zero number, or false. A deliberately supplied empty string or
// zero is indistinguishable from an omitted field under this contract.
func IsMissing(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case float64:
		return v == 0
	case bool:
		return !v
	default:
		return false
	}
}
