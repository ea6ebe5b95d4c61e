package common

import (
	"encoding/json"
	"net/http"
)

// ParseJSONBody parses a JSON request body with a size limit. Unknown
// fields are rejected so malformed payloads fail loudly.
func ParseJSONBody(r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		return err
	}

	return nil
}
