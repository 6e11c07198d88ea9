package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Shivrajsoni/portfolio/internal/config"
)

// ErrBodyTooLarge is returned by ParseJSON when the body exceeds the limit
var ErrBodyTooLarge = errors.New("request body too large")

// ParseJSON decodes a JSON request body into dest, capped at
// config.MaxRequestBodyBytes. Unknown fields are ignored so the admin UI
// can send whole form objects.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxRequestBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return ErrBodyTooLarge
		}
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}
