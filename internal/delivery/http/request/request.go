package request

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

const maxRequestBodySize = 1 << 20 // 1MB

// DecodeJSON decodes JSON request body into the provided struct with size limit
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()

	limitedReader := io.LimitReader(r.Body, maxRequestBodySize)

	if err := json.NewDecoder(limitedReader).Decode(v); err != nil {
		return fmt.Errorf("failed to decode JSON: %w", err)
	}
	return nil
}

// GetNameParam extracts a product name parameter from the URL.
// Product names may contain spaces, so the segment is path-unescaped.
func GetNameParam(r *http.Request, key string) (string, error) {
	param := chi.URLParam(r, key)
	if param == "" {
		return "", fmt.Errorf("missing parameter: %s", key)
	}

	name, err := url.PathUnescape(param)
	if err != nil {
		// Literal percent signs in a name are not escape sequences
		return param, nil
	}

	return name, nil
}

// GetBoolQuery extracts a boolean query parameter, defaulting to false
func GetBoolQuery(r *http.Request, key string) bool {
	return r.URL.Query().Get(key) == "true"
}
