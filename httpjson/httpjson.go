// Package httpjson provides common helpers for JSON-based HTTP responses
package httpjson

import (
	"fmt"
	"io"
	"net/http"

	"github.com/sugawarayuuta/sonnet"
)

// JSON is a convenience alias for a generic JSON object
type JSON map[string]any

// writeResponse writes JSON bytes with status code
func writeResponse(w http.ResponseWriter, data []byte, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if code != 0 {
		w.WriteHeader(code)
	}
	_, _ = w.Write(data)
}

// WriteJSON encodes and writes JSON to the response with HTTP 200
func WriteJSON(w http.ResponseWriter, data any) {
	WriteJSONWithStatus(w, 0, data)
}

// WriteJSONWithStatus encodes and writes JSON with the given HTTP status code
func WriteJSONWithStatus(w http.ResponseWriter, code int, data any) {
	encoded, err := sonnet.Marshal(data)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeResponse(w, append(encoded, '\n'), code)
}

// DecodeJSON decodes JSON from r into target, reading at most maxSize bytes.
// A non-positive maxSize disables the limit.
func DecodeJSON[T any](r io.Reader, target *T, maxSize int64) error {
	if maxSize > 0 {
		r = io.LimitReader(r, maxSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read json: %w", err)
	}
	if maxSize > 0 && int64(len(data)) > maxSize {
		return fmt.Errorf("decode json: body exceeds %d bytes", maxSize)
	}
	if err := sonnet.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}
