package api

import (
	"encoding/json"
	"fmt"
)

// Result is the envelope every gateway call resolves to. Success mirrors
// whether Data is usable; Error carries the user-facing failure message.
type Result struct {
	Data    any    `json:"data"`
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

// Decode unmarshals a JSON result body into dst. It fails when the gateway
// returned a non-JSON body or an unsuccessful result.
func (r Result) Decode(dst any) error {
	raw, ok := r.Data.(json.RawMessage)
	if !ok {
		return fmt.Errorf("result does not carry a JSON body")
	}
	return json.Unmarshal(raw, dst)
}

// Error is returned for every non-2xx response. The status code is kept for
// programmatic branching by callers.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http status: %d", e.StatusCode)
	}
	return fmt.Sprintf("http status %d: %s", e.StatusCode, e.Message)
}

// ErrorResponse is the error body shape the platform API returns.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}
