package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Error is a non-2xx response from the backend. Message is the most specific
// human-readable text that could be extracted from the payload.
type Error struct {
	Message string
	Status  int
	Payload json.RawMessage
}

func (e *Error) Error() string {
	return e.Message
}

// newAPIError builds an Error from a response body, preferring the server's
// "message" field, then "error", then the serialized payload, then the raw
// text, then a generic failure string.
func newAPIError(status int, body []byte, isJSON bool) *Error {
	apiErr := &Error{Status: status}

	if isJSON && len(body) > 0 {
		apiErr.Payload = json.RawMessage(body)
		var parsed map[string]any
		if err := json.Unmarshal(body, &parsed); err == nil {
			if msg, ok := parsed["message"].(string); ok && msg != "" {
				apiErr.Message = msg
				return apiErr
			}
			if msg, ok := parsed["error"].(string); ok && msg != "" {
				apiErr.Message = msg
				return apiErr
			}
			apiErr.Message = string(body)
			return apiErr
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		apiErr.Message = text
		return apiErr
	}

	apiErr.Message = fmt.Sprintf("request failed with status %d", status)
	return apiErr
}
