package openai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is a non-2xx reply from the remote service with whatever message
// the service attached. The caller surfaces it to the user unmodified.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Remote errors arrive as {"error": {"message": "...", "type": "..."}}.
type apiErrorBody struct {
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func newAPIError(statusCode int, body []byte) *APIError {
	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != nil && parsed.Error.Message != "" {
		return &APIError{StatusCode: statusCode, Message: parsed.Error.Message}
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = "no error detail returned"
	}
	return &APIError{StatusCode: statusCode, Message: msg}
}
