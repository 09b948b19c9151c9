package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ResponseError is a non-2xx reply from the service. Detail holds the
// human-readable "detail" field when the service sent one as a string.
type ResponseError struct {
	StatusCode int
	Detail     string
}

func (e *ResponseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("service returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("service returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// ErrorDetail exposes the structured failure detail to callers that only
// know about the behavior, not the type.
func (e *ResponseError) ErrorDetail() string { return e.Detail }

func newResponseError(status int, body []byte) *ResponseError {
	re := &ResponseError{StatusCode: status}
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return re
	}
	// Validation failures carry a list of objects; only plain strings are user-facing.
	var detail string
	if err := json.Unmarshal(envelope.Detail, &detail); err == nil {
		re.Detail = strings.TrimSpace(detail)
	}
	return re
}
