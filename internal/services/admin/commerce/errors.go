package commerce

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// maxErrorBodyBytes caps how much of an error response is read.
const maxErrorBodyBytes = 64 << 10

// APIError is a non-2xx response from the remote API.
type APIError struct {
	StatusCode int
	// Type is the remote error category, e.g. "invalid_data" or "not_allowed".
	Type    string
	Code    string
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message == "" {
		return fmt.Sprintf("commerce api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("commerce api: status %d: %s", e.StatusCode, e.Message)
}

// UserMessage returns the remote message intended for operators.
func (e *APIError) UserMessage() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// IsNotFound reports whether err is a remote 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// decodeAPIError builds an APIError from a response body.
//
// The message is taken from "message", then from the first "errors[].message",
// and is left empty when the body is not JSON.
func decodeAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}
	if !gjson.ValidBytes(body) {
		return apiErr
	}
	parsed := gjson.ParseBytes(body)
	apiErr.Type = parsed.Get("type").String()
	apiErr.Code = parsed.Get("code").String()

	message := strings.TrimSpace(parsed.Get("message").String())
	if message == "" {
		message = strings.TrimSpace(parsed.Get("errors.0.message").String())
	}
	apiErr.Message = message
	return apiErr
}
