package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnauthorized is returned when the backend rejects the bearer token.
// By the time a caller sees it the session has already been invalidated by
// the client's unauthorized hook; callers only redirect, they never render it.
var ErrUnauthorized = errors.New("unauthorized")

// APIError carries a backend error payload unchanged. The client never
// retries or transforms failures; callers extract a display message and
// fall back to their own wording when the backend sent none.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// DisplayMessage returns the backend's message, or the given fallback when
// the backend sent nothing readable.
func DisplayMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// newAPIError extracts a message from the common backend error shapes:
// {"error":{"code","message"}}, {"message": "..."}, or a bare string body.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Body: body}

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		switch {
		case envelope.Error.Message != "":
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		case envelope.Message != "":
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if msg := strings.TrimSpace(string(body)); msg != "" && !strings.HasPrefix(msg, "{") {
		apiErr.Message = msg
	}
	return apiErr
}

func isAuthFailure(statusCode int) bool {
	// Deployments differ on whether an invalid token yields 401 or 403;
	// both invalidate the session.
	return statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden
}
