package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	ErrUnauthorized = errors.New("backend rejected the session token")
	ErrNotFound     = errors.New("resource not found")
)

// APIError is a non-2xx backend response, carrying whatever message the
// backend put in its JSON error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

func newAPIError(resp *http.Response) error {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message == "" {
			envelope.Message = envelope.Error
		}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
}
