package api

import "fmt"

// Error represents a failed request or a non-2xx response from the backend.
type Error struct {
	StatusCode int
	Endpoint   string
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("api error for %s: %s: %v", e.Endpoint, e.Message, e.Cause)
	}
	return fmt.Sprintf("api error for %s: %s", e.Endpoint, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// AuthError represents a 401 from the backend. The caller is expected to
// clear stored credentials and send the user back to login.
type AuthError struct {
	Endpoint string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("unauthorized request to %s; please log in again", e.Endpoint)
}
