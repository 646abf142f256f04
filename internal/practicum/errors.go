package practicum

import (
	"fmt"
	"net/http"
)

// TransportError wraps a network-level failure of the underlying client.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("request to API failed: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// UnexpectedStatusCodeError reports a non-200 response.
type UnexpectedStatusCodeError struct {
	StatusCode int
}

func (e *UnexpectedStatusCodeError) Error() string {
	return fmt.Sprintf("API endpoint returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}
