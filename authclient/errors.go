package authclient

import "fmt"

// StatusError reports a resource call that reached the server but came back
// with a non-2xx status. Body holds a bounded prefix of the response body.
type StatusError struct {
	// StatusCode is the HTTP status returned by the resource server.
	StatusCode int

	// URL is the requested resource URL.
	URL string

	// Body is the response body, truncated to the first few KiB.
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("authclient: %s returned status %d", e.URL, e.StatusCode)
}

// DecodeError reports a 2xx response whose body could not be decoded as JSON
// into the caller's requested type.
type DecodeError struct {
	// URL is the requested resource URL.
	URL string

	// Err is the underlying json decoding error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("authclient: decode response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
