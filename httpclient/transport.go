package httpclient

import "net/http"

// BearerTransport is an http.RoundTripper that attaches a fixed bearer token
// to outgoing HTTP requests.
//
// It wraps an existing transport (typically http.DefaultTransport) and
// injects the Authorization header before each request. The token is
// immutable; code that obtains a new token builds a new transport.
type BearerTransport struct {
	// Base is the underlying HTTP transport. If nil, http.DefaultTransport is used.
	Base http.RoundTripper

	// Token is the bearer token placed in the Authorization header.
	Token string
}

// RoundTrip implements http.RoundTripper interface.
// It adds "Authorization: Bearer <token>" to the request headers before
// delegating to the base transport.
func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	reqClone := req.Clone(req.Context())
	reqClone.Header.Set("Authorization", "Bearer "+t.Token)

	// Use base transport or default
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	return base.RoundTrip(reqClone)
}

// NewBearerTransport creates a new BearerTransport for the given token.
// The base transport defaults to http.DefaultTransport if not specified.
func NewBearerTransport(token string, base http.RoundTripper) *BearerTransport {
	if base == nil {
		base = http.DefaultTransport
	}

	return &BearerTransport{
		Base:  base,
		Token: token,
	}
}
