// Package httpclient offers HTTP client construction helpers with bearer token injection and TLS/mTLS options.
//
// It provides a fluent Builder that can create an http.Client whose transport attaches a fixed
// "Authorization: Bearer" header to every request, with configurable TLS (custom CA, mTLS, insecure
// for tests), timeouts, base transports, and redirect handling. BearerTransport can wrap any RoundTripper.
//
// The token is supplied once and never changes; authclient.Connect obtains it through the OAuth2
// client credentials flow and hands it to this package.
//
// # Features
//
//   - Fluent builder for http.Client with optional bearer token injection
//   - TLS 1.2+ by default, with custom CA/mTLS and optional InsecureSkipVerify
//   - Custom timeouts, base transport override, and redirect disabling
//   - Reusable BearerTransport for manual composition
//
// # Quick Start
//
//	client, err := httpclient.NewBuilder().
//	    WithBearerToken(token).
//	    WithTLS("/path/to/ca.crt", "", "").
//	    WithTimeout(60 * time.Second).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Get("https://api.example.com/data")
//
// # Manual Transport Wrapping
//
//	transport := httpclient.NewBearerTransport(token, nil)
//	client := &http.Client{Transport: transport}
//
// All components are safe for concurrent use; the transport holds no mutable state.
package httpclient
