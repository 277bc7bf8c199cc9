// Package testutil provides test helpers for authorized-client packages.
//
// It includes utilities to spin up IPv4-only local HTTP servers (avoiding IPv6 in sandboxes),
// mock OAuth2 token endpoints that record exchange requests, signed test JWTs, and
// self-signed certificates for TLS/mTLS tests.
//
// # Utilities
//
//   - NewLocalHTTPServer: start httptest server bound to 127.0.0.1
//   - NewTokenServer: stub OAuth2 token endpoints and capture exchange form values
//   - SignedJWT: mint an HS256 token with a chosen expiry
//   - RoundTripFunc: inline http.RoundTripper implementations
//   - WriteTestCACert / WriteTestCertAndKey: generate temporary CA and leaf certificates
package testutil
