// Package authclient makes it easy to call JSON REST endpoints protected by
// OAuth 2.0 client credentials authorization.
//
// Connect performs the client credentials exchange eagerly: a returned
// *AuthorizedClient always holds a valid, already-fetched bearer token, and
// there is no unauthenticated state observable to callers. Every subsequent
// request carries the token as an Authorization header and decodes the JSON
// response into a caller-chosen type.
//
// The token is never refreshed. The client holds no mutable shared state, so
// concurrent callers need no coordination; if the token expires mid-session,
// the next call reports the resource server's rejection and the caller
// reconnects.
//
// # Features
//
//   - Eager client-credentials exchange via golang.org/x/oauth2
//   - Generic Get/Post decoding into caller-chosen types
//   - Distinct error types for status, decode, and transport failures
//   - TLS/mTLS, timeout, and custom-client options shared with httpclient
//   - Optional logging (WithLogger, WithLoggingEnabled)
//
// # Quick Start
//
//	settings := authclient.Settings{
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	    TokenURL:     "https://auth.example.com/oauth/v2/token",
//	    Scopes:       []string{"profile", "email"},
//	}
//
//	client, err := authclient.Connect(ctx, settings)
//	if err != nil {
//	    log.Fatal(err) // settings are probably wrong
//	}
//
//	info, err := authclient.Get[UserInfo](ctx, client, "https://api.example.com/info")
//
// # Error Handling
//
//	var statusErr *authclient.StatusError
//	if errors.As(err, &statusErr) {
//	    log.Printf("server said %d: %s", statusErr.StatusCode, statusErr.Body)
//	}
//
// Construction-time failures never produce a client; per-call failures never
// invalidate one.
package authclient
