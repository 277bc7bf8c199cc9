package authclient

// Settings holds the client credentials configuration used to establish an
// AuthorizedClient. It is a plain data holder: no validation is performed
// beyond what the token endpoint enforces server-side.
//
// Settings are read once, at Connect time; mutating a value afterwards has no
// effect on an already-constructed client.
type Settings struct {
	// ClientID is the OAuth2 client identifier.
	ClientID string

	// ClientSecret is the OAuth2 client secret.
	ClientSecret string

	// TokenURL is the authorization server's token endpoint
	// (e.g., "https://auth.example.com/oauth/v2/token").
	TokenURL string

	// Scopes are the OAuth2 scopes requested during the exchange.
	// They are sent as a single space-joined scope parameter.
	Scopes []string
}
