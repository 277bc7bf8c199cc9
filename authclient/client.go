package authclient

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/jeroenvervaeke/authorized-client/httpclient"
)

// Logger is an interface for optional logging in AuthorizedClient.
// Implementations can log connect and dispatch events if desired.
type Logger interface {
	Printf(format string, args ...any)
}

// AuthorizedClient dispatches HTTP requests to JSON REST endpoints with a
// bearer token obtained once, at Connect time, through the OAuth2 client
// credentials flow.
//
// The token is immutable after construction: there is no refresh and no
// locking, so a constructed client is safe for concurrent use without
// coordination. If the token expires mid-session, the next call surfaces the
// resource server's rejection (typically a *StatusError with status 401);
// callers that need a fresh token call Connect again.
type AuthorizedClient struct {
	settings Settings
	token    *oauth2.Token
	http     *http.Client
	logger   Logger
}

// Option is a functional option for configuring Connect.
type Option func(*connectOptions)

type connectOptions struct {
	httpClient  *http.Client
	timeout     time.Duration
	tlsCAFile   string
	tlsCertFile string
	tlsKeyFile  string
	tlsInsecure bool
	logger      Logger
}

// WithHTTPClient supplies the HTTP client used for the token exchange and,
// wrapped with bearer injection, for all resource requests. Timeout and TLS
// behavior then come from that client, so WithTimeout, WithTLS and
// WithInsecureSkipVerify are ignored when this option is set.
func WithHTTPClient(client *http.Client) Option {
	return func(o *connectOptions) {
		o.httpClient = client
	}
}

// WithTimeout sets the request timeout of the constructed HTTP client.
// Default is 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(o *connectOptions) {
		o.timeout = timeout
	}
}

// WithTLS configures TLS for the constructed HTTP client.
//
// Parameters:
//   - caFile: Path to CA certificate for server verification (optional, uses system roots if empty)
//   - certFile: Path to client certificate for mTLS (optional, must be paired with keyFile)
//   - keyFile: Path to client private key for mTLS (optional, must be paired with certFile)
func WithTLS(caFile, certFile, keyFile string) Option {
	return func(o *connectOptions) {
		o.tlsCAFile = caFile
		o.tlsCertFile = certFile
		o.tlsKeyFile = keyFile
	}
}

// WithInsecureSkipVerify disables TLS certificate verification (NOT RECOMMENDED for production).
// This should only be used for testing or development purposes.
func WithInsecureSkipVerify() Option {
	return func(o *connectOptions) {
		o.tlsInsecure = true
	}
}

// WithLogger sets a custom logger for connect and dispatch events.
// If not set, no logging will occur.
func WithLogger(logger Logger) Option {
	return func(o *connectOptions) {
		o.logger = logger
	}
}

// WithLoggingEnabled enables logging using the default Go log package.
// This is a convenience option that sets the logger to log.Default().
func WithLoggingEnabled() Option {
	return func(o *connectOptions) {
		o.logger = log.Default()
	}
}

// Connect performs the client credentials exchange against settings.TokenURL
// and returns a client holding the issued bearer token.
//
// The exchange is a single form-encoded POST carrying
// grant_type=client_credentials, the client id and secret, and the
// space-joined scopes. A returned client always holds an already-fetched
// token; on any failure (network, non-2xx status, malformed token payload)
// no client is produced. Callers that need to tell a rejected exchange apart
// from a transport failure can unwrap *oauth2.RetrieveError via errors.As.
func Connect(ctx context.Context, settings Settings, opts ...Option) (*AuthorizedClient, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var cfg connectOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	base := cfg.httpClient
	if base == nil {
		builder := httpclient.NewBuilder()
		if cfg.timeout > 0 {
			builder.WithTimeout(cfg.timeout)
		}
		if cfg.tlsCAFile != "" || cfg.tlsCertFile != "" || cfg.tlsKeyFile != "" {
			builder.WithTLS(cfg.tlsCAFile, cfg.tlsCertFile, cfg.tlsKeyFile)
		}
		if cfg.tlsInsecure {
			builder.WithInsecureSkipVerify()
		}

		var err error
		base, err = builder.Build()
		if err != nil {
			return nil, fmt.Errorf("authclient: build HTTP client: %w", err)
		}
	}

	exchange := &clientcredentials.Config{
		ClientID:     settings.ClientID,
		ClientSecret: settings.ClientSecret,
		TokenURL:     settings.TokenURL,
		Scopes:       settings.Scopes,
		// Credentials travel in the form body, matching the token endpoint contract.
		AuthStyle: oauth2.AuthStyleInParams,
	}

	// Route the exchange through the same client the resource calls will use.
	token, err := exchange.Token(context.WithValue(ctx, oauth2.HTTPClient, base))
	if err != nil {
		return nil, fmt.Errorf("authclient: token exchange with %s failed: %w", settings.TokenURL, err)
	}

	// Some authorization servers omit expires_in; when the access token is a
	// JWT, fall back to its exp claim so Token() can report expiry.
	if token.Expiry.IsZero() {
		token.Expiry = expiryFromJWT(token.AccessToken)
	}

	client := &AuthorizedClient{
		settings: settings,
		token:    token,
		logger:   cfg.logger,
		http: &http.Client{
			Transport:     httpclient.NewBearerTransport(token.AccessToken, base.Transport),
			CheckRedirect: base.CheckRedirect,
			Jar:           base.Jar,
			Timeout:       base.Timeout,
		},
	}

	if client.logger != nil {
		client.logger.Printf("authclient: connected to %s (token expires: %s)", settings.TokenURL, formatExpiry(token.Expiry))
	}

	return client, nil
}

// Token returns a copy of the bearer token obtained at Connect time.
// Expiry is informational: the client never refreshes, but callers can use
// it to decide when to Connect again.
func (c *AuthorizedClient) Token() oauth2.Token {
	return *c.token
}

// HTTPClient returns the underlying HTTP client. Its transport injects the
// stored bearer token into every request, so it can be handed to code that
// expects a plain *http.Client.
func (c *AuthorizedClient) HTTPClient() *http.Client {
	return c.http
}

// expiryFromJWT extracts the exp claim from a JWT access token without
// verifying the signature. Returns the zero time when the token is not a JWT
// or carries no exp claim.
func expiryFromJWT(accessToken string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return time.Time{}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}

	return exp.Time
}

func formatExpiry(expiry time.Time) string {
	if expiry.IsZero() {
		return "unknown"
	}
	return expiry.Format(time.RFC3339)
}
