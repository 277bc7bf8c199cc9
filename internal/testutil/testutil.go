package testutil

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// NewLocalHTTPServer starts an HTTP server bound to IPv4 loopback only.
// The sandbox blocks IPv6 listeners, so force tcp4 to keep tests runnable.
func NewLocalHTTPServer(tb testing.TB, handler http.Handler) *httptest.Server {
	tb.Helper()

	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		tb.Fatalf("failed to create IPv4 listener: %v", err)
	}

	server := httptest.NewUnstartedServer(handler)
	server.Listener = listener
	server.Start()
	tb.Cleanup(server.Close)

	return server
}

// RoundTripFunc allows inlining http.RoundTripper implementations.
type RoundTripFunc func(*http.Request) (*http.Response, error)

// RoundTrip calls the underlying function.
func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// TokenServer simulates an OAuth2 token endpoint on a local listener.
// It records the form values of every exchange request it receives.
type TokenServer struct {
	server *httptest.Server

	mu       sync.Mutex
	requests []url.Values
}

// DefaultTokenResponse is the canned body served by NewTokenServer when the
// caller passes an empty body.
const DefaultTokenResponse = `{"access_token":"mock-access-token","token_type":"Bearer","expires_in":3600}`

// NewTokenServer starts a mock token endpoint that answers POST /token with
// the given status and body. An empty body serves DefaultTokenResponse.
func NewTokenServer(tb testing.TB, status int, body string) *TokenServer {
	tb.Helper()

	if body == "" {
		body = DefaultTokenResponse
	}

	ts := &TokenServer{}
	ts.server = NewLocalHTTPServer(tb, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token" {
			tb.Errorf("unexpected token path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			tb.Errorf("unexpected token method: %s", r.Method)
		}

		if err := r.ParseForm(); err != nil {
			tb.Errorf("failed to parse token request form: %v", err)
		}

		ts.mu.Lock()
		ts.requests = append(ts.requests, r.PostForm)
		ts.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))

	return ts
}

// TokenURL returns the full URL of the mock token endpoint.
func (s *TokenServer) TokenURL() string {
	return s.server.URL + "/token"
}

// Requests returns a copy of the recorded exchange form values.
func (s *TokenServer) Requests() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()

	requests := make([]url.Values, len(s.requests))
	copy(requests, s.requests)
	return requests
}

// SignedJWT mints an HS256-signed token whose exp claim is set to expiry.
// The signature uses a throwaway key; callers only parse it unverified.
func SignedJWT(tb testing.TB, expiry time.Time) string {
	tb.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "test-client",
		"exp": expiry.Unix(),
	})

	signed, err := token.SignedString([]byte("test-signing-key"))
	if err != nil {
		tb.Fatalf("failed to sign test JWT: %v", err)
	}

	return signed
}

// WriteTestCACert writes a self-signed CA certificate to the provided path.
func WriteTestCACert(tb testing.TB, path string) {
	tb.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		tb.Fatalf("failed to generate CA key: %v", err)
	}

	template := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		Subject:               pkix.Name{CommonName: "test-ca"},
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &privateKey.PublicKey, privateKey)
	if err != nil {
		tb.Fatalf("failed to create CA certificate: %v", err)
	}

	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	if err := os.WriteFile(path, pemBytes, 0o600); err != nil {
		tb.Fatalf("failed to write CA certificate: %v", err)
	}
}

// WriteTestCertAndKey writes a self-signed certificate and key to the provided paths.
func WriteTestCertAndKey(tb testing.TB, certPath, keyPath string) {
	tb.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		tb.Fatalf("failed to generate key: %v", err)
	}

	template := &x509.Certificate{
		SerialNumber: big.NewInt(2),
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		Subject:      pkix.Name{CommonName: "test-cert"},
		KeyUsage:     x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageServerAuth},
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &privateKey.PublicKey, privateKey)
	if err != nil {
		tb.Fatalf("failed to create certificate: %v", err)
	}

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	if err := os.WriteFile(certPath, certPEM, 0o600); err != nil {
		tb.Fatalf("failed to write certificate: %v", err)
	}

	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(privateKey)})
	if err := os.WriteFile(keyPath, keyPEM, 0o600); err != nil {
		tb.Fatalf("failed to write key: %v", err)
	}
}
