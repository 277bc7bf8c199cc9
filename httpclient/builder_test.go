package httpclient

import (
	"crypto/tls"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/jeroenvervaeke/authorized-client/internal/testutil"
)

func TestNewBuilder(t *testing.T) {
	builder := NewBuilder()

	if builder == nil {
		t.Fatal("builder should not be nil")
	}

	if builder.timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", builder.timeout)
	}

	if !builder.followRedirects {
		t.Error("redirects should be enabled by default")
	}
}

func TestBuilder_WithBearerToken(t *testing.T) {
	builder := NewBuilder().WithBearerToken("test-token")

	if builder.bearerToken != "test-token" {
		t.Errorf("token not set correctly: %q", builder.bearerToken)
	}

	client, err := builder.Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	transport, ok := client.Transport.(*BearerTransport)
	if !ok {
		t.Fatalf("expected *BearerTransport, got %T", client.Transport)
	}

	if transport.Token != "test-token" {
		t.Errorf("unexpected token on transport: %q", transport.Token)
	}
}

func TestBuilder_WithoutToken(t *testing.T) {
	client, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if _, ok := client.Transport.(*BearerTransport); ok {
		t.Error("transport should not inject a token when none is set")
	}
}

func TestBuilder_WithTLS(t *testing.T) {
	builder := NewBuilder().
		WithTLS("/path/to/ca.crt", "/path/to/cert.crt", "/path/to/key.pem")

	if !builder.tlsEnabled {
		t.Error("TLS should be enabled")
	}

	if builder.tlsCAFile != "/path/to/ca.crt" {
		t.Errorf("unexpected CA file: %s", builder.tlsCAFile)
	}

	if builder.tlsCertFile != "/path/to/cert.crt" {
		t.Errorf("unexpected cert file: %s", builder.tlsCertFile)
	}

	if builder.tlsKeyFile != "/path/to/key.pem" {
		t.Errorf("unexpected key file: %s", builder.tlsKeyFile)
	}
}

func TestBuilder_WithTLS_CAFile(t *testing.T) {
	caPath := filepath.Join(t.TempDir(), "ca.crt")
	testutil.WriteTestCACert(t, caPath)

	client, err := NewBuilder().WithTLS(caPath, "", "").Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	transport, ok := client.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("expected *http.Transport, got %T", client.Transport)
	}

	if transport.TLSClientConfig.RootCAs == nil {
		t.Error("RootCAs should be populated from the CA file")
	}
}

func TestBuilder_WithTLS_MissingCAFile(t *testing.T) {
	_, err := NewBuilder().WithTLS("/nonexistent/ca.crt", "", "").Build()
	if err == nil {
		t.Fatal("expected build to fail for a missing CA file")
	}
}

func TestBuilder_WithTLS_ClientCertPair(t *testing.T) {
	dir := t.TempDir()
	certPath := filepath.Join(dir, "client.crt")
	keyPath := filepath.Join(dir, "client.key")
	testutil.WriteTestCertAndKey(t, certPath, keyPath)

	client, err := NewBuilder().WithTLS("", certPath, keyPath).Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	transport, ok := client.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("expected *http.Transport, got %T", client.Transport)
	}

	if len(transport.TLSClientConfig.Certificates) != 1 {
		t.Error("client certificate should be loaded for mTLS")
	}
}

func TestBuilder_WithTLS_CertWithoutKey(t *testing.T) {
	_, err := NewBuilder().WithTLS("", "/path/to/cert.crt", "").Build()
	if err == nil {
		t.Fatal("expected build to fail for a cert without a key")
	}
}

func TestBuilder_WithInsecureSkipVerify(t *testing.T) {
	client, err := NewBuilder().WithInsecureSkipVerify().Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	transport, ok := client.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("expected *http.Transport, got %T", client.Transport)
	}

	if !transport.TLSClientConfig.InsecureSkipVerify {
		t.Error("InsecureSkipVerify should be enabled")
	}
}

func TestBuilder_WithTimeout(t *testing.T) {
	timeout := 45 * time.Second

	client, err := NewBuilder().WithTimeout(timeout).Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if client.Timeout != timeout {
		t.Errorf("expected timeout %v, got %v", timeout, client.Timeout)
	}
}

func TestBuilder_WithBaseTransport(t *testing.T) {
	customTransport := &http.Transport{}

	client, err := NewBuilder().WithBaseTransport(customTransport).Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if client.Transport != http.RoundTripper(customTransport) {
		t.Error("base transport should be used as-is when no token is set")
	}
}

func TestBuilder_WithBaseTransportAndToken(t *testing.T) {
	customTransport := &http.Transport{}

	client, err := NewBuilder().
		WithBaseTransport(customTransport).
		WithBearerToken("test-token").
		Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	transport, ok := client.Transport.(*BearerTransport)
	if !ok {
		t.Fatalf("expected *BearerTransport, got %T", client.Transport)
	}

	if transport.Base != http.RoundTripper(customTransport) {
		t.Error("bearer transport should wrap the custom base transport")
	}
}

func TestBuilder_WithoutRedirects(t *testing.T) {
	client, err := NewBuilder().WithoutRedirects().Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if client.CheckRedirect == nil {
		t.Fatal("CheckRedirect should be set when redirects are disabled")
	}

	if err := client.CheckRedirect(nil, nil); err != http.ErrUseLastResponse {
		t.Errorf("expected ErrUseLastResponse, got %v", err)
	}
}

func TestBuilder_DefaultTLSMinVersion(t *testing.T) {
	client, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	transport, ok := client.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("expected *http.Transport, got %T", client.Transport)
	}

	if transport.TLSClientConfig == nil || transport.TLSClientConfig.MinVersion < tls.VersionTLS12 {
		t.Error("TLS 1.2 minimum should be set by default")
	}
}

func TestNewHTTPClient(t *testing.T) {
	client := NewHTTPClient("test-token")

	if client == nil {
		t.Fatal("client should not be nil")
	}

	transport, ok := client.Transport.(*BearerTransport)
	if !ok {
		t.Fatalf("expected *BearerTransport, got %T", client.Transport)
	}

	if transport.Token != "test-token" {
		t.Errorf("unexpected token: %q", transport.Token)
	}

	if client.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", client.Timeout)
	}
}
