package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody bounds how much of a non-2xx response body is captured into a
// StatusError.
const maxErrorBody = 8 << 10

// Get requests url and decodes the JSON response body into T.
//
// The stored bearer token is attached by the transport. Failures are
// distinguishable via errors.As: transport errors wrap *url.Error, non-2xx
// statuses surface as *StatusError, and undecodable bodies as *DecodeError.
// None of them invalidate the client or its token.
//
// Get is a package-level function because Go methods cannot carry type
// parameters.
func Get[T any](ctx context.Context, c *AuthorizedClient, url string) (T, error) {
	var out T
	err := c.dispatch(ctx, http.MethodGet, url, nil, &out)
	return out, err
}

// Post JSON-encodes body, posts it to url with Content-Type
// application/json, and decodes the JSON response body into T.
//
// See Get for the error contract.
func Post[T any](ctx context.Context, c *AuthorizedClient, url string, body any) (T, error) {
	var out T
	err := c.dispatch(ctx, http.MethodPost, url, body, &out)
	return out, err
}

// PostDiscard JSON-encodes body and posts it to url, discarding the response
// body. Status and transport errors are still reported.
func (c *AuthorizedClient) PostDiscard(ctx context.Context, url string, body any) error {
	return c.dispatch(ctx, http.MethodPost, url, body, nil)
}

// Do sends a caller-built request through the underlying client. The bearer
// token is injected by the transport. The caller owns response handling and
// must close the body.
func (c *AuthorizedClient) Do(req *http.Request) (*http.Response, error) {
	return c.http.Do(req)
}

// dispatch performs one outbound call: build the request, send it through
// the bearer-injecting client, check the status, and decode the body into
// out when out is non-nil.
func (c *AuthorizedClient) dispatch(ctx context.Context, method, url string, body, out any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("authclient: encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return fmt.Errorf("authclient: build %s request: %w", method, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("authclient: %s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if c.logger != nil {
		c.logger.Printf("authclient: %s %s: status %d", method, url, resp.StatusCode)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, URL: url, Body: snippet}
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{URL: url, Err: err}
	}

	return nil
}
