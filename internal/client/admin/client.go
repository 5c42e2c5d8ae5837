// Package admin is the typed client of the catalog admin API. Every call carries the bearer
// token of its AuthContext; every response is decoded into an apicontract type and validated
// before it is returned. The client never retries.
package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
)

// loginEndpoint answers 401 for wrong credentials; that is an ordinary error, not an
// expired session.
const loginEndpoint = "admin/login"

// HTTPClient matches the subset of http.Client used by Client.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Client talks to /api/admin. It has no timeout of its own; bound calls through ctx.
type Client struct {
	base   *url.URL
	client HTTPClient
	auth   *AuthContext
}

// New builds a client for the API rooted at baseURL (for example http://localhost:8000/api).
func New(baseURL string, client HTTPClient, auth *AuthContext) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("admin: base URL is required")
	}
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("admin: parse base URL: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	if auth == nil {
		auth = NewAuthContext(nil, nil)
	}
	return &Client{base: parsed, client: client, auth: auth}, nil
}

// Auth returns the session the client sends with every call.
func (c *Client) Auth() *AuthContext { return c.auth }

// call sends one request and decodes a 2xx body into out, which may be nil.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && path != loginEndpoint {
		c.auth.HandleUnauthorized()
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ErrorFromResponse(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %v", apicontract.ErrInvalidContract, method, path, err)
	}
	return validateBody(out)
}

func (c *Client) callJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("admin: encode payload: %w", err)
		}
		body, contentType = &buf, "application/json"
	}
	return c.call(ctx, method, path, nil, body, contentType, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	ref := &url.URL{Path: strings.TrimPrefix(path, "/")}
	if len(query) > 0 {
		ref.RawQuery = query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base.ResolveReference(ref).String(), body)
	if err != nil {
		return nil, fmt.Errorf("admin: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token := c.auth.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// validateBody validates struct bodies and every element of slice bodies.
func validateBody(out any) error {
	switch v := out.(type) {
	case *[]apicontract.Category:
		for i := range *v {
			if err := apicontract.Validate(&(*v)[i]); err != nil {
				return err
			}
		}
		return nil
	case *[]string:
		return nil
	}
	return apicontract.Validate(out)
}

// ErrorFromResponse reads a non-2xx response into an HTTPError. The server's message is kept
// verbatim; a body that is not an error envelope becomes the detail as text.
func ErrorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	out := &HTTPError{Status: resp.StatusCode}
	var payload apicontract.ErrorBody
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		out.Code = payload.Error
		out.Detail = payload.Message
		return out
	}
	out.Detail = strings.TrimSpace(string(body))
	return out
}

// endpoint joins path segments; url.URL escapes them when the request URL is built.
func endpoint(segments ...string) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = strings.Trim(strings.TrimSpace(s), "/")
	}
	return strings.Join(parts, "/")
}
