// Package api is the HTTP client for the sourcing backend. It is the only
// place wire shapes are converted to model types: ids arrive as strings or
// numbers depending on the endpoint and leave this package as strings.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Shared endpoint paths. The base URL varies per environment; paths do not.
const (
	endpointBusinessModels     = "/api/business-models"
	endpointAllCompanies       = "/api/all-companies-linkedin-ids"
	endpointSearchLinkedInIDs  = "/api/search-linkedin-ids"
	endpointSavedSearches      = "/api/saved-searches"
	endpointEmployeeCountRange = "/api/employee-count-range"
	endpointLocations          = "/api/locations"
	endpointProcessAdvert      = "/api/process-advert"
	endpointPipelines          = "/api/pipelines"
)

// TokenSource supplies the bearer token for outgoing requests. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Options configures the client.
type Options struct {
	Timeout time.Duration
	Tokens  TokenSource
}

// Client talks to the sourcing backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts *Options) *Client {
	if opts == nil {
		opts = &Options{}
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     opts.Tokens,
	}
}

// doJSON performs a request with an optional JSON body and decodes a JSON
// response into out when out is non-nil. A 401 becomes *AuthError; any other
// non-2xx becomes *Error carrying the server's message when one is present.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Endpoint: path, Message: "failed to encode request body", Cause: err}
		}
		reqBody = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return &Error{Endpoint: path, Message: "failed to create request", Cause: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, path, out)
}

// send executes a prepared request, attaching the bearer token when present.
func (c *Client) send(req *http.Request, path string, out any) error {
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Endpoint: path, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return &AuthError{Endpoint: path}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{
			StatusCode: resp.StatusCode,
			Endpoint:   path,
			Message:    serverMessage(resp.Body, resp.Status),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Endpoint: path, Message: "failed to decode response", Cause: err}
	}
	return nil
}

// serverMessage extracts the backend's {"message": ...} error body, falling
// back to the HTTP status line.
func serverMessage(body io.Reader, status string) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fmt.Sprintf("unexpected status %s", status)
}
