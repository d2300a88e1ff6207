// Package apiclient is a typed client for the users API, honoring a base
// URL and a path prefix.
package apiclient

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

	apperrors "github.com/vango-dev/vanext/internal/errors"
	"github.com/vango-dev/vanext/pkg/users"
)

// Client calls the users API.
type Client struct {
	baseURL string
	prefix  string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithPrefix sets a path prefix inserted between the base URL and every
// route, for APIs mounted below a gateway path.
func WithPrefix(prefix string) Option {
	return func(c *Client) {
		c.prefix = "/" + strings.Trim(prefix, "/")
		if c.prefix == "/" {
			c.prefix = ""
		}
	}
}

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New returns a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List returns all users.
func (c *Client) List(ctx context.Context) ([]users.User, error) {
	var out []users.User
	err := c.do(ctx, http.MethodGet, "/api/users", nil, nil, &out)
	return out, err
}

// Get returns one user. A missing user is a not-found *errors.Error.
func (c *Client) Get(ctx context.Context, id string) (users.User, error) {
	var out users.User
	err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(id), nil, nil, &out)
	return out, err
}

// Create creates a user.
func (c *Client) Create(ctx context.Context, in users.CreateUser) (users.User, error) {
	var out users.User
	err := c.do(ctx, http.MethodPost, "/api/users", nil, in, &out)
	return out, err
}

// Update applies a partial update.
func (c *Client) Update(ctx context.Context, id string, in users.UpdateUser) (users.User, error) {
	var out users.User
	err := c.do(ctx, http.MethodPut, "/api/users/"+url.PathEscape(id), nil, in, &out)
	return out, err
}

// Delete removes a user.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users", url.Values{"id": {id}}, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + c.prefix + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError turns an {"error": ...} body back into a tagged error.
func decodeError(resp *http.Response) error {
	var body struct {
		Error json.RawMessage `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	var msg string
	var issues []apperrors.Issue
	if err := json.Unmarshal(body.Error, &msg); err != nil {
		_ = json.Unmarshal(body.Error, &issues)
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.NotFound(msg)
	case resp.StatusCode == http.StatusBadRequest && len(issues) > 0:
		return apperrors.Validation(issues...)
	case resp.StatusCode == http.StatusBadRequest:
		return apperrors.Newf(apperrors.KindValidation, "%s", msg)
	default:
		return apperrors.Newf(apperrors.KindInternal, "%s", msg).
			Wrap(fmt.Errorf("status %d", resp.StatusCode))
	}
}
