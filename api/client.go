// Package api is a typed client for the RF Online REST API. All payloads are
// JSON over HTTP; authenticated endpoints carry an Authorization: Bearer
// header supplied by a TokenSource.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/rfonline/rfclient/internal/errors"
)

// TokenSource supplies the bearer token for authenticated calls. The session
// store implements it. A source without a token means "no session".
type TokenSource interface {
	Token() (string, bool)
}

// Client talks to the RF Online backend.
type Client struct {
	http     *resty.Client
	tokens   TokenSource
	validate *validator.Validate
}

// Option configures a Client.
type Option func(*Client)

// WithTokenSource wires the provider of bearer tokens for authenticated calls.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithTimeout caps every request at the transport level. Without it requests
// run on the transport's defaults; no application-level timeout is added.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.SetTimeout(d)
		}
	}
}

// SetTokenSource wires the token source after construction, for wirings
// where the source itself needs the client first.
func (c *Client) SetTokenSource(ts TokenSource) *Client {
	c.tokens = ts
	return c
}

func New(baseURL string, options ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Accept", "application/json"),
		validate: validator.New(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Error is a non-2xx response from a domain endpoint. Message carries the
// server-provided "mensaje" field when the body has one, so the caller has
// enough text to retry or correct input.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
}

// Is lets callers match not-found responses with errors.Is.
func (e *Error) Is(target error) bool {
	return target == errors.ErrNotFound && e.StatusCode == http.StatusNotFound
}

func errorFromResponse(resp *resty.Response) error {
	msg := gjson.GetBytes(resp.Body(), "mensaje").String()
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}
	return &Error{StatusCode: resp.StatusCode(), Message: msg}
}

// authed builds a request carrying the current bearer token.
func (c *Client) authed(ctx context.Context) (*resty.Request, error) {
	if c.tokens == nil {
		return nil, errors.ErrNoSession
	}
	tok, ok := c.tokens.Token()
	if !ok {
		return nil, errors.ErrNoSession
	}
	return c.http.R().SetContext(ctx).SetAuthToken(tok), nil
}

func (c *Client) anonymous(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx)
}
