// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package api is the authenticated request executor for the monitoring
// backend. Every call reads the current token from the token store, maps
// failures onto a small error taxonomy and reports expired sessions through
// a hook, so views never deal with HTTP status codes themselves.
package api // import "github.com/secwatch/console/internal/api"

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
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/secwatch/console/internal/logging"
	"github.com/secwatch/console/internal/tokenstore"
	"golang.org/x/time/rate"
)

const apiPrefix = "/api/v1"

// Client executes requests against the backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      tokenstore.Store
	limiter    *rate.Limiter

	mu        sync.Mutex
	onExpired func()

	// expireMu serializes compare-and-clear so concurrent 401s for one
	// token fire the hook once.
	expireMu sync.Mutex
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithRateLimit caps outgoing requests per second across all callers.
// A limit of zero or less disables limiting.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// New returns a client for baseURL backed by store.
func New(baseURL string, store tokenstore.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		store:      store,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the backend root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// Store returns the token store the client reads from.
func (c *Client) Store() tokenstore.Store { return c.store }

// OnSessionExpired registers fn to run when a request carrying the stored
// token is answered with 401. It fires once per stored token: a later 401
// for the same token string, stored again by a new login, fires again.
func (c *Client) OnSessionExpired(fn func()) {
	c.mu.Lock()
	c.onExpired = fn
	c.mu.Unlock()
}

// Do sends a JSON request to path (relative to the API prefix) and decodes
// the response into out when out is non-nil and the body is not empty.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	contentType := "application/json"
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}
	return c.send(ctx, method, apiPrefix+path, query, reader, contentType, out, true)
}

// send is the single code path behind every request.
// authenticated=false marks the token-issuance call, whose 401 is a
// credential rejection rather than an expiry.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any, authenticated bool) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	var token string
	if authenticated {
		token, err = c.store.Get(ctx)
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &NetworkUnreachable{BaseURL: c.baseURL, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkUnreachable{BaseURL: c.baseURL, Err: err}
	}
	logging.Debugf("api: %s %s -> %d in %s", method, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized && authenticated {
		c.expire(ctx, token)
		return ErrSessionExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if detail := parseDetail(data); detail != "" {
			return &RequestRejected{Status: resp.StatusCode, Detail: detail}
		}
		return &RequestFailed{Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// expire clears the store only if it still holds the token that was
// rejected, so a stale poll cannot log out a newer session. A request sent
// without a token has no session to expire.
func (c *Client) expire(ctx context.Context, sent string) {
	if sent == "" || !c.clearIfCurrent(ctx, sent) {
		return
	}
	logging.Infof("api: session expired")
	c.mu.Lock()
	hook := c.onExpired
	c.mu.Unlock()
	if hook != nil {
		hook()
	}
}

// clearIfCurrent clears the store when it still holds sent and reports
// whether it did.
func (c *Client) clearIfCurrent(ctx context.Context, sent string) bool {
	c.expireMu.Lock()
	defer c.expireMu.Unlock()

	current, err := c.store.Get(ctx)
	if err != nil {
		logging.Warnf("api: could not read token after 401: %v", err)
		return false
	}
	if current != sent {
		return false
	}
	if err := c.store.Clear(ctx); err != nil {
		logging.Warnf("api: could not clear expired token: %v", err)
	}
	return true
}

// IsExpired reports whether err signals an expired session.
func IsExpired(err error) bool { return errors.Is(err, ErrSessionExpired) }
