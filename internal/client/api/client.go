// Package api implements the HTTP transport for the Colegio de Profesionales
// backend: bearer-token injection, request correlation ids, the global 401
// observer, and one typed service per backend resource.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/colegioprofesionales/colegio-cli/internal/common"
	"github.com/colegioprofesionales/colegio-cli/internal/logging"
)

// TokenSource supplies the current bearer token. An empty string means no
// session; the request is then sent unauthenticated.
type TokenSource interface {
	Token() string
}

// Client is the shared HTTP core. Resource services hang off it so one
// configured transport serves every call site.
type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	log            logging.Logger
	onUnauthorized func()

	Usuarios       *UsuariosService
	Socios         *SociosService
	Planes         *PlanesService
	Membresias     *MembresiasService
	Pagos          *PagosService
	Notificaciones *NotificacionesService
	Dashboard      *DashboardService
}

type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client (tests, custom TLS).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger attaches a structured logger; a nop logger is not provided, so
// callers that skip this option get no transport logging.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l.With("component", "api") }
}

// WithUnauthorizedHandler registers the single observer invoked when any
// authenticated call comes back 401. The session store subscribes here.
func WithUnauthorizedHandler(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New builds a Client for the given base URL. tokens may be nil for a purely
// anonymous client (used by tests).
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Usuarios = &UsuariosService{client: c}
	c.Socios = &SociosService{client: c}
	c.Planes = &PlanesService{client: c}
	c.Membresias = &MembresiasService{client: c}
	c.Pagos = &PagosService{client: c}
	c.Notificaciones = &NotificacionesService{client: c}
	c.Dashboard = &DashboardService{client: c}
	return c
}

// do executes an authenticated JSON call; a 401 response triggers the
// unauthorized observer.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	return c.execute(ctx, method, path, body, out, false)
}

// doAnonymous executes a call on which a 401 must NOT trigger the global
// logout: login and the registration endpoints, which are reachable without
// a session. This is the client-side rendition of the "already on the login
// route" carve-out.
func (c *Client) doAnonymous(ctx context.Context, method, path string, body, out any) error {
	return c.execute(ctx, method, path, body, out, true)
}

func (c *Client) execute(ctx context.Context, method, path string, body, out any, anonymous bool) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set(common.AuthorizationHeaderName, "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if c.log != nil {
			c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		}
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, resp.Body)
		if !anonymous && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return common.ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		apiErr := decodeError(resp)
		if c.log != nil {
			c.log.Warn(ctx, "request rejected", "method", method, "path", path, "status", resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
