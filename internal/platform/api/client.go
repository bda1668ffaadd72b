// Package api is the single gateway for backend calls. Every flow goes
// through Client so the bearer header, request ids, the 401 forced-logout
// rule, and the error taxonomy stay uniform.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	apperrors "studyhub/internal/platform/errors"
	"studyhub/internal/platform/id"
)

// CredentialSource supplies the bearer token and absorbs the one automatic
// recovery action in the system: a 401 forces a logout. An empty token with a
// nil error means "no session".
type CredentialSource interface {
	Token(ctx context.Context) (string, error)
	ForceLogout(ctx context.Context) error
}

type Client struct {
	baseURL string
	http    *http.Client
	creds   CredentialSource
	ids     id.Generator
	log     zerolog.Logger
}

func New(baseURL string, timeout time.Duration, creds CredentialSource, ids id.Generator, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
		ids:     ids,
		log:     log,
	}
}

type requestOptions struct {
	public bool
}

type Option func(*requestOptions)

// Public marks a request as unauthenticated (login, register). Everything
// else requires a stored token before any network I/O happens.
func Public() Option {
	return func(o *requestOptions) { o.public = true }
}

// DoJSON issues one request, exactly once, and decodes a 2xx body into out
// when out is non-nil.
func (c *Client) DoJSON(ctx context.Context, method, path string, body, out any, opts ...Option) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.send(req, out, opts...)
}

// DoMultipart issues a multipart POST. The content type is left to the
// multipart writer, never set by hand.
func (c *Client) DoMultipart(ctx context.Context, path string, form func(*multipart.Writer) error, out any, opts ...Option) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := form(writer); err != nil {
		return fmt.Errorf("build multipart form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart form: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.send(req, out, opts...)
}

func (c *Client) send(req *http.Request, out any, opts ...Option) error {
	options := requestOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	if !options.public {
		token, err := c.creds.Token(req.Context())
		if err != nil {
			return fmt.Errorf("load credentials: %w", err)
		}
		if token == "" {
			return apperrors.ErrUnauthenticated
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", c.ids.New())

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Str("method", req.Method).Str("path", req.URL.Path).Err(err).Msg("backend request failed")
		return fmt.Errorf("%w at %s (start the backend server, then retry): %v",
			apperrors.ErrBackendUnreachable, c.baseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("backend request")

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.creds.ForceLogout(req.Context()); err != nil {
			c.log.Warn().Err(err).Msg("clear credentials after 401")
		}
		return apperrors.ErrAuthExpired
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &apperrors.StatusError{StatusCode: resp.StatusCode, Detail: detailFrom(payload)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// detailFrom pulls the FastAPI-style {"detail": ...} text out of an error
// body. Non-JSON or detail-less bodies yield an empty string.
func detailFrom(payload []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(payload, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(body.Detail, &text); err == nil {
		return text
	}
	return string(body.Detail)
}
