// Package httpx is the REST transport shared by every module. It injects the
// bearer token from an explicit TokenSource, tags each call with a request id,
// and maps HTTP failures onto the application error taxonomy.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "cfdash/internal/platform/errors"
	"cfdash/internal/platform/requestid"
)

// TokenSource yields the current bearer credential, if any. The session
// module owns the implementation; the transport never touches storage itself.
type TokenSource interface {
	Token() (string, bool)
}

// Client wraps net/http with the cross-cutting rules of the backend contract.
// A 401/403 on any authenticated call invokes the auth-failure hook exactly
// once for that response, then surfaces ErrUnauthorized.
type Client struct {
	baseURL       string
	http          *http.Client
	tokens        TokenSource
	ids           requestid.Generator
	onAuthFailure func()
}

func New(baseURL string, timeout time.Duration, tokens TokenSource, onAuthFailure func()) *Client {
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		http:          &http.Client{Timeout: timeout},
		tokens:        tokens,
		ids:           requestid.UUID{},
		onAuthFailure: onAuthFailure,
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

func (c *Client) Patch(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPatch, path, in, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", c.ids.New())

	authenticated := false
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
			authenticated = true
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrTransient, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		if authenticated && c.onAuthFailure != nil {
			c.onAuthFailure()
		}
		return apperrors.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.ErrNotFound
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s", apperrors.ErrTransient, serverMessage(resp))
	case resp.StatusCode >= 400:
		return fmt.Errorf("request failed: %s", serverMessage(resp))
	}

	if out == nil {
		return nil
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// serverMessage pulls a human message out of an error body, preferring the
// backend's {message} then {error} fields.
func serverMessage(resp *http.Response) string {
	payload, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(payload) == 0 {
		return resp.Status
	}
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(payload, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	text := strings.TrimSpace(string(payload))
	if text != "" && !strings.HasPrefix(text, "{") {
		return text
	}
	return resp.Status
}
