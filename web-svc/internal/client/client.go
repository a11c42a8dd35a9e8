package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	APIURL  string
	AuthURL string
}

// Client builds outbound requests against the remote food-ordering API,
// forwarding the caller's session cookies and normalizing responses.
type Client struct {
	config Config
	client HTTPClient
}

func New(config Config, httpClient HTTPClient) *Client {
	return &Client{
		config: config,
		client: httpClient,
	}
}

// APIError is a non-2xx response from the backend. Detail carries the parsed
// body, or the raw text when the backend returned something that isn't JSON.
type APIError struct {
	Op     string
	Status int
	Detail any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s failed (HTTP %d)", e.Op, e.Status)
}

type ctxKey int

const cookieCtxKey ctxKey = iota

// WithCookies attaches the inbound request's cookie header to the context so
// every proxy call made on behalf of that request forwards it.
func WithCookies(ctx context.Context, header string) context.Context {
	return context.WithValue(ctx, cookieCtxKey, header)
}

func CookieHeader(ctx context.Context) string {
	header, _ := ctx.Value(cookieCtxKey).(string)
	return header
}

// CookieHeaderFromRequest joins the inbound cookies into a single
// "name=value; name2=value2" header value.
func CookieHeaderFromRequest(r *http.Request) string {
	cookies := r.Cookies()
	pairs := make([]string, 0, len(cookies))
	for _, c := range cookies {
		pairs = append(pairs, c.Name+"="+c.Value)
	}
	return strings.Join(pairs, "; ")
}

func (c *Client) apiURL(path string, query url.Values) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	target := c.config.APIURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}

func (c *Client) authURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.config.AuthURL + path
}

// doJSON performs one request and returns the raw body on 2xx. Non-2xx
// statuses become an *APIError; transport failures are wrapped once and never
// retried.
func (c *Client) doJSON(ctx context.Context, op, method, target string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie := CookieHeader(ctx); cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Op: op, Status: resp.StatusCode, Detail: parsePayload(raw)}
	}

	return raw, nil
}

// parsePayload reads the body defensively: JSON when it parses, raw text when
// the backend returned an error page or an empty body.
func parsePayload(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}

func decodeOne[T any](op string, raw json.RawMessage) (*T, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: empty response body", op)
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%s: malformed response: %w", op, err)
	}
	return &v, nil
}

// unwrapList tolerates the list envelopes seen from the backend: a bare array
// or an object wrapping it under data/items/results. Anything else yields an
// empty list rather than an error; the mismatch is logged for diagnosis.
func unwrapList[T any](op string, raw json.RawMessage) []T {
	if len(raw) == 0 {
		return []T{}
	}

	var direct []T
	if err := json.Unmarshal(raw, &direct); err == nil {
		return direct
	}

	var envelope struct {
		Data    []T `json:"data"`
		Items   []T `json:"items"`
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		switch {
		case envelope.Data != nil:
			return envelope.Data
		case envelope.Items != nil:
			return envelope.Items
		case envelope.Results != nil:
			return envelope.Results
		}
	}

	log.Printf("WARNING: %s: unrecognized list payload shape", op)
	return []T{}
}
