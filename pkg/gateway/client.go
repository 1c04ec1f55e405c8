package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TokenSource supplies the bearer credential for an outgoing request. An empty
// token sends the request unauthenticated.
type TokenSource interface {
	Token() string
}

type anonymous struct{}

func (anonymous) Token() string { return "" }

// Anonymous is the token source for requests made outside any session.
var Anonymous TokenSource = anonymous{}

// Client is the single egress point to the food-platform API. Every request
// goes through do, which attaches the bearer credential and maps upstream
// failures onto the gateway error taxonomy.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Get(ctx context.Context, path string, ts TokenSource, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, ts, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, ts TokenSource, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, ts, body, out)
}

func (c *Client) Put(ctx context.Context, path string, ts TokenSource, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, ts, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, ts TokenSource, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, ts, nil, out)
}

// Forward streams a request body upstream unchanged. Used for multipart
// passthrough (restaurant and menu images), where the storefront must not
// parse or rewrite the payload.
func (c *Client) Forward(ctx context.Context, method, path string, ts TokenSource, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return c.send(req, ts, out)
}

func (c *Client) do(ctx context.Context, method, path string, ts TokenSource, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, ts, out)
}

func (c *Client) send(req *http.Request, ts TokenSource, out interface{}) error {
	if token := ts.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	if resp.StatusCode >= 400 {
		return classify(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%w: decoding response: %v", ErrUpstream, err)
		}
	}
	return nil
}

// errorBody is the upstream error envelope; the API uses either a flat
// error/message pair or an errors array of per-field failures.
type errorBody struct {
	Error   string       `json:"error"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

func classify(status int, raw []byte) error {
	var body errorBody
	_ = json.Unmarshal(raw, &body)

	message := body.Message
	if message == "" {
		message = body.Error
	}
	if message == "" {
		message = http.StatusText(status)
	}

	apiErr := &APIError{Status: status, Message: message, Fields: body.Errors}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		apiErr.class = ErrUnauthorized
	case status == http.StatusNotFound:
		apiErr.class = ErrNotFound
	case len(body.Errors) > 0 || status == http.StatusUnprocessableEntity:
		apiErr.class = ErrValidation
	case status == http.StatusBadRequest:
		apiErr.class = ErrValidation
	default:
		apiErr.class = ErrUpstream
	}
	return apiErr
}
