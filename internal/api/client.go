// Package api is the HTTP client for the Library Service, the external
// system of record for all books, users, and transactions. Every call is
// synchronous and one-shot: no retries, no backoff, no caching. Transport
// and protocol failures are normalized into a small error taxonomy so
// callers can branch with errors.Is and render the right banner.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrUnavailable indicates the backend could not be reached at all.
	ErrUnavailable = errors.New("cannot reach the library service")

	// ErrTimeout indicates the backend did not answer within the request timeout.
	ErrTimeout = errors.New("library service request timed out")

	// ErrBadPayload indicates the backend answered but the body could not be
	// decoded into the expected shape.
	ErrBadPayload = errors.New("unexpected response payload")
)

// RequestError is returned when the backend answers with a non-success status
// or an envelope with success=false. Message carries the human-readable error
// extracted from the body, or a generic fallback.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("library service error (%d): %s", e.Status, e.Message)
}

// envelope is the {success, data, error} wrapper every Library Service
// response is expected to use. The optional fine notice only appears on
// return-book responses.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error,omitempty"`
	Fine    string          `json:"fine,omitempty"`
}

// Client issues requests against a configured Library Service base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL. The timeout bounds every
// request end to end.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured backend address, useful for error banners.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one request and decodes the response envelope. A nil envelope
// is never returned alongside a nil error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) (*envelope, error) {
	body, err := c.raw(ctx, method, path, query, payload)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		slog.Error("Failed to decode library service envelope", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	// A 2xx with success=false is still a failure for UI purposes.
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "request was not successful"
		}
		slog.Error("Library service reported failure", "method", method, "path", path, "error", msg)
		return nil, &RequestError{Status: http.StatusOK, Message: msg}
	}

	return &env, nil
}

// raw performs one request and returns the body of a successful response.
// Non-2xx statuses and transport failures are normalized into the package's
// error taxonomy.
func (c *Client) raw(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.transportError(method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("Failed to read library service response", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: reading body: %v", ErrBadPayload, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(body)
		slog.Error("Library service returned an error status",
			"method", method, "path", path, "status", resp.StatusCode, "error", msg, "body", string(body))
		return nil, &RequestError{Status: resp.StatusCode, Message: msg}
	}

	return body, nil
}

// transportError maps a failed round trip onto the error taxonomy: timeout,
// unreachable, or a generic wrapped error.
func (c *Client) transportError(method, path string, err error) error {
	var nerr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &nerr) && nerr.Timeout():
		slog.Error("Library service request timed out", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case isConnectionError(err):
		slog.Error("Cannot connect to library service", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		slog.Error("Library service request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("requesting %s %s: %w", method, path, err)
	}
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// errorMessage extracts the human-readable error from a response body,
// falling back to a generic message when the body carries none.
func errorMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
		return env.Error
	}
	return "Unknown error"
}

// decodeData unmarshals an envelope's data field into out.
func decodeData(env *envelope, out any) error {
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		slog.Error("Failed to decode library service data", "error", err)
		return fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return nil
}
