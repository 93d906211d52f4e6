package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// HealthStatus is the probe response from GET /health. Unlike every other
// endpoint it is not wrapped in the {success, data} envelope.
type HealthStatus struct {
	Status   string         `json:"status"`
	Database DatabaseStatus `json:"database"`
}

// DatabaseStatus is the backend's own report of its database connection.
type DatabaseStatus struct {
	Status    string `json:"status"`
	Connected bool   `json:"connected"`
}

// OK reports whether the backend considers itself healthy.
func (h *HealthStatus) OK() bool {
	return h != nil && h.Status == "OK"
}

// Health probes the backend. A non-nil error means the probe could not
// complete; callers should treat that the same as a non-OK status.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	body, err := c.raw(ctx, http.MethodGet, "/health", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthStatus
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return &health, nil
}
