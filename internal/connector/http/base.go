package http

import (
	"context"
)

// =============================================================================
// BASE HTTP CONNECTOR
// Provides common HTTP functionality for REST connectors.
// =============================================================================

// Base provides common HTTP connector functionality.
// Embed this in concrete connectors.
type Base struct {
	// Client is the HTTP client for making requests.
	Client *Client

	// ConnectorID is the unique identifier for this connector.
	ConnectorID string

	// ConnectorName is the display name.
	ConnectorName string

	// Vendor is the vendor name (e.g., "Salesforce").
	Vendor string

	// Version is the detected API version.
	Version string
}

// NewBase creates a new HTTP base with the given configuration.
func NewBase(id, name, vendor string, config *ClientConfig) *Base {
	return &Base{
		Client:        NewClient(config),
		ConnectorID:   id,
		ConnectorName: name,
		Vendor:        vendor,
	}
}

// ID returns the connector identifier.
func (b *Base) ID() string {
	return b.ConnectorID
}

// Close closes the HTTP client.
func (b *Base) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}

// FetchJSON fetches a JSON response and unmarshals it. The path may be
// relative to the client's base URL or an absolute reference URL.
func (b *Base) FetchJSON(ctx context.Context, path string, target any) error {
	resp, err := b.Client.Get(ctx, path, nil)
	if err != nil {
		return err
	}
	return resp.JSON(target)
}
