//go:build !windows

package simconnect

import "github.com/fsimtools/simratemon/internal/logger"

// Client is a stub on non-Windows platforms; SimConnect only exists on
// Windows, so Connect always fails and the polling loop stays in its retry
// state.
type Client struct {
	log logger.LoggerInterface
}

// NewClient creates a disconnected SimConnect client.
func NewClient(log logger.LoggerInterface) *Client {
	return &Client{log: log}
}

// Connect always fails off Windows.
func (c *Client) Connect() error {
	return ErrUnavailable
}

// SimRate always fails off Windows.
func (c *Client) SimRate() (float64, error) {
	return 0, ErrNotConnected
}

// SendEvent always fails off Windows.
func (c *Client) SendEvent(name string) error {
	return ErrNotConnected
}

// Close is a no-op.
func (c *Client) Close() {}
