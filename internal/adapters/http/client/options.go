package client

import (
	"net/http"
	"strings"
	"time"

	"github.com/fairpay/fairpay/pkg/logger"
)

// Default client settings.
const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 15 * time.Second
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the service root; a trailing slash is ignored.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u = strings.TrimRight(strings.TrimSpace(u), "/"); u != "" {
			c.baseURL = u
		}
	}
}

// WithTimeout bounds a single request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}
