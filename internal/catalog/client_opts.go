package catalog

import (
	"net/http"
	"time"
)

type ClientOpt func(*Client)

// WithTimeout bounds the whole request, including reading the body.
func WithTimeout(d time.Duration) ClientOpt {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithHTTPClient replaces the underlying http client.
func WithHTTPClient(hc *http.Client) ClientOpt {
	return func(c *Client) {
		c.http = hc
	}
}
