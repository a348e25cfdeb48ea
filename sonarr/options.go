package sonarr

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout    time.Duration
	httpClient *http.Client
	legacy     bool
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client, replacing the default one.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithLegacyAPI targets the pre-v3 Sonarr API. This switches the URL
// prefix from /api/v3 to /api and makes the client use the old
// profileId field name instead of qualityProfileId.
func WithLegacyAPI() Option {
	return func(o *clientOptions) {
		o.legacy = true
	}
}
