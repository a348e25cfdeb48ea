package sonarr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const defaultTimeout = 30 * time.Second

// Client represents a Sonarr API client
type Client struct {
	baseURL    string
	apiKey     string
	legacy     bool
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Sonarr client
func NewClient(baseURL, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("sonarr URL is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("sonarr API key is required")
	}

	// Ensure baseURL doesn't have trailing slash
	if baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}

	options := &clientOptions{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		legacy:     options.legacy,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// apiPrefix returns the URL prefix for the targeted API version.
func (c *Client) apiPrefix() string {
	if c.legacy {
		return "/api"
	}
	return "/api/v3"
}

// doRequest performs an HTTP request with authentication
func (c *Client) doRequest(ctx context.Context, method, endpoint string, params url.Values, body any) ([]byte, error) {
	url := fmt.Sprintf("%s%s/%s", c.baseURL, c.apiPrefix(), endpoint)
	if len(params) > 0 {
		url += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, newAPIError(resp.StatusCode, respBody)
	}

	return respBody, nil
}

// newAPIError builds an APIError from a non-2xx response body. Sonarr
// reports errors either as {"message": "..."} or as a validation array;
// fall back to the HTTP status text when neither parses.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Message:    http.StatusText(statusCode),
		Body:       string(body),
	}

	var errBody struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &errBody); err == nil {
		if errBody.Message != "" {
			apiErr.Message = errBody.Message
		} else if errBody.Error != "" {
			apiErr.Message = errBody.Error
		}
	}

	return apiErr
}

// get performs a GET request and decodes the response into out.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	body, err := c.doRequest(ctx, http.MethodGet, endpoint, params, nil)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// post performs a POST request and decodes the response into out.
func (c *Client) post(ctx context.Context, endpoint string, reqBody, out any) error {
	body, err := c.doRequest(ctx, http.MethodPost, endpoint, nil, reqBody)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// put performs a PUT request and decodes the response into out.
func (c *Client) put(ctx context.Context, endpoint string, params url.Values, reqBody, out any) error {
	body, err := c.doRequest(ctx, http.MethodPut, endpoint, params, reqBody)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// del performs a DELETE request. Some editor endpoints take a JSON body
// on DELETE; reqBody may be nil. DELETE responses carry no body to echo.
func (c *Client) del(ctx context.Context, endpoint string, params url.Values, reqBody any) error {
	_, err := c.doRequest(ctx, http.MethodDelete, endpoint, params, reqBody)
	return err
}

func decode(body []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// Ping tests the connection to Sonarr
func (c *Client) Ping(ctx context.Context) error {
	if err := c.get(ctx, "system/status", nil, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrNoConnection, err)
	}
	return nil
}
