package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-cytoscape/cyrest/internal/logger"
	cyerrors "github.com/go-cytoscape/cyrest/pkg/errors"
)

// DefaultBaseURL is where the application's REST service listens unless
// configured otherwise.
const DefaultBaseURL = "http://localhost:1234"

const apiVersion = "v1"

// Client performs JSON round-trips against the application's versioned REST
// base. It owns no retry or backoff policy.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// New creates a Client rooted at baseURL. A zero timeout leaves the
// transport's default in place; a nil logger disables request logging.
func New(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.WithComponent("client"),
	}
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	url := fmt.Sprintf("%s/%s/%s", c.baseURL, apiVersion, strings.TrimPrefix(path, "/"))

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.WithFields(map[string]any{"method": method, "url": url}).Debug("request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return cyerrors.NewRemoteError(method, path, 0, "", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return cyerrors.NewRemoteError(method, path, resp.StatusCode, "", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return cyerrors.NewRemoteError(method, path, resp.StatusCode, string(payload), nil)
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return cyerrors.NewRemoteError(method, path, resp.StatusCode, string(payload), fmt.Errorf("decode response: %w", err))
	}
	return nil
}
