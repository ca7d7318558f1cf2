// api/http_client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/maypok86/otter/v2"

	"amenities-dashboard/logging"
)

// StatusError is returned for non 2xx responses.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return "unexpected status code: " + e.Status
}

func retryable(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string

	attempts uint
	delay    time.Duration
	cache    *otter.Cache[string, []byte]
}

const DEFAULT_RETRY_DELAY = time.Second

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithUserAgent sets the User-Agent sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *HTTPClient) { c.UserAgent = ua }
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPClient) { c.HTTPClient.Timeout = timeout }
}

// WithRetry retries transport errors, 429 and 5xx responses.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(c *HTTPClient) {
		if attempts == 0 {
			attempts = 1
		}
		c.attempts = attempts
		c.delay = delay
	}
}

// WithResponseCache keeps successful GET bodies for ttl.
func WithResponseCache(ttl time.Duration, size int) Option {
	return func(c *HTTPClient) {
		if ttl <= 0 || size <= 0 {
			c.cache = nil
			return
		}
		c.cache = otter.Must(&otter.Options[string, []byte]{
			MaximumSize:      size,
			ExpiryCalculator: otter.ExpiryWriting[string, []byte](ttl),
		})
	}
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		attempts: 1,
		delay:    DEFAULT_RETRY_DELAY,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request makes an HTTP request to the API and decodes the response
func (c *HTTPClient) Request(ctx context.Context, method, endpoint string, headers map[string]string, body interface{}, response interface{}) error {
	var requestBody []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		requestBody = jsonBody
	}

	url := c.BaseURL + endpoint
	cacheable := c.cache != nil && method == http.MethodGet
	if cacheable {
		if cached, ok := c.cache.GetIfPresent(url); ok {
			return decode(cached, response)
		}
	}

	logger := logging.FromContext(ctx)
	var resBody []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(requestBody))
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("Content-Type", "application/json")
			if c.UserAgent != "" {
				req.Header.Set("User-Agent", c.UserAgent)
			}
			for key, value := range headers {
				req.Header.Set(key, value)
			}

			res, err := c.HTTPClient.Do(req)
			if err != nil {
				return err
			}
			defer res.Body.Close()

			resBody, err = io.ReadAll(res.Body)
			if err != nil {
				return err
			}

			if res.StatusCode < 200 || res.StatusCode >= 300 {
				statusErr := &StatusError{Code: res.StatusCode, Status: res.Status}
				if retryable(res.StatusCode) {
					return statusErr
				}
				return retry.Unrecoverable(statusErr)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.MaxDelay(30*time.Second),
		retry.DelayType(retry.FullJitterBackoffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn().Err(err).Uint("attempt", n+1).Str("url", url).Msg("retrying HTTP request")
		}),
	)
	if err != nil {
		return err
	}

	if cacheable {
		c.cache.Set(url, resBody)
	}
	return decode(resBody, response)
}

func decode(body []byte, response interface{}) error {
	if response == nil {
		return nil
	}
	if err := json.Unmarshal(body, response); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
