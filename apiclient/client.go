package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AsmaaWasel/Dashboard/errors"
	"github.com/AsmaaWasel/Dashboard/logger"
	"go.uber.org/zap"
)

const (
	DefaultTimeout = 10 * time.Second

	// responses larger than this are not read
	maxResponseSize = 4 << 20
)

// Credential is the bearer token of one signed-in dashboard user. It travels with
// every call instead of living in shared state.
type Credential string

func (c Credential) IsZero() bool {
	return strings.TrimSpace(string(c)) == ""
}

// Client talks to the admin API. No call is retried.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client) (*Client, error) {

	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}

	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q: scheme and host are required", baseURL)
	}

	return &Client{baseURL: parsed, http: httpClient}, nil
}

type remoteError struct {
	Error   errors.BaseError `json:"error"`
	Message string           `json:"message"`
}

type request struct {
	method     string
	path       string
	credential Credential
	query      url.Values
	body       any
}

func (c *Client) do(ctx context.Context, req request, out any) error {

	target := c.baseURL.JoinPath(req.path)
	if len(req.query) > 0 {
		target.RawQuery = req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {

		b, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}

		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target.String(), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if !req.credential.IsZero() {
		httpReq.Header.Set("Authorization", "Bearer "+string(req.credential))
	}

	log := logger.WithFields(
		zap.String("operation", "admin_api_request"),
		zap.String("method", req.method),
		zap.String("path", target.Path),
	)

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		log.Error("Admin API unreachable", zap.Error(err))
		return errors.RemoteUnreachableError.New()
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	log.Debug("Admin API responded",
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {

		message := remoteMessage(resp.StatusCode, respBody)
		log.Warn("Admin API request failed",
			zap.Int("status_code", resp.StatusCode),
			zap.String("message", message),
		)

		return errors.RemoteRequestFailedError.New(message)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response of %s %s: %w", req.method, target.Path, err)
	}

	return nil
}

// remoteMessage picks the text the admin API gave for a failure.
func remoteMessage(statusCode int, body []byte) string {

	var parsed remoteError
	if err := json.Unmarshal(body, &parsed); err == nil {

		if parsed.Message != "" {
			return parsed.Message
		}

		if parsed.Error.Message != "" {
			return parsed.Error.Message
		}
	}

	return fmt.Sprintf("Request failed with status %d", statusCode)
}
