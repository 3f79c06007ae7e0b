package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/1129kyoto/sitecontent/internal/config"
)

const (
	apiKeyHeader = "X-MICROCMS-API-KEY"

	defaultTimeout     = 30 * time.Second
	defaultMaxRetries  = 3
	initialRetryDelay  = 1 * time.Second
	maxRetryDelay      = 30 * time.Second
	retryBackoffFactor = 2
	maxErrorBodyBytes  = 4096
)

// Client talks to the headless CMS content API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
	logger     *zap.Logger
}

// NewClient creates a client for the API described by cfg.
func NewClient(cfg config.CMS, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: cfg.Endpoint(),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxRetries: maxRetries,
		retryDelay: initialRetryDelay,
		logger:     logger.Named("cms"),
	}
}

// ListQuery is passed through to the store's query language.
type ListQuery struct {
	Filters string // e.g. "category[contains]recommended"
	Orders  string // e.g. "sortOrder" or "-publishedAt"
	Limit   int
	Offset  int
	Fields  []string
}

// CategoryQuery selects the records tagged with category, in sortOrder.
func CategoryQuery(category string) ListQuery {
	return ListQuery{
		Filters: "category[contains]" + category,
		Orders:  "sortOrder",
	}
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Filters != "" {
		v.Set("filters", q.Filters)
	}
	if q.Orders != "" {
		v.Set("orders", q.Orders)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	if len(q.Fields) > 0 {
		v.Set("fields", strings.Join(q.Fields, ","))
	}
	return v
}

// ListResponse is the envelope of a list collection read.
type ListResponse[T any] struct {
	Contents   []T `json:"contents"`
	TotalCount int `json:"totalCount"`
	Offset     int `json:"offset"`
	Limit      int `json:"limit"`
}

// Put replaces the singleton record of collection.
func (c *Client) Put(ctx context.Context, collection string, payload any) error {
	return c.write(ctx, collection, "", payload)
}

// PutItem creates or replaces the record id of a list collection.
func (c *Client) PutItem(ctx context.Context, collection, id string, payload any) error {
	return c.write(ctx, collection, id, payload)
}

// Get decodes the singleton record of collection into out.
func (c *Client) Get(ctx context.Context, collection string, out any) error {
	return c.read(ctx, collection, c.endpoint(collection, ""), out)
}

// GetList decodes a filtered, ordered list read into out, usually a
// *ListResponse[T]. Filtering and ordering are done by the store.
func (c *Client) GetList(ctx context.Context, collection string, query ListQuery, out any) error {
	u := c.endpoint(collection, "")
	if qs := query.values().Encode(); qs != "" {
		u += "?" + qs
	}
	return c.read(ctx, collection, u, out)
}

func (c *Client) endpoint(collection, id string) string {
	u := c.baseURL + "/" + url.PathEscape(collection)
	if id != "" {
		u += "/" + url.PathEscape(id)
	}
	return u
}

func (c *Client) write(ctx context.Context, collection, id string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &WriteError{Collection: collection, ID: id, Err: fmt.Errorf("failed to encode payload: %w", err)}
	}

	target := c.endpoint(collection, id)
	var lastErr *WriteError

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.calculateRetryDelay(attempt)
			c.logger.Debug("retrying write",
				zap.String("collection", collection),
				zap.String("id", id),
				zap.Int("attempt", attempt+1),
				zap.Duration("delay", delay))
			select {
			case <-ctx.Done():
				return &WriteError{Collection: collection, ID: id, Err: ctx.Err()}
			case <-time.After(delay):
			}
		}

		status, respBody, err := c.doWrite(ctx, target, body)
		if err == nil {
			c.logger.Debug("write ok", zap.String("collection", collection), zap.String("id", id), zap.Int("status", status))
			return nil
		}
		lastErr = &WriteError{Collection: collection, ID: id, StatusCode: status, Body: respBody, Err: err}

		if ctx.Err() != nil || !isRetryableStatus(status) {
			return lastErr
		}
	}

	return lastErr
}

// doWrite returns a non-nil error for anything but a 2xx response.
func (c *Client) doWrite(ctx context.Context, target string, body []byte) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, bytes.NewReader(body))
	if err != nil {
		return 0, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text := readErrorBody(resp.Body)
		return resp.StatusCode, text, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, "", nil
}

func (c *Client) read(ctx context.Context, collection, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &ReadError{Collection: collection, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ReadError{Collection: collection, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ReadError{Collection: collection, StatusCode: resp.StatusCode, Body: readErrorBody(resp.Body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ReadError{Collection: collection, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

func (c *Client) calculateRetryDelay(attempt int) time.Duration {
	delay := c.retryDelay
	for i := 1; i < attempt; i++ {
		delay *= time.Duration(retryBackoffFactor)
	}
	if delay > maxRetryDelay {
		delay = maxRetryDelay
	}
	return delay
}

func readErrorBody(r io.Reader) string {
	body, _ := io.ReadAll(io.LimitReader(r, maxErrorBodyBytes))
	return strings.TrimSpace(string(body))
}
