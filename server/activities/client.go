package activities

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

func New(cfg Config, httpClient *http.Client) *Client {
	limit := rate.Inf
	if cfg.Every > 0 {
		limit = rate.Every(cfg.Every.Std())
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, max(cfg.Burst, 1)),
	}
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func (c *Client) FetchActivities(ctx context.Context) (*Snapshot, error) {
	slog.DebugContext(ctx, "Fetching activities")

	rq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/activities", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	rq.Header.Set("Accept", "application/json")

	rs, err := c.do(rq)
	if err != nil {
		return nil, err
	}
	defer rs.Body.Close()

	if rs.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(rs.Body)
		slog.ErrorContext(ctx, "Failed to fetch activities", slog.Int("status_code", rs.StatusCode), slog.String("response", string(data)))
		return nil, fmt.Errorf("request failed with status code: %d", rs.StatusCode)
	}

	logBuf := new(bytes.Buffer)
	bodyReader := io.TeeReader(rs.Body, logBuf)

	snapshot := NewSnapshot()
	if err = json.NewDecoder(bodyReader).Decode(snapshot); err != nil {
		slog.ErrorContext(ctx, "Failed to decode activities", slog.String("response", logBuf.String()), slog.Any("error", err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	slog.DebugContext(ctx, "Fetched activities", slog.Int("count", snapshot.Len()))

	return snapshot, nil
}

func (c *Client) do(rq *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(rq.Context()); err != nil {
		return nil, fmt.Errorf("%w: failed to wait for rate limiter: %w", ErrUnreachable, err)
	}

	rs, err := c.httpClient.Do(rq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to send request: %w", ErrUnreachable, err)
	}
	return rs, nil
}
