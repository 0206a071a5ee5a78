package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/de-tools/sales-pulse/pkg/models/store"
	"github.com/rs/zerolog"
)

// Client talks to the analytics query endpoint: one POST per fetch cycle,
// carrying the date range and the ordered query list, answered with one
// columnar table per query.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

func NewClient(cfg *Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   cfg.Endpoint,
		token:      cfg.Token,
	}
}

func (c *Client) RunQueries(ctx context.Context, req store.QueryRequest) (*store.QueryResponse, error) {
	logger := zerolog.Ctx(ctx)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build query request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("analytics request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close analytics response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("analytics endpoint returned %d: %s", resp.StatusCode, payload)
	}

	var queryResp store.QueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&queryResp); err != nil {
		return nil, fmt.Errorf("failed to decode analytics response: %w", err)
	}

	logger.Debug().
		Int("tables", len(queryResp.Data)).
		Int("queries", len(req.Queries)).
		Msg("analytics queries completed")

	return &queryResp, nil
}
