// Package api talks to the review analysis service over HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/idilsaglam/reviews/internal/logging"
	"github.com/idilsaglam/reviews/internal/model"
)

const (
	userAgent       = "reviews-cli/0.1"
	maxResponseSize = 4 << 20

	reviewsPath = "/api/reviews"
	analyzePath = "/api/analyze-review"
	healthPath  = "/health"
)

// Options configures a Client.
type Options struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client implements the reload and analyze capabilities.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"),
		token:   strings.TrimSpace(opts.Token),
		http:    httpClient,
		logger:  logger,
	}
}

// ListReviews fetches the full collection, newest first. A null body is an empty collection.
func (c *Client) ListReviews(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := c.do(ctx, http.MethodGet, reviewsPath, nil, &items); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	if items == nil {
		return []model.Item{}, nil
	}
	for i := range items {
		items[i] = normalize(items[i])
	}
	return items, nil
}

// Analyze submits review text and returns the stored, analyzed record.
func (c *Client) Analyze(ctx context.Context, text string) (model.Item, error) {
	var item *model.Item
	payload := map[string]string{"text": text}
	if err := c.do(ctx, http.MethodPost, analyzePath, payload, &item); err != nil {
		return model.Item{}, fmt.Errorf("analyze review: %w", err)
	}
	if item == nil {
		return model.Item{}, errors.New("analyze review: empty response")
	}
	return normalize(*item), nil
}

// Health returns the status reported by the service health endpoint.
func (c *Client) Health(ctx context.Context) (string, error) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, healthPath, nil, &body); err != nil {
		return "", fmt.Errorf("health: %w", err)
	}
	return body.Status, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("api request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	c.logger.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newResponseError(resp.StatusCode, data)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func normalize(it model.Item) model.Item {
	it.Sentiment = model.ParseSentiment(string(it.Sentiment))
	it.Optimistic = false
	return it
}
