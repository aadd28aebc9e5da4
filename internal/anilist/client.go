package anilist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultEndpoint is the public AniList GraphQL endpoint.
const DefaultEndpoint = "https://graphql.anilist.co/"

// ErrNoData marks a query that returned no usable payload (any non-200
// response). Callers distinguish it from transport failures with
// errors.Is.
var ErrNoData = errors.New("no data returned from query")

// Client talks to the AniList GraphQL API.
type Client struct {
	resty    *resty.Client
	endpoint string
	logger   *slog.Logger
}

// ClientConfig holds configuration for the AniList client.
type ClientConfig struct {
	Endpoint  string
	Timeout   time.Duration
	UserAgent string
	Logger    *slog.Logger
}

// DefaultClientConfig returns sensible defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Endpoint:  DefaultEndpoint,
		Timeout:   30 * time.Second,
		UserAgent: "anichart/1.0",
	}
}

// NewClient creates a new AniList client.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "anichart/1.0"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	restyClient := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		resty:    restyClient,
		endpoint: cfg.Endpoint,
		logger:   cfg.Logger,
	}
}

// graphqlRequest is the standard GraphQL POST body.
type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// mediaSeasonResponse is the GraphQL envelope for MediaSeasonQuery.
type mediaSeasonResponse struct {
	Data struct {
		Page struct {
			Media []Media `json:"media"`
		} `json:"Page"`
	} `json:"data"`
}

// MediaSeason fetches one page of seasonal media matching the filter.
// A non-200 response yields ErrNoData; transport failures are returned
// as-is with context.
func (c *Client) MediaSeason(ctx context.Context, filter SeasonFilter) ([]Media, error) {
	body := graphqlRequest{
		Query:     MediaSeasonQuery,
		Variables: filter.Variables(),
	}

	c.logger.Debug("querying AniList", "endpoint", c.endpoint, "variables", body.Variables)

	resp, err := c.resty.R().
		SetContext(ctx).
		SetBody(body).
		Post(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("graphql request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		c.logger.Warn("AniList returned non-200 status",
			"status", resp.StatusCode(),
			"body_length", len(resp.Body()),
		)
		return nil, ErrNoData
	}

	var envelope mediaSeasonResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	media := envelope.Data.Page.Media
	c.logger.Debug("AniList query successful", "media_count", len(media), "time", resp.Time())

	return media, nil
}
