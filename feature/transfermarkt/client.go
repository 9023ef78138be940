package transfermarkt

import (
	"context"
	"fmt"
	"time"

	"championship-pipeline/core/config"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client fetches Transfermarkt pages with a polite delay between requests.
type Client struct {
	http  *resty.Client
	delay time.Duration
	log   *zap.Logger
}

// NewClient builds a Transfermarkt HTTP client from pipeline configuration.
func NewClient(cfg config.Pipeline, log *zap.Logger) *Client {
	http := resty.New().
		SetTimeout(time.Duration(cfg.RequestTimeoutSeconds) * time.Second).
		SetHeader("User-Agent", cfg.UserAgent)
	return &Client{
		http:  http,
		delay: time.Duration(cfg.RequestDelaySeconds) * time.Second,
		log:   log,
	}
}

// FetchHTML downloads one page and then waits the configured delay, so a
// sequence of calls never hammers the site.
func (c *Client) FetchHTML(ctx context.Context, url string) (string, error) {
	c.log.Info("fetching page", zap.String("url", url))

	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetch %s: status %s", url, resp.Status())
	}

	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return resp.String(), nil
}
