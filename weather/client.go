package weather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultFeedURL is the meteoclimatic per-station feed, formatted with the
// station reference.
const DefaultFeedURL = "http://meteoclimatic.net/feed/rss/%s"

// Client fetches station feeds.
type Client struct {
	httpClient *http.Client
	feedURL    string
}

// NewClient builds a Client. A nil httpClient gets a 15 second timeout; an
// empty feedURL uses DefaultFeedURL.
func NewClient(httpClient *http.Client, feedURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	return &Client{httpClient: httpClient, feedURL: feedURL}
}

// Fetch downloads and parses the current observation for a station.
func (c *Client) Fetch(ctx context.Context, stationRef string) (*Observation, error) {
	url := fmt.Sprintf(c.feedURL, stationRef)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching station %s: %w", stationRef, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching station %s: unexpected status %s", stationRef, resp.Status)
	}
	feed, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return ParseFeed(feed)
}
