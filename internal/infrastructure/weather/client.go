// Package weather fetches today's weather description from the external
// weather feed consumed at todo creation time.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 5 * time.Second

// Client implements ports.WeatherProvider against a feed that publishes one
// entry per calendar day: [{"date": "01-15", "weather": "Sunny"}, ...].
type Client struct {
	url  string
	http *http.Client
	now  func() time.Time
}

func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
		now:  time.Now,
	}
}

type weatherEntry struct {
	Date    string `json:"date"`
	Weather string `json:"weather"`
}

// TodayWeather returns the feed's entry for today's month-day.
func (c *Client) TodayWeather(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch weather: unexpected status %d", resp.StatusCode)
	}

	var entries []weatherEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return "", fmt.Errorf("decode weather feed: %w", err)
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("weather feed is empty")
	}

	today := c.now().UTC().Format("01-02")
	for _, e := range entries {
		if e.Date == today {
			return e.Weather, nil
		}
	}

	return "", fmt.Errorf("no weather entry for today (%s)", today)
}
