package ical

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"hockey-notify-service/internal/domain/schedule"
	"hockey-notify-service/internal/providers"
)

const defaultHTTPTimeout = 10 * time.Second

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches calendar feeds over HTTP.
type Client struct {
	httpClient httpDoer
	logger     *slog.Logger
}

// NewClient constructs a feed client. A nil http client gets a default with a
// conservative timeout.
func NewClient(httpClient *http.Client, logger *slog.Logger) *Client {
	var doer httpDoer
	if httpClient != nil {
		doer = httpClient
	} else {
		doer = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{httpClient: doer, logger: logger}
}

// Fetch retrieves and parses the feed at url, returning events in feed order.
func (c *Client) Fetch(ctx context.Context, url string) ([]schedule.CalendarEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &providers.FetchError{Source: sourceName, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.FetchError{Source: sourceName, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &providers.FetchError{Source: sourceName, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &providers.FetchError{
			Source:     sourceName,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", strings.TrimSpace(firstLine(string(body)))),
		}
	}

	return Parse(string(body), c.logger)
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
