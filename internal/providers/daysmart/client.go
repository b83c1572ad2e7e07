package daysmart

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/samber/mo"

	"hockey-notify-service/internal/domain/schedule"
	"hockey-notify-service/internal/providers"
	"hockey-notify-service/internal/timeutil"
)

// Config controls how the DaySmart client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timezone   string
}

// Client fetches a team's schedule from DaySmart and maps it to domain games.
type Client struct {
	baseURL    string
	httpClient httpDoer
	loc        *time.Location
}

// NewClient constructs a DaySmart client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		loc:        resolveLocation(cfg.Timezone),
	}
}

// FetchSchedule retrieves the team document and maps its game events. Games
// come back in document order; callers pick from them explicitly.
func (c *Client) FetchSchedule(ctx context.Context, teamID, company string) ([]schedule.Game, error) {
	req, err := c.buildRequest(ctx, teamID, company)
	if err != nil {
		return nil, &providers.FetchError{Source: sourceName, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.FetchError{Source: sourceName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.FetchError{
			Source:     sourceName,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	var doc teamDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, &providers.ParseError{Source: sourceName, Err: err}
	}

	return mapDocument(doc), nil
}

// NextGame fetches the schedule and selects the next game inside the
// lookahead window. An empty window is a normal result, not an error.
func (c *Client) NextGame(ctx context.Context, teamID, company string, now time.Time) (mo.Option[schedule.Game], error) {
	games, err := c.FetchSchedule(ctx, teamID, company)
	if err != nil {
		return mo.None[schedule.Game](), err
	}
	return SelectNext(games, now), nil
}

// RenderMessage formats the game reminder in the client's configured timezone.
func (c *Client) RenderMessage(game schedule.Game) string {
	return renderMessage(game, c.loc)
}

// SelectNext returns the earliest game starting within [now, now+LookaheadDays].
// Ties keep the first match in document order (strict Before comparison).
func SelectNext(games []schedule.Game, now time.Time) mo.Option[schedule.Game] {
	window := lookaheadWindow(now)

	var best mo.Option[schedule.Game]
	for _, game := range games {
		if !window.Contains(game.StartUTC) {
			continue
		}
		if current, ok := best.Get(); !ok || game.StartUTC.Before(current.StartUTC) {
			best = mo.Some(game)
		}
	}
	return best
}

func lookaheadWindow(now time.Time) timeutil.Window {
	return timeutil.Lookahead(now, LookaheadDays)
}

func (c *Client) buildRequest(ctx context.Context, teamID, company string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/teams/"+teamID, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("cache[save]", "false")
	q.Set("include", includeParam)
	q.Set("company", company)
	req.URL.RawQuery = q.Encode()

	return req, nil
}
