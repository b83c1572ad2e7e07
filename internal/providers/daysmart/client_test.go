package daysmart

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"hockey-notify-service/internal/providers"
)

func newTestClient(rt roundTripperFunc) *Client {
	return NewClient(Config{
		BaseURL:    "http://daysmart.test/api/v1",
		HTTPClient: &http.Client{Transport: rt},
	})
}

func TestFetchScheduleBuildsRequestAndMaps(t *testing.T) {
	var captured *http.Request
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		captured = req
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(fixtureDocument)),
			Header:     make(http.Header),
		}, nil
	})

	games, err := client.FetchSchedule(context.Background(), "77", "kraken")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}

	if captured.URL.Path != "/api/v1/teams/77" {
		t.Errorf("path = %q", captured.URL.Path)
	}
	q := captured.URL.Query()
	if q.Get("company") != "kraken" {
		t.Errorf("company = %q", q.Get("company"))
	}
	if q.Get("cache[save]") != "false" {
		t.Errorf("cache[save] = %q", q.Get("cache[save]"))
	}
	if !strings.Contains(q.Get("include"), "events.homeTeam") {
		t.Errorf("include param looks wrong: %q", q.Get("include"))
	}
}

func TestFetchScheduleNonSuccessStatus(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("upstream broke")),
			Header:     make(http.Header),
		}, nil
	})

	_, err := client.FetchSchedule(context.Background(), "77", "kraken")
	fetchErr, ok := providers.AsFetchError(err)
	if !ok {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fetchErr.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d", fetchErr.StatusCode)
	}
}

func TestFetchScheduleTransportError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, err := client.FetchSchedule(context.Background(), "77", "kraken")
	if _, ok := providers.AsFetchError(err); !ok {
		t.Fatalf("expected FetchError, got %v", err)
	}
}

func TestFetchScheduleUndecodableBody(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("<html>not json</html>")),
			Header:     make(http.Header),
		}, nil
	})

	_, err := client.FetchSchedule(context.Background(), "77", "kraken")
	if _, ok := providers.AsParseError(err); !ok {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestNextGamePicksInsideWindow(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(fixtureDocument)),
			Header:     make(http.Header),
		}, nil
	})

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	next, err := client.NextGame(context.Background(), "77", "kraken", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	game, ok := next.Get()
	if !ok {
		t.Fatal("expected a game")
	}
	if game.ID != 100 {
		t.Errorf("expected game 100 (earliest), got %d", game.ID)
	}
}

func TestNextGamePropagatesFetchFailure(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("dns failure")
	})

	next, err := client.NextGame(context.Background(), "77", "kraken", time.Now())
	if err == nil {
		t.Fatal("expected error")
	}
	if next.IsPresent() {
		t.Error("option should be empty on failure")
	}
}
