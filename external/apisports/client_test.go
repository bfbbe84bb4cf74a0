package apisports

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prasetyowira/footdata/internal/platform/logging"
	"github.com/prasetyowira/footdata/internal/platform/retry"
)

func fastRetry(maxAttempts int) retry.Config {
	return retry.Config{MaxAttempts: maxAttempts, InitialDelay: time.Millisecond, Multiplier: 2}
}

func newTestClient(t *testing.T, handler http.Handler, maxAttempts int) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Retry:   fastRetry(maxAttempts),
		Logger:  logging.NewNop(),
	})
	return client, server
}

func TestFetchLeagues_Success(t *testing.T) {
	t.Parallel()

	var gotKey atomic.Value
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey.Store(r.Header.Get("x-apisports-key"))
		if r.URL.Path != "/leagues" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("country") != "england" || r.URL.Query().Get("season") != "2023" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{
			"results": 1,
			"response": [
				{
					"league": {"id": 39, "name": "Premier League", "type": "League"},
					"country": {"name": "England", "code": "GB"},
					"seasons": [
						{"year": 2022, "start": "2022-08-05", "end": "2023-05-28", "current": false},
						{"year": 2023, "start": "2023-08-11", "end": "2024-05-19", "current": true}
					]
				}
			]
		}`))
	}), 3)

	entries, capture, err := client.FetchLeagues(context.Background(), "england", 2023)
	if err != nil {
		t.Fatalf("fetch leagues: %v", err)
	}
	if gotKey.Load() != "test-key" {
		t.Fatalf("expected api key header, got %v", gotKey.Load())
	}
	if len(entries) != 1 {
		t.Fatalf("unexpected entry count: %d", len(entries))
	}
	if entries[0].LeagueID != 39 {
		t.Fatalf("unexpected league id: %d", entries[0].LeagueID)
	}
	if len(entries[0].Seasons) != 2 {
		t.Fatalf("unexpected season count: %d", len(entries[0].Seasons))
	}
	if capture.Dataset != "leagues" {
		t.Fatalf("unexpected capture dataset: %s", capture.Dataset)
	}
	if capture.RecordCount != 1 {
		t.Fatalf("unexpected capture record count: %d", capture.RecordCount)
	}
	if capture.Params["country"] != "england" {
		t.Fatalf("unexpected capture params: %+v", capture.Params)
	}
}

func TestFetchLeagues_AuthFailureNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}), 5)

	_, _, err := client.FetchLeagues(context.Background(), "england", 2023)
	if !errors.Is(err, ErrAuthentication) {
		t.Fatalf("expected ErrAuthentication, got %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single attempt, got %d", calls.Load())
	}
}

func TestFetchFixtures_RateLimitRetriedThenSucceeds(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"results": 0, "response": []}`))
	}), 3)

	entries, _, err := client.FetchFixtures(context.Background(), 39, 2023)
	if err != nil {
		t.Fatalf("fetch fixtures: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
	if calls.Load() != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls.Load())
	}
}

func TestFetchFixtures_RateLimitExhausted(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}), 2)

	_, _, err := client.FetchFixtures(context.Background(), 39, 2023)
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls.Load())
	}
}

func TestFetchLeagues_MissingResponseField(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message": "not what you expected"}`))
	}), 3)

	_, _, err := client.FetchLeagues(context.Background(), "england", 2023)
	if !errors.Is(err, ErrResponseShape) {
		t.Fatalf("expected ErrResponseShape, got %v", err)
	}
}

func TestFetchLeagues_MalformedJSON(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response": [`))
	}), 3)

	_, _, err := client.FetchLeagues(context.Background(), "england", 2023)
	if !errors.Is(err, ErrResponseShape) {
		t.Fatalf("expected ErrResponseShape, got %v", err)
	}
}

func TestFetchFixtureByID_StringIDsTolerated(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") != "868549" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{
			"results": 1,
			"response": [
				{
					"fixture": {"id": "868549", "date": "2023-08-11T19:00:00+00:00", "status": {"long": "Match Finished"}},
					"league": {"id": "39", "name": "Premier League", "round": "Regular Season - 1"},
					"teams": {"home": {"id": 44, "name": "Burnley"}, "away": {"id": 50, "name": "Manchester City"}},
					"score": {"halftime": {"home": 0, "away": 2}, "fulltime": {"home": 0, "away": 3}}
				}
			]
		}`))
	}), 3)

	entries, _, err := client.FetchFixtureByID(context.Background(), 868549)
	if err != nil {
		t.Fatalf("fetch fixture by id: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("unexpected entry count: %d", len(entries))
	}
	if entries[0].MatchID != 868549 {
		t.Fatalf("unexpected fixture id: %d", entries[0].MatchID)
	}
	if entries[0].LeagueID != 39 {
		t.Fatalf("unexpected league id: %d", entries[0].LeagueID)
	}
}
