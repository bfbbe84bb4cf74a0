package apisports

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/prasetyowira/footdata/internal/domain/rawdata"
	"github.com/prasetyowira/footdata/internal/platform/logging"
	"github.com/prasetyowira/footdata/internal/platform/retry"
	"github.com/prasetyowira/footdata/internal/usecase"
)

const (
	defaultBaseURL = "https://v3.football.api-sports.io"
	defaultTimeout = 30 * time.Second

	apiKeyHeader = "x-apisports-key"
)

// Failure kinds surfaced by the client. Rate limits and 5xx statuses
// are retried by the retry wrapper; authentication and payload-shape
// failures are not.
var (
	ErrAuthentication = crerr.New("apisports: authentication failed")
	ErrRateLimited    = crerr.New("apisports: rate limited")
	ErrBadResponse    = crerr.New("apisports: unexpected response status")
	ErrResponseShape  = crerr.New("apisports: malformed response payload")
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	Retry      retry.Config
	Logger     *logging.Logger
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	retryCfg   retry.Config
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	retryCfg := cfg.Retry
	if retryCfg.MaxAttempts == 0 {
		retryCfg = retry.DefaultConfig()
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		retryCfg:   retryCfg,
		logger:     logger,
	}
}

// FetchLeagues returns every league entry for a country and season.
func (c *Client) FetchLeagues(ctx context.Context, country string, season int) ([]usecase.ExternalLeague, rawdata.Capture, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return nil, rawdata.Capture{}, fmt.Errorf("country is required")
	}
	if season <= 0 {
		return nil, rawdata.Capture{}, fmt.Errorf("season must be greater than zero")
	}

	query := map[string]string{
		"country": country,
		"season":  strconv.Itoa(season),
	}

	var payload leaguesEnvelope
	raw, err := c.doJSON(ctx, "/leagues", query, &payload)
	if err != nil {
		return nil, rawdata.Capture{}, fmt.Errorf("fetch leagues country=%s season=%d: %w", country, season, err)
	}
	if payload.Response == nil {
		return nil, rawdata.Capture{}, crerr.Wrapf(ErrResponseShape, "missing response field for /leagues country=%s", country)
	}

	c.logger.InfoContext(ctx, "fetched leagues", "country", country, "season", season, "results", len(payload.Response))
	return mapLeagueEntries(payload.Response), buildCapture("leagues", query, len(payload.Response), raw), nil
}

// FetchFixtures returns every fixture entry for a league and season.
func (c *Client) FetchFixtures(ctx context.Context, leagueID, season int) ([]usecase.ExternalFixture, rawdata.Capture, error) {
	if leagueID <= 0 {
		return nil, rawdata.Capture{}, fmt.Errorf("league id must be greater than zero")
	}
	if season <= 0 {
		return nil, rawdata.Capture{}, fmt.Errorf("season must be greater than zero")
	}

	query := map[string]string{
		"league": strconv.Itoa(leagueID),
		"season": strconv.Itoa(season),
	}

	var payload fixturesEnvelope
	raw, err := c.doJSON(ctx, "/fixtures", query, &payload)
	if err != nil {
		return nil, rawdata.Capture{}, fmt.Errorf("fetch fixtures league=%d season=%d: %w", leagueID, season, err)
	}
	if payload.Response == nil {
		return nil, rawdata.Capture{}, crerr.Wrapf(ErrResponseShape, "missing response field for /fixtures league=%d", leagueID)
	}

	c.logger.InfoContext(ctx, "fetched fixtures", "league", leagueID, "season", season, "results", len(payload.Response))
	return mapFixtureEntries(payload.Response), buildCapture("fixtures", query, len(payload.Response), raw), nil
}

// FetchFixtureByID returns the fixture entry for a single fixture id.
func (c *Client) FetchFixtureByID(ctx context.Context, fixtureID int64) ([]usecase.ExternalFixture, rawdata.Capture, error) {
	if fixtureID <= 0 {
		return nil, rawdata.Capture{}, fmt.Errorf("fixture id must be greater than zero")
	}

	query := map[string]string{
		"id": strconv.FormatInt(fixtureID, 10),
	}

	var payload fixturesEnvelope
	raw, err := c.doJSON(ctx, "/fixtures", query, &payload)
	if err != nil {
		return nil, rawdata.Capture{}, fmt.Errorf("fetch fixture id=%d: %w", fixtureID, err)
	}
	if payload.Response == nil {
		return nil, rawdata.Capture{}, crerr.Wrapf(ErrResponseShape, "missing response field for /fixtures id=%d", fixtureID)
	}

	c.logger.InfoContext(ctx, "fetched fixture", "id", fixtureID, "results", len(payload.Response))
	return mapFixtureEntries(payload.Response), buildCapture("fixtures", query, len(payload.Response), raw), nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) ([]byte, error) {
	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	var raw []byte
	err := retry.Do(ctx, c.retryCfg, func(ctx context.Context) error {
		body, attemptErr := c.executeRequest(ctx, fullURL)
		if attemptErr != nil {
			c.logger.WarnContext(ctx, "apisports request attempt failed", "path", path, "params", values.Encode(), "error", attemptErr)
			return attemptErr
		}
		raw = body
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return nil, crerr.Wrapf(ErrResponseShape, "decode payload: %v", err)
	}

	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, retry.MarkRetryable(fmt.Errorf("send request: %s", sanitizeSensitiveText(err.Error(), c.apiKey)))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
	if err != nil {
		return nil, retry.MarkRetryable(fmt.Errorf("read response body: %v", err))
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return raw, nil
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, crerr.Wrapf(ErrAuthentication, "status=%d", resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, retry.MarkRetryable(crerr.Wrapf(ErrRateLimited, "status=%d", resp.StatusCode))
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, retry.MarkRetryable(crerr.Wrapf(ErrBadResponse, "status=%d body=%s", resp.StatusCode, abbreviateBody(raw)))
	default:
		return nil, crerr.Wrapf(ErrBadResponse, "status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
	}
}

func buildCapture(dataset string, query map[string]string, recordCount int, raw []byte) rawdata.Capture {
	params := make(map[string]string, len(query))
	for key, value := range query {
		params[key] = value
	}

	payload := make([]byte, len(raw))
	copy(payload, raw)

	return rawdata.Capture{
		Dataset:     dataset,
		CapturedAt:  time.Now().UTC(),
		Params:      params,
		RecordCount: recordCount,
		Payload:     payload,
	}
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if apiKey != "" {
		value = strings.ReplaceAll(value, apiKey, "REDACTED")
	}
	return value
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
