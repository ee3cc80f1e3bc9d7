// Package iosavant fetches pitch-by-pitch data of one pitcher from the
// Baseball Savant statcast search CSV endpoint.
//
// Requests go through a token-bucket limiter shared by all goroutines that
// use the same Client. Throttled (429) and server-side failures are retried
// a few times with growing pauses.
package iosavant

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pitchwise/tjdelta/pkg/config"
	"github.com/pitchwise/tjdelta/pkg/sources"
	"golang.org/x/time/rate"
)

// maxBody limits the size of one response; a full season of a starter is
// a few megabytes.
const maxBody = 64 << 20

// Client is a rate-limited statcast client. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
	retries    int
	backoff    time.Duration
}

// New creates a Client from tracking settings.
func New(cfg config.TrackingConfig) *Client {
	limit := rate.Limit(cfg.RPS)
	if cfg.RPS <= 0 {
		limit = rate.Inf
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSec) * time.Second,
		},
		limiter:   rate.NewLimiter(limit, max(cfg.Burst, 1)),
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		retries:   cfg.Retries,
		backoff:   time.Second,
	}
}

// WithBackoff changes the pause unit between retries.
func (c *Client) WithBackoff(d time.Duration) *Client {
	c.backoff = d
	return c
}

// FetchEvents implements sources.Tracking.
func (c *Client) FetchEvents(
	ctx context.Context,
	trackingID int,
	start, end time.Time,
) ([]sources.PitchEvent, error) {
	u, err := c.searchURL(trackingID, start, end)
	if err != nil {
		return nil, RequestError(trackingID, err)
	}

	body, err := c.get(ctx, trackingID, u)
	if err != nil {
		return nil, err
	}
	if looksLikeHTML(body) {
		return nil, ParseError(trackingID, errors.New("got HTML instead of CSV"))
	}

	res, err := Parse(bytes.NewReader(body))
	if err != nil {
		return nil, ParseError(trackingID, err)
	}
	slog.Debug("Pitch events fetched",
		"player", trackingID,
		"start", start.Format(time.DateOnly),
		"end", end.Format(time.DateOnly),
		"pitches", len(res),
	)
	return res, nil
}

func (c *Client) searchURL(id int, start, end time.Time) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("all", "true")
	q.Set("type", "details")
	q.Set("player_type", "pitcher")
	q.Set("pitchers_lookup[]", strconv.Itoa(id))
	q.Set("game_date_gt", start.Format(time.DateOnly))
	q.Set("game_date_lt", end.Format(time.DateOnly))
	q.Set("hfGT", "R|PO|")
	q.Set("hfSea", "")
	q.Set("min_pitches", "0")
	q.Set("min_results", "0")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) get(ctx context.Context, id int, u string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			pause := time.Duration(attempt) * c.backoff
			timer := time.NewTimer(pause)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, RequestError(id, ctx.Err())
			case <-timer.C:
			}
		}

		body, transient, err := c.do(ctx, id, u)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !transient || ctx.Err() != nil {
			break
		}
		slog.Debug("Retrying pitch-tracking request",
			"player", id, "attempt", attempt+1, "error", err)
	}
	return nil, lastErr
}

// do sends one request. The bool result tells if a failed request is
// worth repeating.
func (c *Client) do(
	ctx context.Context,
	id int,
	u string,
) ([]byte, bool, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, false, RequestError(id, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, false, RequestError(id, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/csv")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, RequestError(id, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		return nil, true, RequestError(id, err)
	}
	if len(body) > maxBody {
		err = fmt.Errorf("response exceeds %d bytes", maxBody)
		return nil, false, RequestError(id, err)
	}

	if resp.StatusCode != http.StatusOK {
		err = StatusError(id, resp.StatusCode, abbreviate(body))
		return nil, retryable(resp.StatusCode), err
	}
	return body, false, nil
}

func retryable(code int) bool {
	return code == http.StatusTooManyRequests ||
		code >= http.StatusInternalServerError
}

func abbreviate(body []byte) string {
	b := bytes.TrimSpace(body)
	if len(b) > 200 {
		return string(b[:200]) + "..."
	}
	return string(b)
}
