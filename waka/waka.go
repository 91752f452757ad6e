// Package waka fetches daily coding activity from the WakaTime API.
package waka

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/ayoisaiah/pulse/internal/timeutil"
	"github.com/ayoisaiah/pulse/snapshot"
)

const (
	baseURL = "https://wakatime.com/api/v1"

	// mergeThreshold is the idle gap above which consecutive heartbeats
	// belong to separate coding sessions.
	mergeThreshold = 300 * time.Second

	requestTimeout = 30 * time.Second
)

// Client is a WakaTime API client.
type Client struct {
	authHeader string
	baseURL    string
	client     *http.Client
}

type summariesResponse struct {
	Data []struct {
		GrandTotal struct {
			TotalSeconds float64 `json:"total_seconds"`
		} `json:"grand_total"`
		Languages []struct {
			Name         string  `json:"name"`
			TotalSeconds float64 `json:"total_seconds"`
		} `json:"languages"`
		Range struct {
			Date string `json:"date"`
		} `json:"range"`
	} `json:"data"`
}

type heartbeatsResponse struct {
	Data []heartbeat `json:"data"`
}

type heartbeat struct {
	Time float64 `json:"time"`
}

// NewClient returns a WakaTime client authenticating with the given API
// key. WakaTime expects the key base64-encoded in a Basic auth header.
func NewClient(apiKey string) *Client {
	encoded := base64.StdEncoding.EncodeToString([]byte(apiKey))

	return &Client{
		authHeader: "Basic " + encoded,
		baseURL:    baseURL,
		client:     &http.Client{Timeout: requestTimeout},
	}
}

// Snapshot fetches the raw activity payload for a single calendar date.
// Language totals come from the summaries endpoint and session spans
// from merged heartbeats. A heartbeat fetch failure is not fatal: the
// snapshot is returned without session spans, which downstream stages
// treat as "sub-day granularity unknown".
func (c *Client) Snapshot(
	ctx context.Context,
	date time.Time,
) (*snapshot.Raw, error) {
	day := date.Format(timeutil.KeyFormat)

	params := url.Values{}
	params.Set("start", day)
	params.Set("end", day)

	var summaries summariesResponse

	err := c.get(ctx, "users/current/summaries", params, &summaries)
	if err != nil {
		return nil, err
	}

	if len(summaries.Data) == 0 {
		return nil, fmt.Errorf("wakatime returned no summary for %s", day)
	}

	summary := summaries.Data[0]

	raw := &snapshot.Raw{
		Date: summary.Range.Date,
	}
	raw.GrandTotal.TotalSeconds = summary.GrandTotal.TotalSeconds

	for _, lang := range summary.Languages {
		raw.Languages = append(raw.Languages, snapshot.Language{
			Name:         lang.Name,
			TotalSeconds: lang.TotalSeconds,
		})
	}

	beats, err := c.heartbeats(ctx, day)
	if err == nil {
		raw.Sessions = mergeSessions(beats, date.Location())
	}

	return raw, nil
}

func (c *Client) heartbeats(
	ctx context.Context,
	day string,
) ([]heartbeat, error) {
	params := url.Values{}
	params.Set("date", day)

	var resp heartbeatsResponse

	err := c.get(ctx, "users/current/heartbeats", params, &resp)
	if err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// mergeSessions folds heartbeats into coding sessions: consecutive
// beats within the merge threshold extend the current session, a larger
// gap starts a new one.
func mergeSessions(
	beats []heartbeat,
	loc *time.Location,
) []snapshot.Session {
	if len(beats) == 0 {
		return nil
	}

	sort.Slice(beats, func(i, j int) bool {
		return beats[i].Time < beats[j].Time
	})

	toTime := func(unix float64) time.Time {
		sec := int64(unix)
		nsec := int64((unix - float64(sec)) * float64(time.Second))

		return time.Unix(sec, nsec).In(loc)
	}

	var sessions []snapshot.Session

	current := snapshot.Session{
		StartTime: toTime(beats[0].Time),
		EndTime:   toTime(beats[0].Time),
	}

	for _, beat := range beats[1:] {
		at := toTime(beat.Time)

		if at.Sub(current.EndTime) <= mergeThreshold {
			current.EndTime = at
			continue
		}

		sessions = append(sessions, current)
		current = snapshot.Session{StartTime: at, EndTime: at}
	}

	return append(sessions, current)
}

func (c *Client) get(
	ctx context.Context,
	endpoint string,
	params url.Values,
	out any,
) error {
	u := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", c.authHeader)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf(
			"wakatime request to %s failed with status %d",
			endpoint,
			resp.StatusCode,
		)
	}

	return json.Unmarshal(body, out)
}
