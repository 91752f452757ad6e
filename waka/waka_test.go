package waka

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

func TestMergeSessions(t *testing.T) {
	base := time.Date(2024, time.November, 6, 9, 0, 0, 0, time.UTC).Unix()

	testCases := []struct {
		Name     string
		Times    []float64
		Expected int
	}{
		{
			Name:     "no heartbeats",
			Times:    nil,
			Expected: 0,
		},
		{
			Name:     "single heartbeat",
			Times:    []float64{float64(base)},
			Expected: 1,
		},
		{
			Name: "heartbeats within threshold merge into one session",
			Times: []float64{
				float64(base),
				float64(base + 100),
				float64(base + 250),
			},
			Expected: 1,
		},
		{
			Name: "a gap above the threshold starts a new session",
			Times: []float64{
				float64(base),
				float64(base + 100),
				float64(base + 100 + 301),
			},
			Expected: 2,
		},
		{
			Name: "a gap of exactly the threshold still merges",
			Times: []float64{
				float64(base),
				float64(base + 300),
			},
			Expected: 1,
		},
		{
			Name: "unsorted heartbeats are sorted before merging",
			Times: []float64{
				float64(base + 100),
				float64(base),
				float64(base + 2000),
			},
			Expected: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			beats := make([]heartbeat, 0, len(tc.Times))

			for _, at := range tc.Times {
				beats = append(beats, heartbeat{Time: at})
			}

			sessions := mergeSessions(beats, time.UTC)

			if len(sessions) != tc.Expected {
				t.Fatalf(
					"expected %d sessions, got: %d",
					tc.Expected,
					len(sessions),
				)
			}

			for i := 1; i < len(sessions); i++ {
				if sessions[i].StartTime.Before(sessions[i-1].EndTime) {
					t.Error("sessions overlap or are out of order")
				}
			}
		})
	}
}

func TestSnapshot(t *testing.T) {
	base := time.Date(2024, time.November, 6, 9, 0, 0, 0, time.UTC).Unix()

	mux := http.NewServeMux()

	mux.HandleFunc(
		"/users/current/summaries",
		func(w http.ResponseWriter, r *http.Request) {
			if start := r.URL.Query().Get("start"); start != "2024-11-06" {
				t.Errorf("unexpected start param: %s", start)
			}

			_, _ = w.Write([]byte(`{
				"data": [{
					"grand_total": {"total_seconds": 9000},
					"languages": [
						{"name": "Go", "total_seconds": 5400},
						{"name": "Other", "total_seconds": 3600}
					],
					"range": {"date": "2024-11-06"}
				}]
			}`))
		},
	)

	mux.HandleFunc(
		"/users/current/heartbeats",
		func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{
				"data": [
					{"time": ` + formatUnix(base) + `},
					{"time": ` + formatUnix(base+120) + `},
					{"time": ` + formatUnix(base+5000) + `}
				]
			}`))
		},
	)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient("test-key")
	client.baseURL = srv.URL

	raw, err := client.Snapshot(
		context.Background(),
		time.Date(2024, time.November, 6, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if raw.Date != "2024-11-06" {
		t.Errorf("unexpected payload date: %s", raw.Date)
	}

	if raw.GrandTotal.TotalSeconds != 9000 {
		t.Errorf("unexpected grand total: %f", raw.GrandTotal.TotalSeconds)
	}

	if len(raw.Languages) != 2 {
		t.Fatalf("expected two languages, got: %d", len(raw.Languages))
	}

	if len(raw.Sessions) != 2 {
		t.Errorf("expected two merged sessions, got: %d", len(raw.Sessions))
	}
}

func TestSnapshotWithoutHeartbeats(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc(
		"/users/current/summaries",
		func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{
				"data": [{
					"grand_total": {"total_seconds": 3600},
					"languages": [{"name": "Go", "total_seconds": 3600}],
					"range": {"date": "2024-11-06"}
				}]
			}`))
		},
	)

	mux.HandleFunc(
		"/users/current/heartbeats",
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
	)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient("test-key")
	client.baseURL = srv.URL

	raw, err := client.Snapshot(
		context.Background(),
		time.Date(2024, time.November, 6, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("a heartbeat failure should not fail the snapshot: %v", err)
	}

	if raw.Sessions != nil {
		t.Errorf("expected no sessions, got: %+v", raw.Sessions)
	}
}

func formatUnix(v int64) string {
	return strconv.FormatInt(v, 10)
}
