package store

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/pulse/internal/record"
)

func TestNewClientWhenAlreadyRunning(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pulse.db")

	first, err := NewClient(dbPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defer first.Close()

	_, err = NewClient(dbPath)
	if !errors.Is(err, errPulseRunning) {
		t.Fatalf("expected the lock timeout to be reported, got: %v", err)
	}
}

func TestGetDailyDetectsMisfiledRecord(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pulse.db")

	client, err := NewClient(dbPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defer client.Close()

	rec := &record.Daily{
		Date:  time.Date(2024, time.November, 6, 0, 0, 0, 0, time.UTC),
		Total: time.Hour,
	}

	value, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}

	err = client.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(recordsBucket)).Put([]byte("2024-11-07"), value)
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = client.GetDaily(
		time.Date(2024, time.November, 7, 0, 0, 0, 0, time.UTC),
	)
	if !errors.Is(err, ErrMergeConflict) {
		t.Fatalf("expected ErrMergeConflict, got: %v", err)
	}
}
