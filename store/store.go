// Package store connects to the data store and manages the activity
// history
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/pulse/internal/record"
	"github.com/ayoisaiah/pulse/internal/timeutil"
)

const recordsBucket = "records"

// DB is the interface for the history store. It is satisfied by the
// BoltDB client and by in-memory fakes in tests.
type DB interface {
	// UpdateDaily inserts or fully replaces the entry for the record's
	// date. Merging the same record twice leaves the store unchanged.
	UpdateDaily(rec *record.Daily) error
	// GetDaily returns the entry for the given date, or nil when the
	// date has no data.
	GetDaily(date time.Time) (*record.Daily, error)
	// GetRange returns the ordered-by-date records whose date falls in
	// the inclusive range. Missing dates are absent from the result,
	// never synthesized.
	GetRange(start, end time.Time) ([]record.Daily, error)
	Close() error
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) UpdateDaily(rec *record.Daily) error {
	key := timeutil.ToKey(rec.Date)

	value, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(recordsBucket)).Put(key, value)
	})
}

func (c *Client) GetDaily(date time.Time) (*record.Daily, error) {
	var rec *record.Daily

	key := timeutil.ToKey(date)

	err := c.View(func(tx *bolt.Tx) error {
		value := tx.Bucket([]byte(recordsBucket)).Get(key)
		if len(value) == 0 {
			return nil
		}

		rec = &record.Daily{}

		err := json.Unmarshal(value, rec)
		if err != nil {
			return err
		}

		return checkKey(key, rec)
	})
	if err != nil {
		return nil, err
	}

	return rec, nil
}

func (c *Client) GetRange(
	start, end time.Time,
) ([]record.Daily, error) {
	var records []record.Daily

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(recordsBucket)).Cursor()

		min := timeutil.ToKey(start)
		max := timeutil.ToKey(end)

		for k, v := cur.Seek(min); k != nil && bytes.Compare(k, max) <= 0; k, v = cur.Next() {
			var rec record.Daily

			err := json.Unmarshal(v, &rec)
			if err != nil {
				return err
			}

			err = checkKey(k, &rec)
			if err != nil {
				return err
			}

			records = append(records, rec)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// checkKey verifies that a stored record is filed under the key derived
// from its own date.
func checkKey(key []byte, rec *record.Daily) error {
	keyDate, err := timeutil.FromKey(key)
	if err != nil || !timeutil.SameDay(keyDate, rec.Date) {
		return ErrMergeConflict.Fmt(
			rec.Date.Format(timeutil.KeyFormat),
			string(key),
		)
	}

	return nil
}

// ZeroFill expands a range result so that every date in the inclusive
// range is present, synthesizing empty records for dates without data.
// Callers that must distinguish "no data" from "zero activity" should
// use the raw range instead.
func ZeroFill(
	records []record.Daily,
	start, end time.Time,
) []record.Daily {
	var filled []record.Daily

	i := 0

	for date := timeutil.RoundToStart(start); !date.After(end); date = date.AddDate(0, 0, 1) {
		if i < len(records) && timeutil.SameDay(records[i].Date, date) {
			filled = append(filled, records[i])
			i++

			continue
		}

		filled = append(filled, record.Daily{Date: date})
	}

	return filled
}

// open creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errPulseRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}
	// Create the necessary bucket for storing data if it does not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(recordsBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
