// Package testutil provides shared helpers for pulse's tests.
package testutil

import (
	"runtime"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/sebdah/goldie/v2"
)

type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile verifies that the output of an operation matches
// the expected output.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == "windows" {
		// TODO: need to sort out line endings
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	output, golden := tc.Output()

	g.Assert(t, golden, output)
}

// Date is a shorthand for constructing a UTC calendar date in tests.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// IsolateEnv points pulse's file paths at throwaway names so tests
// never touch the user's real config or history.
func IsolateEnv(t *testing.T) {
	t.Helper()

	t.Setenv("PULSE_ENV", "test")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	xdg.Reload()
}
