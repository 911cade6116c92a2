package database

import (
	"strings"
	"testing"
	"time"
)

func TestHistory(t *testing.T) {
	db, driver, err := Open("sqlite::memory:")
	if err != nil {
		t.Fatalf("Couldn't open database: %s", err)
	}
	defer db.Close()
	if err := Init(db, driver); err != nil {
		t.Fatalf("Couldn't make table: %s", err)
	}
	if err := Init(db, driver); err != nil {
		t.Fatalf("Making the table twice failed: %s", err)
	}
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, output := range []string{"[1]", "[2]", "[3]"} {
		run := NewRun(",.", 1, "[0]", output, start.Add(time.Duration(i)*time.Minute))
		if err := Record(db, driver, run); err != nil {
			t.Fatalf("Couldn't record run: %s", err)
		}
	}
	runs, err := Recent(db, driver, 2)
	if err != nil {
		t.Fatalf("Couldn't read runs: %s", err)
	}
	if len(runs) != 2 || runs[0].Output != "[3]" || runs[1].Output != "[2]" {
		t.Fatalf("Wanted the last two runs, latest first, got %v.", runs)
	}
	if !runs[0].Started.Equal(start.Add(2*time.Minute)) || runs[0].WindowSize != 1 || runs[0].Fingerprint != Fingerprint(",.") {
		t.Fatalf("Run didn't survive the round trip: %v.", runs[0])
	}
	if runs[0].ID == runs[1].ID {
		t.Fatalf("Two runs have the same id %s.", runs[0].ID)
	}
	if !strings.Contains(Describe(runs), "[0] → [3]") {
		t.Fatalf("Description doesn't show the run: %s", Describe(runs))
	}
}

func TestDescribeShortFingerprint(t *testing.T) {
	runs := []Run{{Fingerprint: "abc", Input: "[1]", Output: "[2]"}, {Input: "[3]", Output: "[4]"}}
	got := Describe(runs)
	if !strings.Contains(got, "'abc' [1] → [2]") || !strings.Contains(got, "'' [3] → [4]") {
		t.Fatalf("Description doesn't show the runs: %s", got)
	}
}

func TestOpenErrors(t *testing.T) {
	for _, spec := range []string{"sqlite", "sqlite:", "nosuchdb:foo"} {
		if _, _, err := Open(spec); err == nil {
			t.Fatalf("Wanted an error opening %q.", spec)
		}
	}
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{"postgres", "$1, $2, $3"},
		{"sqlserver", "@p1, @p2, @p3"},
		{"oracle", ":1, :2, :3"},
		{"mysql", "?, ?, ?"},
		{"sqlite", "?, ?, ?"},
	}
	for _, test := range tests {
		if got := placeholders(test.driver, 3); got != test.want {
			t.Fatalf("Placeholders for %s | Wanted : %s | Got : %s.", test.driver, test.want, got)
		}
	}
}

func TestFingerprint(t *testing.T) {
	if len(Fingerprint("")) != 64 || Fingerprint(",.") == Fingerprint(",,.") {
		t.Fatalf("Fingerprints should be distinct 64-digit hex strings.")
	}
}
