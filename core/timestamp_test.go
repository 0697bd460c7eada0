package core

import (
	"testing"
	"time"
)

func TestTimestampConvertsSecondsToRFC3339(t *testing.T) {
	ts := &Timestamp{Seconds: 1700000000}
	got := ts.RFC3339()
	want := time.Unix(1700000000, 0).UTC().Format(time.RFC3339)
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNilTimestampStaysAbsent(t *testing.T) {
	var ts *Timestamp
	if got := ts.RFC3339(); got != "" {
		t.Fatalf("expected absent timestamp to stay absent, got %q", got)
	}
}

func TestZeroTimestampStaysAbsent(t *testing.T) {
	ts := &Timestamp{}
	if got := ts.RFC3339(); got != "" {
		t.Fatalf("expected zero timestamp to stay absent, got %q", got)
	}
}

func TestFromTimeRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	ts := FromTime(now)
	if ts == nil {
		t.Fatalf("expected timestamp")
	}
	if got := ts.RFC3339(); got != now.Format(time.RFC3339) {
		t.Fatalf("expected %q, got %q", now.Format(time.RFC3339), got)
	}
}
