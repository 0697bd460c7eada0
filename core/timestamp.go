package core

import "time"

// Timestamp is the structured seconds-since-epoch value the backends put on
// their wire shapes.
type Timestamp struct {
	Seconds int64 `json:"seconds"`
	Nanos   int32 `json:"nanos,omitempty"`
}

// RFC3339 converts a present timestamp to its public string form. A nil or
// zero timestamp yields the empty string: absent backend timestamps stay
// absent, the gateway does not substitute the current time.
func (t *Timestamp) RFC3339() string {
	if t == nil || (t.Seconds == 0 && t.Nanos == 0) {
		return ""
	}
	return time.Unix(t.Seconds, int64(t.Nanos)).UTC().Format(time.RFC3339)
}

// FromTime builds the backend wire value for a concrete instant.
func FromTime(instant time.Time) *Timestamp {
	if instant.IsZero() {
		return nil
	}
	return &Timestamp{
		Seconds: instant.Unix(),
		Nanos:   int32(instant.Nanosecond()),
	}
}
