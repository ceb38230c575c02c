package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Accepted layouts for raw date strings, in order of preference. These match
// what HTML date and datetime-local inputs produce, plus RFC 3339 for values
// that round-tripped through the gateway.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// DateValue is a date-like field that is either a raw string captured from a
// form, or a resolved time. Raw values are converted exactly once, at the
// write boundary, via Resolve; they are never duck-typed into comparisons.
type DateValue struct {
	raw      string
	t        time.Time
	resolved bool
}

// NewDate returns a resolved DateValue
func NewDate(t time.Time) DateValue {
	return DateValue{t: t, resolved: true}
}

// NewRawDate returns an unresolved DateValue holding a form string
func NewRawDate(s string) DateValue {
	return DateValue{raw: s}
}

// IsZero reports whether the value holds neither a raw string nor a time
func (d DateValue) IsZero() bool {
	return !d.resolved && strings.TrimSpace(d.raw) == ""
}

// Resolved reports whether the value already holds a concrete time
func (d DateValue) Resolved() bool {
	return d.resolved
}

// Resolve converts the value to a concrete time, parsing the raw string if
// needed. Resolving a zero value is an error.
func (d DateValue) Resolve() (time.Time, error) {
	if d.resolved {
		return d.t, nil
	}
	raw := strings.TrimSpace(d.raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date value")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date value %q", raw)
}

// Time returns the resolved time, or the zero time for unresolved values
func (d DateValue) Time() time.Time {
	if d.resolved {
		return d.t
	}
	if t, err := d.Resolve(); err == nil {
		return t
	}
	return time.Time{}
}

// Before reports whether d resolves to a time before other
func (d DateValue) Before(other DateValue) bool {
	return d.Time().Before(other.Time())
}

// MarshalJSON emits RFC 3339 for resolved values and the raw string otherwise
func (d DateValue) MarshalJSON() ([]byte, error) {
	if d.resolved {
		return json.Marshal(d.t.Format(time.RFC3339))
	}
	return json.Marshal(d.raw)
}

// UnmarshalJSON accepts any string; parsing is deferred to Resolve so that
// form input round-trips unchanged until the write boundary.
func (d *DateValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = NewDate(t)
			return nil
		}
	}
	*d = NewRawDate(s)
	return nil
}
