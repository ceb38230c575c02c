package model

import "time"

// Venue represents where a match is played
type Venue string

const (
	VenueHome Venue = "Home"
	VenueAway Venue = "Away"
)

// IsValid returns true if the venue is a known value
func (v Venue) IsValid() bool {
	return v == VenueHome || v == VenueAway
}

// Score holds the final result of a played match
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Match represents a fixture. Score is only meaningful once IsPast is set;
// while IsPast is false any stored score is ignored.
type Match struct {
	ID       string    `json:"id,omitempty"`
	Opponent string    `json:"opponent"`
	Date     DateValue `json:"date"`
	Venue    Venue     `json:"venue"`
	IsPast   bool      `json:"isPast"`
	Score    *Score    `json:"score,omitempty"`
}

// Result returns the score, or nil for matches that have not been played
func (m *Match) Result() *Score {
	if !m.IsPast {
		return nil
	}
	return m.Score
}

// Published returns a copy for read endpoints, with the score gated by
// Result. The stored document keeps whatever score the admin form holds;
// an upcoming match must never expose it.
func (m *Match) Published() *Match {
	if m == nil {
		return nil
	}
	out := *m
	out.Score = m.Result()
	return &out
}

// Validate checks match fields for admin writes
func (m *Match) Validate() []FieldError {
	var errs []FieldError
	if m.Opponent == "" {
		errs = append(errs, FieldError{Field: "opponent", Message: "opponent is required"})
	}
	if !m.Venue.IsValid() {
		errs = append(errs, FieldError{Field: "venue", Message: "unknown venue"})
	}
	if m.Date.IsZero() {
		errs = append(errs, FieldError{Field: "date", Message: "date is required"})
	}
	return errs
}

// DefaultMatch returns the admin form defaults for a new match
func DefaultMatch(now time.Time) Match {
	return Match{
		Venue: VenueHome,
		Date:  NewDate(now),
		Score: &Score{},
	}
}
