package model

import "time"

// Position represents a player's position on the pitch
type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionForward    Position = "Forward"
)

// IsValid returns true if the position is one of the four known values
func (p Position) IsValid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	}
	return false
}

// StatLine holds one bucket of counting stats. All values are non-negative.
type StatLine struct {
	Appearances int `json:"appearances"`
	Goals       int `json:"goals"`
	Assists     int `json:"assists"`
}

// GoalInvolvements returns goals plus assists
func (s StatLine) GoalInvolvements() int {
	return s.Goals + s.Assists
}

// PlayerStats holds the two independent stat buckets. Season and all-time
// are never derived from each other.
type PlayerStats struct {
	Season  StatLine `json:"season"`
	AllTime StatLine `json:"allTime"`
}

// Player represents a squad member
type Player struct {
	ID       string      `json:"id,omitempty"`
	Name     string      `json:"name"`
	Position Position    `json:"position"`
	Number   int         `json:"number"`
	ImageURL string      `json:"imageUrl"`
	JoinDate DateValue   `json:"joinDate"`
	Stats    PlayerStats `json:"stats"`
}

// Validate checks player fields for admin writes
func (p *Player) Validate() []FieldError {
	var errs []FieldError
	if p.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if !p.Position.IsValid() {
		errs = append(errs, FieldError{Field: "position", Message: "unknown position"})
	}
	if p.Number < 0 {
		errs = append(errs, FieldError{Field: "number", Message: "number must be non-negative"})
	}
	for _, line := range []struct {
		prefix string
		stats  StatLine
	}{
		{"stats.season", p.Stats.Season},
		{"stats.allTime", p.Stats.AllTime},
	} {
		if line.stats.Appearances < 0 || line.stats.Goals < 0 || line.stats.Assists < 0 {
			errs = append(errs, FieldError{Field: line.prefix, Message: "stats must be non-negative"})
		}
	}
	return errs
}

// DefaultPlayer returns the admin form defaults for a new player
func DefaultPlayer(now time.Time) Player {
	return Player{
		Position: PositionForward,
		JoinDate: NewDate(now),
	}
}
