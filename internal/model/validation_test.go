package model

import (
	"testing"
	"time"
)

// ============================================================================
// Player Tests
// ============================================================================

func TestPlayer_Validate_Valid(t *testing.T) {
	t.Parallel()

	p := &Player{
		Name:     "Jonas Weber",
		Position: PositionMidfielder,
		Number:   8,
		JoinDate: NewDate(time.Now()),
	}

	if errs := p.Validate(); len(errs) > 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestPlayer_Validate_MissingName(t *testing.T) {
	t.Parallel()

	p := &Player{Position: PositionForward}

	errs := p.Validate()
	if !hasFieldError(errs, "name") {
		t.Errorf("expected error for name, got %v", errs)
	}
}

func TestPlayer_Validate_UnknownPosition(t *testing.T) {
	t.Parallel()

	p := &Player{Name: "Jonas Weber", Position: Position("Sweeper")}

	errs := p.Validate()
	if !hasFieldError(errs, "position") {
		t.Errorf("expected error for position, got %v", errs)
	}
}

func TestPlayer_Validate_NegativeStats(t *testing.T) {
	t.Parallel()

	p := &Player{
		Name:     "Jonas Weber",
		Position: PositionDefender,
		Stats: PlayerStats{
			Season: StatLine{Goals: -1},
		},
	}

	errs := p.Validate()
	if !hasFieldError(errs, "stats.season") {
		t.Errorf("expected error for stats.season, got %v", errs)
	}
	if hasFieldError(errs, "stats.allTime") {
		t.Errorf("all-time stats are fine, got %v", errs)
	}
}

func TestPosition_IsValid(t *testing.T) {
	t.Parallel()

	valid := []Position{PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward}
	for _, pos := range valid {
		if !pos.IsValid() {
			t.Errorf("expected %q to be valid", pos)
		}
	}
	if Position("Striker").IsValid() {
		t.Error("expected unknown position to be invalid")
	}
	if Position("").IsValid() {
		t.Error("expected empty position to be invalid")
	}
}

func TestStatLine_GoalInvolvements(t *testing.T) {
	t.Parallel()

	s := StatLine{Goals: 7, Assists: 4}
	if got := s.GoalInvolvements(); got != 11 {
		t.Errorf("expected 11, got %d", got)
	}
}

func TestDefaultPlayer_FormDefaults(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := DefaultPlayer(now)

	if p.Position != PositionForward {
		t.Errorf("expected default position Forward, got %q", p.Position)
	}
	if p.JoinDate.IsZero() {
		t.Error("expected default join date to be set")
	}
}

// ============================================================================
// Match Tests
// ============================================================================

func TestMatch_Validate_Valid(t *testing.T) {
	t.Parallel()

	m := &Match{
		Opponent: "SV Hainbach",
		Venue:    VenueAway,
		Date:     NewDate(time.Now()),
	}

	if errs := m.Validate(); len(errs) > 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestMatch_Validate_MissingFields(t *testing.T) {
	t.Parallel()

	m := &Match{}

	errs := m.Validate()
	for _, field := range []string{"opponent", "venue", "date"} {
		if !hasFieldError(errs, field) {
			t.Errorf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestMatch_Result_UpcomingHasNoResult(t *testing.T) {
	t.Parallel()

	m := &Match{
		Opponent: "SV Hainbach",
		IsPast:   false,
		Score:    &Score{Home: 3, Away: 1},
	}

	if m.Result() != nil {
		t.Error("upcoming match should not expose a result even with a stored score")
	}

	m.IsPast = true
	result := m.Result()
	if result == nil || result.Home != 3 || result.Away != 1 {
		t.Errorf("expected 3:1 result, got %v", result)
	}
}

func TestMatch_Published_GatesStoredScore(t *testing.T) {
	t.Parallel()

	m := &Match{
		Opponent: "SV Hainbach",
		IsPast:   false,
		Score:    &Score{Home: 3, Away: 1},
	}

	pub := m.Published()
	if pub.Score != nil {
		t.Errorf("published upcoming match should carry no score, got %+v", pub.Score)
	}
	if m.Score == nil {
		t.Error("the stored match keeps its score")
	}

	m.IsPast = true
	if pub = m.Published(); pub.Score == nil || pub.Score.Home != 3 {
		t.Errorf("published past match should keep its score, got %+v", pub.Score)
	}

	var none *Match
	if none.Published() != nil {
		t.Error("publishing a nil match yields nil")
	}
}

func TestVenue_IsValid(t *testing.T) {
	t.Parallel()

	if !VenueHome.IsValid() || !VenueAway.IsValid() {
		t.Error("expected Home and Away to be valid")
	}
	if Venue("Neutral").IsValid() {
		t.Error("expected unknown venue to be invalid")
	}
}

// ============================================================================
// NewsArticle Tests
// ============================================================================

func TestNewsArticle_Validate(t *testing.T) {
	t.Parallel()

	n := &NewsArticle{Title: "Derby win", Date: NewDate(time.Now())}
	if errs := n.Validate(); len(errs) > 0 {
		t.Errorf("expected no errors, got %v", errs)
	}

	n = &NewsArticle{}
	errs := n.Validate()
	if !hasFieldError(errs, "title") {
		t.Errorf("expected error for title, got %v", errs)
	}
	if !hasFieldError(errs, "date") {
		t.Errorf("expected error for date, got %v", errs)
	}
}

// ============================================================================
// TrainingSession Tests
// ============================================================================

func TestTrainingSession_Validate(t *testing.T) {
	t.Parallel()

	s := &TrainingSession{Focus: "Pressing", Date: NewDate(time.Now())}
	if errs := s.Validate(); len(errs) > 0 {
		t.Errorf("expected no errors, got %v", errs)
	}

	s = &TrainingSession{}
	errs := s.Validate()
	if !hasFieldError(errs, "focus") {
		t.Errorf("expected error for focus, got %v", errs)
	}
	if !hasFieldError(errs, "date") {
		t.Errorf("expected error for date, got %v", errs)
	}
}

// ============================================================================
// UserDocument Tests
// ============================================================================

func TestUserDocument_Validate_RequiresEmail(t *testing.T) {
	t.Parallel()

	u := &UserDocument{Email: "anna@ffc.club"}
	if errs := u.Validate(); len(errs) > 0 {
		t.Errorf("expected no errors, got %v", errs)
	}

	u = &UserDocument{}
	if errs := u.Validate(); !hasFieldError(errs, "email") {
		t.Errorf("expected error for email, got %v", errs)
	}
}

func TestDefaultUserDocument_IsPlayer(t *testing.T) {
	t.Parallel()

	u := DefaultUserDocument()
	if !u.IsPlayer {
		t.Error("expected new user records to default to player")
	}
	if u.IsAdmin {
		t.Error("expected new user records to default to non-admin")
	}
}

func TestSession_Anonymous(t *testing.T) {
	t.Parallel()

	if !(Session{}).Anonymous() {
		t.Error("expected empty session to be anonymous")
	}
	s := Session{User: &UserDocument{Email: "anna@ffc.club"}}
	if s.Anonymous() {
		t.Error("expected session with user to not be anonymous")
	}
}

// hasFieldError reports whether errs contains an error for field
func hasFieldError(errs []FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}
