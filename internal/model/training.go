package model

import "time"

// TrainingSession represents a scheduled training slot
type TrainingSession struct {
	ID       string    `json:"id,omitempty"`
	Date     DateValue `json:"date"`
	Focus    string    `json:"focus"`
	Location string    `json:"location"`
}

// Validate checks training fields for admin writes
func (t *TrainingSession) Validate() []FieldError {
	var errs []FieldError
	if t.Focus == "" {
		errs = append(errs, FieldError{Field: "focus", Message: "focus is required"})
	}
	if t.Date.IsZero() {
		errs = append(errs, FieldError{Field: "date", Message: "date is required"})
	}
	return errs
}

// DefaultTrainingSession returns the admin form defaults for a new session
func DefaultTrainingSession(now time.Time) TrainingSession {
	return TrainingSession{Date: NewDate(now)}
}
