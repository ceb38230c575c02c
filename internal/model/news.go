package model

import "time"

// NewsArticle represents a club news item
type NewsArticle struct {
	ID       string    `json:"id,omitempty"`
	Title    string    `json:"title"`
	Summary  string    `json:"summary"`
	ImageURL string    `json:"imageUrl"`
	Date     DateValue `json:"date"`
}

// Validate checks article fields for admin writes
func (n *NewsArticle) Validate() []FieldError {
	var errs []FieldError
	if n.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	}
	if n.Date.IsZero() {
		errs = append(errs, FieldError{Field: "date", Message: "date is required"})
	}
	return errs
}

// DefaultNewsArticle returns the admin form defaults for a new article
func DefaultNewsArticle(now time.Time) NewsArticle {
	return NewsArticle{Date: NewDate(now)}
}
