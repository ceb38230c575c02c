// Package model defines domain entities and data structures for the club API.
//
// The model package contains all struct definitions for domain objects,
// the resolved Session type, and error definitions. Models are used across
// all layers of the application.
//
// # Domain Entities
//
//   - Player: squad member with jersey number, position and two stat buckets
//   - Match: fixture with venue, past flag and an optional final score
//   - TrainingSession: scheduled training slot
//   - NewsArticle: club news item
//   - ChatMessage: append-only team chat entry with a server-assigned timestamp
//   - UserDocument: access-control metadata keyed by auth identity
//
// # Date Handling
//
// Date-like fields use DateValue, a tagged value that is either a raw form
// string or a resolved time. Conversion happens exactly once, at the write
// boundary, rather than by duck-typing wherever a date is consumed.
//
// # Errors
//
// HTTP errors follow RFC 9457 Problem Details via ProblemDetails and its
// constructors.
package model
