// Package repository implements the data access layer for the club API.
//
// Each repository struct handles the gateway operations for one collection:
// players, matches, news, training sessions, users, and chat messages.
// SurrealQL queries are used for all interactions, and results are parsed
// and mapped to model structs.
//
// Repositories accept a database.Database interface, allowing connection
// management at a higher level and easy testing with mock implementations.
//
// Collection ordering contracts:
//
//   - player: ordered by jersey number
//   - match: ordered by date descending
//   - news: ordered by date descending
//   - training: ordered by date ascending, filtered to date >= now for "next"
//   - user: unordered, keyed by email
//   - message: last N entries ordered by server-assigned timestamp
package repository
