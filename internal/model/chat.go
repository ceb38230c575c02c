package model

import "time"

// ChatMessage is one entry in the team chat stream. Messages are created by
// append only, carry a server-assigned timestamp, and are never edited or
// deleted by clients.
type ChatMessage struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Timestamp   time.Time `json:"timestamp"`
	UID         string    `json:"uid"`
	DisplayName string    `json:"displayName"`
	PhotoURL    string    `json:"photoURL,omitempty"`
}
