package repository

import (
	"context"
	"time"

	"github.com/ffc/club/api/internal/database"
	"github.com/ffc/club/api/internal/model"
)

// MessageRepository handles chat message data access.
//
// Messages are append-only from the client's point of view; the only
// delete path is retention pruning of records that have fallen out of
// the window.
type MessageRepository struct {
	db database.Database
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db database.Database) *MessageRepository {
	return &MessageRepository{db: db}
}

// Window retrieves the most recent limit messages. Results come back
// newest first; callers re-sort ascending for display.
func (r *MessageRepository) Window(ctx context.Context, limit int) ([]*model.ChatMessage, error) {
	result, err := r.db.Query(ctx, `SELECT * FROM message ORDER BY timestamp DESC LIMIT $limit`, map[string]interface{}{
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}

	var messages []*model.ChatMessage
	err = decodeList(result, func(record interface{}) error {
		var m model.ChatMessage
		if err := decodeRecord(record, &m); err != nil {
			return err
		}
		messages = append(messages, &m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// Append inserts a new message with a server-assigned timestamp. Client
// clocks never touch the ordering field.
func (r *MessageRepository) Append(ctx context.Context, m *model.ChatMessage) error {
	query := `
		CREATE message CONTENT {
			text: $text,
			timestamp: time::now(),
			uid: $uid,
			displayName: $displayName,
			photoUrl: $photoUrl
		}
	`
	return r.db.Execute(ctx, query, map[string]interface{}{
		"text":        m.Text,
		"uid":         m.UID,
		"displayName": m.DisplayName,
		"photoUrl":    m.PhotoURL,
	})
}

// Prune deletes messages older than the cutoff
func (r *MessageRepository) Prune(ctx context.Context, before time.Time) error {
	return r.db.Execute(ctx, `DELETE message WHERE timestamp < $before`, map[string]interface{}{
		"before": before.UTC().Format(time.RFC3339Nano),
	})
}
