package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ffc/club/api/internal/model"
	"github.com/google/uuid"
)

const (
	// DefaultHistoryLimit is the size of the chat window pushed to
	// subscribers.
	DefaultHistoryLimit = 50

	maxMessageLength = 2000

	// subscriberBuffer sizes each subscriber channel. A subscriber that
	// falls this far behind starts missing intermediate snapshots, which
	// is fine: every snapshot is complete, so only the latest matters.
	subscriberBuffer = 8
)

// MessageRepository defines the interface for chat message storage
type MessageRepository interface {
	Window(ctx context.Context, limit int) ([]*model.ChatMessage, error)
	Append(ctx context.Context, m *model.ChatMessage) error
	Prune(ctx context.Context, before time.Time) error
}

// Subscription is a live feed of chat snapshots. Each receive delivers
// the entire current window, not a delta.
type Subscription struct {
	ID string
	C  <-chan []*model.ChatMessage
}

// ChatService manages the club chat: an append-only message log with
// snapshot fan-out to connected subscribers.
//
// Anyone may subscribe; sending requires an authenticated session.
type ChatService struct {
	messageRepo  MessageRepository
	historyLimit int
	logger       *slog.Logger

	mu          sync.RWMutex
	subscribers map[string]chan []*model.ChatMessage
}

// NewChatService creates a new chat service
func NewChatService(messageRepo MessageRepository, historyLimit int, logger *slog.Logger) *ChatService {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatService{
		messageRepo:  messageRepo,
		historyLimit: historyLimit,
		logger:       logger,
		subscribers:  make(map[string]chan []*model.ChatMessage),
	}
}

// Snapshot returns the current chat window, oldest first
func (s *ChatService) Snapshot(ctx context.Context) ([]*model.ChatMessage, error) {
	messages, err := s.messageRepo.Window(ctx, s.historyLimit)
	if err != nil {
		return nil, err
	}
	// The window query returns newest first; display order is oldest
	// first. Resort rather than reverse so the contract holds even if
	// the store ever returns the window unordered.
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages, nil
}

// Subscribe registers a new snapshot feed and immediately queues the
// current window on it. Callers must Unsubscribe when done.
func (s *ChatService) Subscribe(ctx context.Context) (*Subscription, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	// Queue the initial snapshot before the subscriber is visible to
	// broadcast. A send racing this registration can then only enqueue
	// behind it, so the client never settles on a stale window.
	ch := make(chan []*model.ChatMessage, subscriberBuffer)
	ch <- snapshot

	id := uuid.New().String()
	s.mu.Lock()
	s.subscribers[id] = ch
	s.mu.Unlock()

	return &Subscription{ID: id, C: ch}, nil
}

// Unsubscribe drops a subscriber and closes its channel
func (s *ChatService) Unsubscribe(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ch, ok := s.subscribers[id]; ok {
		delete(s.subscribers, id)
		close(ch)
	}
}

// Send appends a message and pushes the rebuilt window to every
// subscriber. The timestamp is assigned by the gateway at write time,
// never taken from the client.
func (s *ChatService) Send(ctx context.Context, session *model.Session, text string) error {
	if session == nil || session.User == nil {
		return ErrChatSendRequiresAuth
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}
	if len(text) > maxMessageLength {
		return ErrMessageTooLong
	}

	msg := &model.ChatMessage{
		Text:        text,
		UID:         session.User.ID,
		DisplayName: session.User.DisplayName,
		PhotoURL:    session.User.PhotoURL,
	}
	if err := s.messageRepo.Append(ctx, msg); err != nil {
		return err
	}

	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}
	s.broadcast(snapshot)
	return nil
}

// TrimHistory deletes messages that have aged out of the window. Clients
// only ever see the window, so pruning is invisible to them; it just keeps
// the message collection bounded.
func (s *ChatService) TrimHistory(ctx context.Context) error {
	window, err := s.messageRepo.Window(ctx, s.historyLimit)
	if err != nil {
		return err
	}
	if len(window) < s.historyLimit {
		return nil
	}

	oldest := window[0].Timestamp
	for _, m := range window[1:] {
		if m.Timestamp.Before(oldest) {
			oldest = m.Timestamp
		}
	}
	return s.messageRepo.Prune(ctx, oldest)
}

// SubscriberCount reports the number of connected subscribers
func (s *ChatService) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}

func (s *ChatService) broadcast(snapshot []*model.ChatMessage) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id, ch := range s.subscribers {
		select {
		case ch <- snapshot:
		default:
			s.logger.Warn("chat subscriber lagging, snapshot dropped", "subscription_id", id)
		}
	}
}
