package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ffc/club/api/internal/service"
)

// ChatRetention periodically prunes chat messages that have aged out of
// the window clients can see.
type ChatRetention struct {
	chatService *service.ChatService
	interval    time.Duration
	stopCh      chan struct{}
	wg          sync.WaitGroup
	running     bool
	mu          sync.Mutex
}

// NewChatRetention creates a new chat retention job
func NewChatRetention(chatService *service.ChatService, interval time.Duration) *ChatRetention {
	if interval == 0 {
		interval = time.Hour
	}
	return &ChatRetention{
		chatService: chatService,
		interval:    interval,
		stopCh:      make(chan struct{}),
	}
}

// Start begins the retention job
func (j *ChatRetention) Start() {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		return
	}
	j.running = true
	j.mu.Unlock()

	j.wg.Add(1)
	go j.run()
	slog.Info("chat retention job started", slog.Duration("interval", j.interval))
}

// Stop gracefully stops the retention job
func (j *ChatRetention) Stop() {
	j.mu.Lock()
	if !j.running {
		j.mu.Unlock()
		return
	}
	j.running = false
	j.mu.Unlock()

	close(j.stopCh)
	j.wg.Wait()
	slog.Info("chat retention job stopped")
}

// run is the main loop
func (j *ChatRetention) run() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.trim()
		case <-j.stopCh:
			return
		}
	}
}

func (j *ChatRetention) trim() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := j.chatService.TrimHistory(ctx); err != nil {
		slog.Error("chat retention prune failed", slog.String("error", err.Error()))
	}
}

// RunOnce runs the pruning once (for testing or manual trigger)
func (j *ChatRetention) RunOnce(ctx context.Context) error {
	return j.chatService.TrimHistory(ctx)
}

// IsRunning returns whether the job is running
func (j *ChatRetention) IsRunning() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}
