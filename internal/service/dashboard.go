package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/ffc/club/api/internal/model"
)

// PlayerRepository defines the interface for player storage
type PlayerRepository interface {
	ListByNumber(ctx context.Context) ([]*model.Player, error)
	GetByID(ctx context.Context, id string) (*model.Player, error)
	Create(ctx context.Context, p *model.Player) error
	Update(ctx context.Context, p *model.Player) error
	Delete(ctx context.Context, id string) error
}

// MatchRepository defines the interface for match storage
type MatchRepository interface {
	ListByDateDesc(ctx context.Context) ([]*model.Match, error)
	GetByID(ctx context.Context, id string) (*model.Match, error)
	Create(ctx context.Context, m *model.Match) error
	Update(ctx context.Context, m *model.Match) error
	Delete(ctx context.Context, id string) error
}

// NewsRepository defines the interface for news storage
type NewsRepository interface {
	ListByDateDesc(ctx context.Context) ([]*model.NewsArticle, error)
	GetByID(ctx context.Context, id string) (*model.NewsArticle, error)
	Create(ctx context.Context, a *model.NewsArticle) error
	Update(ctx context.Context, a *model.NewsArticle) error
	Delete(ctx context.Context, id string) error
}

// TrainingRepository defines the interface for training session storage
type TrainingRepository interface {
	ListByDateAsc(ctx context.Context) ([]*model.TrainingSession, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]*model.TrainingSession, error)
	GetByID(ctx context.Context, id string) (*model.TrainingSession, error)
	Create(ctx context.Context, s *model.TrainingSession) error
	Update(ctx context.Context, s *model.TrainingSession) error
	Delete(ctx context.Context, id string) error
}

// DashboardService derives the home screen view from the content
// collections. Nothing here is stored: every field is recomputed from
// the current collections on each call.
type DashboardService struct {
	playerRepo   PlayerRepository
	matchRepo    MatchRepository
	newsRepo     NewsRepository
	trainingRepo TrainingRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(playerRepo PlayerRepository, matchRepo MatchRepository, newsRepo NewsRepository, trainingRepo TrainingRepository, logger *slog.Logger) *DashboardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{
		playerRepo:   playerRepo,
		matchRepo:    matchRepo,
		newsRepo:     newsRepo,
		trainingRepo: trainingRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// Snapshot is the derived dashboard state
type Snapshot struct {
	TopScorer    *model.Player          `json:"topScorer"`
	TopAssister  *model.Player          `json:"topAssister"`
	TopGA        *model.Player          `json:"topGoalInvolvements"`
	NextMatch    *model.Match           `json:"nextMatch"`
	LastResult   *model.Match           `json:"lastResult"`
	LatestNews   *model.NewsArticle     `json:"latestNews"`
	NextTraining *model.TrainingSession `json:"nextTraining"`
}

// Snapshot builds the dashboard from the current collections. A failed
// read is logged and contributes nothing: the fields derived from that
// collection stay zero, the rest of the snapshot is still computed, and
// the caller always gets a snapshot back.
func (s *DashboardService) Snapshot(ctx context.Context) *Snapshot {
	players, err := s.playerRepo.ListByNumber(ctx)
	if err != nil {
		s.logger.Error("dashboard players read failed", "error", err)
		players = nil
	}

	matches, err := s.matchRepo.ListByDateDesc(ctx)
	if err != nil {
		s.logger.Error("dashboard matches read failed", "error", err)
		matches = nil
	}

	news, err := s.newsRepo.ListByDateDesc(ctx)
	if err != nil {
		s.logger.Error("dashboard news read failed", "error", err)
		news = nil
	}

	upcoming, err := s.trainingRepo.ListUpcoming(ctx, s.now())
	if err != nil {
		s.logger.Error("dashboard training read failed", "error", err)
		upcoming = nil
	}

	snap := &Snapshot{
		TopScorer:   leader(players, func(p *model.Player) int { return p.Stats.Season.Goals }),
		TopAssister: leader(players, func(p *model.Player) int { return p.Stats.Season.Assists }),
		TopGA:       leader(players, func(p *model.Player) int { return p.Stats.Season.GoalInvolvements() }),
	}

	snap.NextMatch = nextMatch(matches).Published()
	snap.LastResult = lastResult(matches).Published()

	if len(news) > 0 {
		snap.LatestNews = news[0]
	}
	if len(upcoming) > 0 {
		snap.NextTraining = upcoming[0]
	}

	return snap
}

// Roster returns all players ordered by jersey number
func (s *DashboardService) Roster(ctx context.Context) ([]*model.Player, error) {
	return s.playerRepo.ListByNumber(ctx)
}

// leader picks the player with the highest metric. Ties keep the first
// player encountered in roster order, so later equals never displace an
// earlier leader.
func leader(players []*model.Player, metric func(*model.Player) int) *model.Player {
	var best *model.Player
	bestValue := -1
	for _, p := range players {
		if v := metric(p); v > bestValue {
			best = p
			bestValue = v
		}
	}
	return best
}

// nextMatch returns the earliest match not yet played. Matches arrive
// newest first, so the scan walks from the end of the slice.
func nextMatch(matches []*model.Match) *model.Match {
	for i := len(matches) - 1; i >= 0; i-- {
		if !matches[i].IsPast {
			return matches[i]
		}
	}
	return nil
}

// lastResult returns the most recently played match
func lastResult(matches []*model.Match) *model.Match {
	for _, m := range matches {
		if m.IsPast {
			return m
		}
	}
	return nil
}
