package repository

import (
	"context"

	"github.com/ffc/club/api/internal/database"
	"github.com/ffc/club/api/internal/model"
)

// MatchRepository handles match data access
type MatchRepository struct {
	db database.Database
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db database.Database) *MatchRepository {
	return &MatchRepository{db: db}
}

// ListByDateDesc retrieves all matches ordered by date, newest first
func (r *MatchRepository) ListByDateDesc(ctx context.Context) ([]*model.Match, error) {
	result, err := r.db.Query(ctx, `SELECT * FROM match ORDER BY date DESC`, nil)
	if err != nil {
		return nil, err
	}

	var matches []*model.Match
	err = decodeList(result, func(record interface{}) error {
		var m model.Match
		if err := decodeRecord(record, &m); err != nil {
			return err
		}
		matches = append(matches, &m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// GetByID retrieves a match by ID, returning nil when absent
func (r *MatchRepository) GetByID(ctx context.Context, id string) (*model.Match, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": id})
	if err != nil {
		return nil, notFoundToNil(err)
	}

	var m model.Match
	if err := decodeRecord(result, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new match document
func (r *MatchRepository) Create(ctx context.Context, m *model.Match) error {
	query := `
		CREATE match CONTENT {
			opponent: $opponent,
			date: $date,
			venue: $venue,
			isPast: $isPast,
			score: $score
		}
	`
	return r.db.Execute(ctx, query, matchVars(m))
}

// Update replaces an existing match document
func (r *MatchRepository) Update(ctx context.Context, m *model.Match) error {
	query := `
		UPDATE type::record($id) CONTENT {
			opponent: $opponent,
			date: $date,
			venue: $venue,
			isPast: $isPast,
			score: $score
		}
	`
	vars := matchVars(m)
	vars["id"] = m.ID
	return r.db.Execute(ctx, query, vars)
}

// Delete removes a match document by ID
func (r *MatchRepository) Delete(ctx context.Context, id string) error {
	return r.db.Execute(ctx, `DELETE type::record($id)`, map[string]interface{}{"id": id})
}

func matchVars(m *model.Match) map[string]interface{} {
	vars := map[string]interface{}{
		"opponent": m.Opponent,
		"date":     m.Date.Time(),
		"venue":    string(m.Venue),
		"isPast":   m.IsPast,
		"score":    nil,
	}
	if m.Score != nil {
		vars["score"] = map[string]interface{}{
			"home": m.Score.Home,
			"away": m.Score.Away,
		}
	}
	return vars
}
