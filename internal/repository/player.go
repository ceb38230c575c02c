package repository

import (
	"context"

	"github.com/ffc/club/api/internal/database"
	"github.com/ffc/club/api/internal/model"
)

// PlayerRepository handles player data access
type PlayerRepository struct {
	db database.Database
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db database.Database) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// ListByNumber retrieves all players ordered by jersey number
func (r *PlayerRepository) ListByNumber(ctx context.Context) ([]*model.Player, error) {
	result, err := r.db.Query(ctx, `SELECT * FROM player ORDER BY number ASC`, nil)
	if err != nil {
		return nil, err
	}

	var players []*model.Player
	err = decodeList(result, func(record interface{}) error {
		var p model.Player
		if err := decodeRecord(record, &p); err != nil {
			return err
		}
		players = append(players, &p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return players, nil
}

// GetByID retrieves a player by ID, returning nil when absent
func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*model.Player, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": id})
	if err != nil {
		return nil, notFoundToNil(err)
	}

	var p model.Player
	if err := decodeRecord(result, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new player document
func (r *PlayerRepository) Create(ctx context.Context, p *model.Player) error {
	query := `
		CREATE player CONTENT {
			name: $name,
			position: $position,
			number: $number,
			imageUrl: $imageUrl,
			joinDate: $joinDate,
			stats: $stats
		}
	`
	return r.db.Execute(ctx, query, playerVars(p))
}

// Update replaces an existing player document
func (r *PlayerRepository) Update(ctx context.Context, p *model.Player) error {
	query := `
		UPDATE type::record($id) CONTENT {
			name: $name,
			position: $position,
			number: $number,
			imageUrl: $imageUrl,
			joinDate: $joinDate,
			stats: $stats
		}
	`
	vars := playerVars(p)
	vars["id"] = p.ID
	return r.db.Execute(ctx, query, vars)
}

// Delete removes a player document by ID
func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	return r.db.Execute(ctx, `DELETE type::record($id)`, map[string]interface{}{"id": id})
}

func playerVars(p *model.Player) map[string]interface{} {
	return map[string]interface{}{
		"name":     p.Name,
		"position": string(p.Position),
		"number":   p.Number,
		"imageUrl": p.ImageURL,
		"joinDate": p.JoinDate.Time(),
		"stats": map[string]interface{}{
			"season": map[string]interface{}{
				"appearances": p.Stats.Season.Appearances,
				"goals":       p.Stats.Season.Goals,
				"assists":     p.Stats.Season.Assists,
			},
			"allTime": map[string]interface{}{
				"appearances": p.Stats.AllTime.Appearances,
				"goals":       p.Stats.AllTime.Goals,
				"assists":     p.Stats.AllTime.Assists,
			},
		},
	}
}
