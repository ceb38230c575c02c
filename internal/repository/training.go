package repository

import (
	"context"
	"time"

	"github.com/ffc/club/api/internal/database"
	"github.com/ffc/club/api/internal/model"
)

// TrainingRepository handles training session data access
type TrainingRepository struct {
	db database.Database
}

// NewTrainingRepository creates a new training repository
func NewTrainingRepository(db database.Database) *TrainingRepository {
	return &TrainingRepository{db: db}
}

// ListByDateAsc retrieves all training sessions ordered by date, earliest first
func (r *TrainingRepository) ListByDateAsc(ctx context.Context) ([]*model.TrainingSession, error) {
	result, err := r.db.Query(ctx, `SELECT * FROM training ORDER BY date ASC`, nil)
	if err != nil {
		return nil, err
	}
	return r.decodeSessions(result)
}

// ListUpcoming retrieves training sessions at or after the given instant,
// ordered by date, earliest first
func (r *TrainingRepository) ListUpcoming(ctx context.Context, now time.Time) ([]*model.TrainingSession, error) {
	result, err := r.db.Query(ctx, `SELECT * FROM training WHERE date >= $now ORDER BY date ASC`, map[string]interface{}{
		"now": now,
	})
	if err != nil {
		return nil, err
	}
	return r.decodeSessions(result)
}

func (r *TrainingRepository) decodeSessions(result []interface{}) ([]*model.TrainingSession, error) {
	var sessions []*model.TrainingSession
	err := decodeList(result, func(record interface{}) error {
		var s model.TrainingSession
		if err := decodeRecord(record, &s); err != nil {
			return err
		}
		sessions = append(sessions, &s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetByID retrieves a training session by ID, returning nil when absent
func (r *TrainingRepository) GetByID(ctx context.Context, id string) (*model.TrainingSession, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": id})
	if err != nil {
		return nil, notFoundToNil(err)
	}

	var s model.TrainingSession
	if err := decodeRecord(result, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new training session document
func (r *TrainingRepository) Create(ctx context.Context, s *model.TrainingSession) error {
	query := `
		CREATE training CONTENT {
			date: $date,
			focus: $focus,
			location: $location
		}
	`
	return r.db.Execute(ctx, query, trainingVars(s))
}

// Update replaces an existing training session document
func (r *TrainingRepository) Update(ctx context.Context, s *model.TrainingSession) error {
	query := `
		UPDATE type::record($id) CONTENT {
			date: $date,
			focus: $focus,
			location: $location
		}
	`
	vars := trainingVars(s)
	vars["id"] = s.ID
	return r.db.Execute(ctx, query, vars)
}

// Delete removes a training session document by ID
func (r *TrainingRepository) Delete(ctx context.Context, id string) error {
	return r.db.Execute(ctx, `DELETE type::record($id)`, map[string]interface{}{"id": id})
}

func trainingVars(s *model.TrainingSession) map[string]interface{} {
	return map[string]interface{}{
		"date":     s.Date.Time(),
		"focus":    s.Focus,
		"location": s.Location,
	}
}
