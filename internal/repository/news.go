package repository

import (
	"context"

	"github.com/ffc/club/api/internal/database"
	"github.com/ffc/club/api/internal/model"
)

// NewsRepository handles news article data access
type NewsRepository struct {
	db database.Database
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(db database.Database) *NewsRepository {
	return &NewsRepository{db: db}
}

// ListByDateDesc retrieves all news articles ordered by date, newest first
func (r *NewsRepository) ListByDateDesc(ctx context.Context) ([]*model.NewsArticle, error) {
	result, err := r.db.Query(ctx, `SELECT * FROM news ORDER BY date DESC`, nil)
	if err != nil {
		return nil, err
	}

	var articles []*model.NewsArticle
	err = decodeList(result, func(record interface{}) error {
		var a model.NewsArticle
		if err := decodeRecord(record, &a); err != nil {
			return err
		}
		articles = append(articles, &a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// GetByID retrieves a news article by ID, returning nil when absent
func (r *NewsRepository) GetByID(ctx context.Context, id string) (*model.NewsArticle, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": id})
	if err != nil {
		return nil, notFoundToNil(err)
	}

	var a model.NewsArticle
	if err := decodeRecord(result, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new news article document
func (r *NewsRepository) Create(ctx context.Context, a *model.NewsArticle) error {
	query := `
		CREATE news CONTENT {
			title: $title,
			summary: $summary,
			imageUrl: $imageUrl,
			date: $date
		}
	`
	return r.db.Execute(ctx, query, newsVars(a))
}

// Update replaces an existing news article document
func (r *NewsRepository) Update(ctx context.Context, a *model.NewsArticle) error {
	query := `
		UPDATE type::record($id) CONTENT {
			title: $title,
			summary: $summary,
			imageUrl: $imageUrl,
			date: $date
		}
	`
	vars := newsVars(a)
	vars["id"] = a.ID
	return r.db.Execute(ctx, query, vars)
}

// Delete removes a news article document by ID
func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	return r.db.Execute(ctx, `DELETE type::record($id)`, map[string]interface{}{"id": id})
}

func newsVars(a *model.NewsArticle) map[string]interface{} {
	return map[string]interface{}{
		"title":    a.Title,
		"summary":  a.Summary,
		"imageUrl": a.ImageURL,
		"date":     a.Date.Time(),
	}
}
