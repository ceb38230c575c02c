package service

import (
	"context"
	"time"

	"github.com/ffc/club/api/internal/model"
)

// ============================================================================
// Mock Repositories
// ============================================================================

type mockPlayerRepo struct {
	listByNumberFunc func(ctx context.Context) ([]*model.Player, error)
	getByIDFunc      func(ctx context.Context, id string) (*model.Player, error)
	createFunc       func(ctx context.Context, p *model.Player) error
	updateFunc       func(ctx context.Context, p *model.Player) error
	deleteFunc       func(ctx context.Context, id string) error
}

func (m *mockPlayerRepo) ListByNumber(ctx context.Context) ([]*model.Player, error) {
	if m.listByNumberFunc != nil {
		return m.listByNumberFunc(ctx)
	}
	return nil, nil
}

func (m *mockPlayerRepo) GetByID(ctx context.Context, id string) (*model.Player, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPlayerRepo) Create(ctx context.Context, p *model.Player) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, p)
	}
	return nil
}

func (m *mockPlayerRepo) Update(ctx context.Context, p *model.Player) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, p)
	}
	return nil
}

func (m *mockPlayerRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockMatchRepo struct {
	listByDateDescFunc func(ctx context.Context) ([]*model.Match, error)
	getByIDFunc        func(ctx context.Context, id string) (*model.Match, error)
	createFunc         func(ctx context.Context, match *model.Match) error
	updateFunc         func(ctx context.Context, match *model.Match) error
	deleteFunc         func(ctx context.Context, id string) error
}

func (m *mockMatchRepo) ListByDateDesc(ctx context.Context) ([]*model.Match, error) {
	if m.listByDateDescFunc != nil {
		return m.listByDateDescFunc(ctx)
	}
	return nil, nil
}

func (m *mockMatchRepo) GetByID(ctx context.Context, id string) (*model.Match, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMatchRepo) Create(ctx context.Context, match *model.Match) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, match)
	}
	return nil
}

func (m *mockMatchRepo) Update(ctx context.Context, match *model.Match) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, match)
	}
	return nil
}

func (m *mockMatchRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockNewsRepo struct {
	listByDateDescFunc func(ctx context.Context) ([]*model.NewsArticle, error)
	getByIDFunc        func(ctx context.Context, id string) (*model.NewsArticle, error)
	createFunc         func(ctx context.Context, a *model.NewsArticle) error
	updateFunc         func(ctx context.Context, a *model.NewsArticle) error
	deleteFunc         func(ctx context.Context, id string) error
}

func (m *mockNewsRepo) ListByDateDesc(ctx context.Context) ([]*model.NewsArticle, error) {
	if m.listByDateDescFunc != nil {
		return m.listByDateDescFunc(ctx)
	}
	return nil, nil
}

func (m *mockNewsRepo) GetByID(ctx context.Context, id string) (*model.NewsArticle, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNewsRepo) Create(ctx context.Context, a *model.NewsArticle) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, a)
	}
	return nil
}

func (m *mockNewsRepo) Update(ctx context.Context, a *model.NewsArticle) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, a)
	}
	return nil
}

func (m *mockNewsRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockTrainingRepo struct {
	listByDateAscFunc func(ctx context.Context) ([]*model.TrainingSession, error)
	listUpcomingFunc  func(ctx context.Context, now time.Time) ([]*model.TrainingSession, error)
	getByIDFunc       func(ctx context.Context, id string) (*model.TrainingSession, error)
	createFunc        func(ctx context.Context, s *model.TrainingSession) error
	updateFunc        func(ctx context.Context, s *model.TrainingSession) error
	deleteFunc        func(ctx context.Context, id string) error
}

func (m *mockTrainingRepo) ListByDateAsc(ctx context.Context) ([]*model.TrainingSession, error) {
	if m.listByDateAscFunc != nil {
		return m.listByDateAscFunc(ctx)
	}
	return nil, nil
}

func (m *mockTrainingRepo) ListUpcoming(ctx context.Context, now time.Time) ([]*model.TrainingSession, error) {
	if m.listUpcomingFunc != nil {
		return m.listUpcomingFunc(ctx, now)
	}
	return nil, nil
}

func (m *mockTrainingRepo) GetByID(ctx context.Context, id string) (*model.TrainingSession, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTrainingRepo) Create(ctx context.Context, s *model.TrainingSession) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, s)
	}
	return nil
}

func (m *mockTrainingRepo) Update(ctx context.Context, s *model.TrainingSession) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, s)
	}
	return nil
}

func (m *mockTrainingRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockUserRepo struct {
	getByEmailFunc func(ctx context.Context, email string) (*model.UserDocument, error)
	getByIDFunc    func(ctx context.Context, id string) (*model.UserDocument, error)
	listFunc       func(ctx context.Context) ([]*model.UserDocument, error)
	createFunc     func(ctx context.Context, user *model.UserDocument) error
	updateFunc     func(ctx context.Context, user *model.UserDocument) error
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.UserDocument, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.UserDocument, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) List(ctx context.Context) ([]*model.UserDocument, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.UserDocument) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.UserDocument) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, user)
	}
	return nil
}

type mockMessageRepo struct {
	windowFunc func(ctx context.Context, limit int) ([]*model.ChatMessage, error)
	appendFunc func(ctx context.Context, msg *model.ChatMessage) error
	pruneFunc  func(ctx context.Context, before time.Time) error
}

func (m *mockMessageRepo) Window(ctx context.Context, limit int) ([]*model.ChatMessage, error) {
	if m.windowFunc != nil {
		return m.windowFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockMessageRepo) Append(ctx context.Context, msg *model.ChatMessage) error {
	if m.appendFunc != nil {
		return m.appendFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepo) Prune(ctx context.Context, before time.Time) error {
	if m.pruneFunc != nil {
		return m.pruneFunc(ctx, before)
	}
	return nil
}
