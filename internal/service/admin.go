package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ffc/club/api/internal/model"
)

// Kind identifies one of the managed content collections
type Kind string

const (
	KindPlayers  Kind = "players"
	KindMatches  Kind = "matches"
	KindNews     Kind = "news"
	KindTraining Kind = "training"
	KindUsers    Kind = "users"
)

// ParseKind validates a kind path segment
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindPlayers, KindMatches, KindNews, KindTraining, KindUsers:
		return Kind(s), nil
	}
	return "", ErrUnknownKind
}

// AdminService is the generic CRUD controller over the five managed
// collections. Saves are whole-document: the existing record is loaded,
// the submitted fields are laid over it, and the merged document is
// written back. A partial edit therefore never clears nested siblings.
type AdminService struct {
	playerRepo   PlayerRepository
	matchRepo    MatchRepository
	newsRepo     NewsRepository
	trainingRepo TrainingRepository
	userRepo     UserRepository
	now          func() time.Time
}

// NewAdminService creates a new admin service
func NewAdminService(playerRepo PlayerRepository, matchRepo MatchRepository, newsRepo NewsRepository, trainingRepo TrainingRepository, userRepo UserRepository) *AdminService {
	return &AdminService{
		playerRepo:   playerRepo,
		matchRepo:    matchRepo,
		newsRepo:     newsRepo,
		trainingRepo: trainingRepo,
		userRepo:     userRepo,
		now:          time.Now,
	}
}

// List returns all records of a kind in its display order
func (s *AdminService) List(ctx context.Context, kind Kind) (interface{}, error) {
	switch kind {
	case KindPlayers:
		return s.playerRepo.ListByNumber(ctx)
	case KindMatches:
		return s.matchRepo.ListByDateDesc(ctx)
	case KindNews:
		return s.newsRepo.ListByDateDesc(ctx)
	case KindTraining:
		return s.trainingRepo.ListByDateAsc(ctx)
	case KindUsers:
		return s.userRepo.List(ctx)
	}
	return nil, ErrUnknownKind
}

// EditForm returns the record to populate an edit form: the stored
// record for an existing id, or the kind's defaults for a blank one.
func (s *AdminService) EditForm(ctx context.Context, kind Kind, id string) (interface{}, error) {
	if id == "" {
		return s.defaults(kind)
	}

	record, err := s.load(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}
	return record, nil
}

// Save creates or updates a record of a kind from a submitted partial
// document. A blank id creates; otherwise the existing record is loaded
// and the submitted fields merged over it before the write.
func (s *AdminService) Save(ctx context.Context, kind Kind, id string, body []byte) (interface{}, error) {
	switch kind {
	case KindPlayers:
		return s.savePlayer(ctx, id, body)
	case KindMatches:
		return s.saveMatch(ctx, id, body)
	case KindNews:
		return s.saveNews(ctx, id, body)
	case KindTraining:
		return s.saveTraining(ctx, id, body)
	case KindUsers:
		return s.saveUser(ctx, id, body)
	}
	return nil, ErrUnknownKind
}

// Delete removes a record. A blank id is rejected before any gateway
// call, and user deletion is refused as a policy.
func (s *AdminService) Delete(ctx context.Context, kind Kind, id string) error {
	if id == "" {
		return ErrMissingID
	}

	switch kind {
	case KindPlayers:
		return s.playerRepo.Delete(ctx, id)
	case KindMatches:
		return s.matchRepo.Delete(ctx, id)
	case KindNews:
		return s.newsRepo.Delete(ctx, id)
	case KindTraining:
		return s.trainingRepo.Delete(ctx, id)
	case KindUsers:
		return ErrUserDeletionUnsupported
	}
	return ErrUnknownKind
}

func (s *AdminService) defaults(kind Kind) (interface{}, error) {
	now := s.now()
	switch kind {
	case KindPlayers:
		p := model.DefaultPlayer(now)
		return &p, nil
	case KindMatches:
		m := model.DefaultMatch(now)
		return &m, nil
	case KindNews:
		a := model.DefaultNewsArticle(now)
		return &a, nil
	case KindTraining:
		t := model.DefaultTrainingSession(now)
		return &t, nil
	case KindUsers:
		u := model.DefaultUserDocument()
		return &u, nil
	}
	return nil, ErrUnknownKind
}

func (s *AdminService) load(ctx context.Context, kind Kind, id string) (interface{}, error) {
	switch kind {
	case KindPlayers:
		p, err := s.playerRepo.GetByID(ctx, id)
		if err != nil || p == nil {
			return nil, err
		}
		return p, nil
	case KindMatches:
		m, err := s.matchRepo.GetByID(ctx, id)
		if err != nil || m == nil {
			return nil, err
		}
		return m, nil
	case KindNews:
		a, err := s.newsRepo.GetByID(ctx, id)
		if err != nil || a == nil {
			return nil, err
		}
		return a, nil
	case KindTraining:
		t, err := s.trainingRepo.GetByID(ctx, id)
		if err != nil || t == nil {
			return nil, err
		}
		return t, nil
	case KindUsers:
		u, err := s.userRepo.GetByID(ctx, id)
		if err != nil || u == nil {
			return nil, err
		}
		return u, nil
	}
	return nil, ErrUnknownKind
}

func (s *AdminService) savePlayer(ctx context.Context, id string, body []byte) (interface{}, error) {
	p := model.DefaultPlayer(s.now())
	if id != "" {
		existing, err := s.playerRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrRecordNotFound
		}
		p = *existing
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, invalidBody(err)
	}
	p.ID = id

	if errs := p.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}
	join, err := resolveDate(p.JoinDate, "joinDate")
	if err != nil {
		return nil, err
	}
	p.JoinDate = join

	if id == "" {
		err = s.playerRepo.Create(ctx, &p)
	} else {
		err = s.playerRepo.Update(ctx, &p)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *AdminService) saveMatch(ctx context.Context, id string, body []byte) (interface{}, error) {
	m := model.DefaultMatch(s.now())
	if id != "" {
		existing, err := s.matchRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrRecordNotFound
		}
		m = *existing
	}
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, invalidBody(err)
	}
	m.ID = id

	if errs := m.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}
	date, err := resolveDate(m.Date, "date")
	if err != nil {
		return nil, err
	}
	m.Date = date

	if id == "" {
		err = s.matchRepo.Create(ctx, &m)
	} else {
		err = s.matchRepo.Update(ctx, &m)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *AdminService) saveNews(ctx context.Context, id string, body []byte) (interface{}, error) {
	a := model.DefaultNewsArticle(s.now())
	if id != "" {
		existing, err := s.newsRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrRecordNotFound
		}
		a = *existing
	}
	if err := json.Unmarshal(body, &a); err != nil {
		return nil, invalidBody(err)
	}
	a.ID = id

	if errs := a.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}
	date, err := resolveDate(a.Date, "date")
	if err != nil {
		return nil, err
	}
	a.Date = date

	if id == "" {
		err = s.newsRepo.Create(ctx, &a)
	} else {
		err = s.newsRepo.Update(ctx, &a)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AdminService) saveTraining(ctx context.Context, id string, body []byte) (interface{}, error) {
	t := model.DefaultTrainingSession(s.now())
	if id != "" {
		existing, err := s.trainingRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrRecordNotFound
		}
		t = *existing
	}
	if err := json.Unmarshal(body, &t); err != nil {
		return nil, invalidBody(err)
	}
	t.ID = id

	if errs := t.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}
	date, err := resolveDate(t.Date, "date")
	if err != nil {
		return nil, err
	}
	t.Date = date

	if id == "" {
		err = s.trainingRepo.Create(ctx, &t)
	} else {
		err = s.trainingRepo.Update(ctx, &t)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// userSubmission wraps a user document so the form can carry an
// optional plaintext password to (re)set.
type userSubmission struct {
	model.UserDocument
	Password string `json:"password,omitempty"`
}

func (s *AdminService) saveUser(ctx context.Context, id string, body []byte) (interface{}, error) {
	var sub userSubmission
	sub.UserDocument = model.DefaultUserDocument()
	if id != "" {
		existing, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrRecordNotFound
		}
		sub.UserDocument = *existing
	}
	if err := json.Unmarshal(body, &sub); err != nil {
		return nil, invalidBody(err)
	}
	sub.ID = id

	if sub.Password != "" {
		hash, err := hashPassword(sub.Password)
		if err != nil {
			return nil, err
		}
		sub.Hash = &hash
	}

	if errs := sub.UserDocument.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	u := sub.UserDocument
	var err error
	if id == "" {
		err = s.userRepo.Create(ctx, &u)
	} else {
		err = s.userRepo.Update(ctx, &u)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// resolveDate converts a form date to a concrete time exactly once, at
// the write boundary. Unparseable input surfaces as a field error.
func resolveDate(d model.DateValue, field string) (model.DateValue, error) {
	t, err := d.Resolve()
	if err != nil {
		return model.DateValue{}, model.NewValidationError([]model.FieldError{
			{Field: field, Message: "invalid date"},
		})
	}
	return model.NewDate(t), nil
}

func invalidBody(err error) error {
	return model.NewBadRequestError("invalid request body: " + err.Error())
}
