package repository

import (
	"context"

	"github.com/ffc/club/api/internal/database"
	"github.com/ffc/club/api/internal/model"
)

// UserRepository handles user document data access.
//
// There is deliberately no Delete: account removal happens out of band
// through the identity provider's own tooling.
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// GetByEmail retrieves a user by email, returning nil when absent
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.UserDocument, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM user WHERE email = $email LIMIT 1`, map[string]interface{}{
		"email": email,
	})
	if err != nil {
		return nil, notFoundToNil(err)
	}
	return decodeUser(result)
}

// GetByID retrieves a user by ID, returning nil when absent
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.UserDocument, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": id})
	if err != nil {
		return nil, notFoundToNil(err)
	}
	return decodeUser(result)
}

// List retrieves all user documents ordered by email
func (r *UserRepository) List(ctx context.Context) ([]*model.UserDocument, error) {
	result, err := r.db.Query(ctx, `SELECT * FROM user ORDER BY email ASC`, nil)
	if err != nil {
		return nil, err
	}

	var users []*model.UserDocument
	err = decodeList(result, func(record interface{}) error {
		u, err := decodeUser(record)
		if err != nil {
			return err
		}
		users = append(users, u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Create inserts a new user document
func (r *UserRepository) Create(ctx context.Context, u *model.UserDocument) error {
	query := `
		CREATE user CONTENT {
			email: $email,
			passwordHash: $passwordHash,
			displayName: $displayName,
			photoUrl: $photoUrl,
			isAdmin: $isAdmin,
			isPlayer: $isPlayer,
			createdOn: time::now(),
			updatedOn: time::now()
		}
	`
	return r.db.Execute(ctx, query, userVars(u))
}

// Update replaces an existing user document
func (r *UserRepository) Update(ctx context.Context, u *model.UserDocument) error {
	query := `
		UPDATE type::record($id) CONTENT {
			email: $email,
			passwordHash: $passwordHash,
			displayName: $displayName,
			photoUrl: $photoUrl,
			isAdmin: $isAdmin,
			isPlayer: $isPlayer,
			createdOn: $createdOn,
			updatedOn: time::now()
		}
	`
	vars := userVars(u)
	vars["id"] = u.ID
	vars["createdOn"] = u.CreatedOn
	return r.db.Execute(ctx, query, vars)
}

func userVars(u *model.UserDocument) map[string]interface{} {
	var hash interface{}
	if u.Hash != nil {
		hash = *u.Hash
	}
	return map[string]interface{}{
		"email":        u.Email,
		"passwordHash": hash,
		"displayName":  u.DisplayName,
		"photoUrl":     u.PhotoURL,
		"isAdmin":      u.IsAdmin,
		"isPlayer":     u.IsPlayer,
	}
}

// decodeUser decodes a user record, pulling the password hash out of
// the raw map since the model keeps it off the JSON surface.
func decodeUser(record interface{}) (*model.UserDocument, error) {
	var u model.UserDocument
	if err := decodeRecord(record, &u); err != nil {
		return nil, err
	}
	if m, ok := record.(map[string]interface{}); ok {
		if h, ok := m["passwordHash"].(string); ok && h != "" {
			u.Hash = &h
		}
		if u.CreatedOn.IsZero() {
			u.CreatedOn = parseTime(m["createdOn"])
		}
		if u.UpdatedOn.IsZero() {
			u.UpdatedOn = parseTime(m["updatedOn"])
		}
	}
	return &u, nil
}
