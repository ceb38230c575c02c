package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ffc/club/api/internal/model"
	"github.com/ffc/club/api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

const (
	// bcrypt cost factor (10-14 recommended for production)
	bcryptCost = 12
)

// UserRepository defines the interface for user document storage
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.UserDocument, error)
	GetByID(ctx context.Context, id string) (*model.UserDocument, error)
	List(ctx context.Context) ([]*model.UserDocument, error)
	Create(ctx context.Context, user *model.UserDocument) error
	Update(ctx context.Context, user *model.UserDocument) error
}

// AuthService handles login and session resolution
type AuthService struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	logger     *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, jwtService *jwt.Service, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// LoginResult represents a successful login
type LoginResult struct {
	User  *model.UserDocument
	Token string
}

// LoginPlayer authenticates a player account.
//
// The path split between player and admin login is a UX policy, not a
// security boundary: admin accounts are turned away here with a message
// pointing at the admin login page, and accounts without the player flag
// are rejected outright.
func (s *AuthService) LoginPlayer(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin {
		return nil, ErrAdminMustUseAdminLogin
	}
	if !user.IsPlayer {
		return nil, ErrNotRegisteredAsPlayer
	}
	return s.issueToken(user)
}

// LoginAdmin authenticates an admin account
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin {
		return nil, ErrNotAdminAccount
	}
	return s.issueToken(user)
}

// Resolve turns validated token claims into a session by looking up the
// user document. Roles are never read from the token: a stale or forged
// role claim cannot grant access. When the lookup fails the session
// degrades to an authenticated non-admin rather than failing the request.
func (s *AuthService) Resolve(ctx context.Context, claims *jwt.Claims) *model.Session {
	if claims == nil {
		return model.AnonymousSession()
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		s.logger.Error("role resolution failed, degrading to non-admin",
			"user_id", claims.UserID,
			"error", err,
		)
		return &model.Session{
			User: &model.UserDocument{
				ID:          claims.UserID,
				Email:       claims.Email,
				DisplayName: claims.DisplayName,
				PhotoURL:    claims.PhotoURL,
			},
			IsAdmin: false,
		}
	}
	if user == nil {
		return &model.Session{
			User: &model.UserDocument{
				ID:          claims.UserID,
				Email:       claims.Email,
				DisplayName: claims.DisplayName,
				PhotoURL:    claims.PhotoURL,
			},
			IsAdmin: false,
		}
	}

	return &model.Session{User: user, IsAdmin: user.IsAdmin}
}

func (s *AuthService) authenticate(ctx context.Context, email, password string) (*model.UserDocument, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Hash == nil {
		// Burn a hash comparison so the miss path costs the same
		checkPassword(password, dummyHash)
		return nil, ErrInvalidCredentials
	}
	if !checkPassword(password, *user.Hash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) issueToken(user *model.UserDocument) (*LoginResult, error) {
	token, err := s.jwtService.Sign(jwt.Claims{
		Subject:     user.ID,
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
	})
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, Token: token}, nil
}

// dummyHash is a valid bcrypt hash of a random string, used to equalize
// timing between unknown-email and wrong-password failures.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// Helper functions

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
