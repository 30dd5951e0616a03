package service

import (
	"context"
	"errors"
	"strings"

	"movie-catalog-api/internal/auth"
	"movie-catalog-api/internal/model"
)

// UserStore is the slice of the persistence layer the authentication
// service needs. The Postgres implementation lives in internal/repository.
type UserStore interface {
	FindByID(ctx context.Context, id int) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, u model.User) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type AuthService struct {
	users  UserStore
	hasher auth.Hasher
	tokens *auth.TokenManager
}

func NewAuthService(users UserStore, hasher auth.Hasher, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a credential record. The existence check is a fast
// path for a friendly error; the real uniqueness guarantee is the store's
// unique index, whose conflict the store already reports as
// ErrUserAlreadyExists.
func (s *AuthService) Register(ctx context.Context, username, password, displayName, role string) (model.User, error) {
	username = strings.TrimSpace(username)
	displayName = strings.TrimSpace(displayName)
	role = strings.ToLower(strings.TrimSpace(role))

	if username == "" || password == "" {
		return model.User{}, model.ErrInvalidInput
	}
	if role == "" {
		role = model.RoleUser
	}
	if !model.ValidRole(role) {
		return model.User{}, model.ErrInvalidInput
	}

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return model.User{}, err
	}
	if exists {
		return model.User{}, model.ErrUserAlreadyExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return model.User{}, err
	}

	return s.users.Create(ctx, model.User{
		Username:     username,
		PasswordHash: hash,
		DisplayName:  displayName,
		Role:         role,
	})
}

// Login verifies the credentials and issues a token carrying the user's
// username and role. Unknown usernames and wrong passwords produce the
// same error so callers cannot enumerate accounts. Login never mutates
// state.
func (s *AuthService) Login(ctx context.Context, username, password string) (model.LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.LoginResponse{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.LoginResponse{}, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return model.LoginResponse{}, model.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

func (s *AuthService) GetUser(ctx context.Context, id int) (model.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *AuthService) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	return s.users.FindByUsername(ctx, username)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}
