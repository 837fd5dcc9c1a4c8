package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/monocle-dev/taskboard/internal/auth"
	"github.com/monocle-dev/taskboard/internal/models"
	"github.com/monocle-dev/taskboard/internal/types"
)

type TokenSigner interface {
	GenerateJWT(userID uuid.UUID) (string, error)
	VerifyJWT(token string) (uuid.UUID, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type AccountService struct {
	users  UserRepository
	signer TokenSigner
}

func NewAccountService(users UserRepository, signer TokenSigner) *AccountService {
	return &AccountService{users: users, signer: signer}
}

func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*models.User, string, error) {
	email := normalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)

	v := types.NewValidationError()
	v.Check(name != "", "name", "is required")
	v.Check(email != "", "email", "is required")
	v.Check(len(input.Password) >= types.MinPasswordLength, "password", fmt.Sprintf("must be at least %d characters long", types.MinPasswordLength))
	v.Check(len(input.Password) <= types.MaxPasswordLength, "password", fmt.Sprintf("must be at most %d characters long", types.MaxPasswordLength))
	if err := v.OrNil(); err != nil {
		return nil, "", err
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, "", fmt.Errorf("email %s: %w", email, types.ErrConflict)
	}
	if !errors.Is(err, types.ErrNotFound) {
		return nil, "", fmt.Errorf("check existing user: %w", err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.signer.GenerateJWT(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

func (s *AccountService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, types.ErrNotFound) {
		return nil, "", types.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", types.ErrInvalidCredentials
	}

	token, err := s.signer.GenerateJWT(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// Authenticate verifies a raw token and loads its user. A valid token for a
// user that no longer exists is types.ErrInvalidToken.
func (s *AccountService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.signer.VerifyJWT(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, types.ErrNotFound) {
		return nil, fmt.Errorf("%w: user %s no longer exists", types.ErrInvalidToken, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
