package service

import (
	"context"
	"fmt"

	"github.com/atlasproject/atlas-api/internal/apperr"
	"github.com/atlasproject/atlas-api/internal/auth"
	"github.com/atlasproject/atlas-api/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is enforced at the HTTP boundary; Register treats it as
// a precondition.
const MinPasswordLength = 6

// Register creates a new account and returns a signed token for it.
// Only a salted hash of the password is stored.
func (s *Service) Register(ctx context.Context, input model.RegisterInput) (*model.AuthResponse, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, apperr.Validation("username, email and password are required")
	}

	byEmail, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if byEmail != nil {
		return nil, apperr.Conflict("user with this email or username already exists")
	}
	byUsername, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if byUsername != nil {
		return nil, apperr.Conflict("user with this email or username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{Token: token, User: user.Public()}, nil
}

// Login verifies credentials and returns a signed token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, input model.LoginInput) (*model.AuthResponse, error) {
	if input.Email == "" || input.Password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, apperr.InvalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperr.InvalidCredentials()
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{Token: token, User: user.Public()}, nil
}

// IssueToken creates a signed token with an embedded expiration.
func (s *Service) IssueToken(userID int) (string, error) {
	token, err := auth.GenerateToken(userID, s.authCfg.JWTSecret, s.authCfg.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// VerifyToken validates a token and resolves the user id it was issued to.
func (s *Service) VerifyToken(token string) (int, error) {
	claims, err := auth.ParseToken(token, s.authCfg.JWTSecret)
	if err != nil {
		return 0, apperr.Unauthenticated("invalid or expired token")
	}
	return claims.UserID, nil
}
