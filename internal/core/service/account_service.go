package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/bakeryshop/cart-service/internal/core/domain"
	"github.com/bakeryshop/cart-service/internal/port"
)

// AccountService is the credential store: it creates accounts and validates
// the opaque credential supplied in the Authorization header.
type AccountService struct {
	db     port.DatabaseRepository
	logger *zap.Logger
}

func NewAccountService(db port.DatabaseRepository, logger *zap.Logger) *AccountService {
	return &AccountService{db: db, logger: logger}
}

func (s *AccountService) Create(ctx context.Context, username, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.db.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("account created", zap.String("username", username))
	return &user, nil
}

// Verify decodes a Basic credential, loads the account and compares the
// password against the stored bcrypt hash. Any failure maps to Unauthorized;
// callers learn nothing about which step rejected the credential.
func (s *AccountService) Verify(ctx context.Context, authHeader string) (*domain.User, error) {
	username, password, ok := decodeBasicCredential(authHeader)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.db.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

func decodeBasicCredential(header string) (username, password string, ok bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, prefix))
	if err != nil {
		return "", "", false
	}
	username, password, ok = strings.Cut(string(decoded), ":")
	return username, password, ok
}
