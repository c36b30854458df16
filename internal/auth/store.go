package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// CredentialStore persists the username → password-hash mapping. Usernames are
// matched exactly: no trimming, no case folding.
type CredentialStore interface {
	// Register creates the user and returns its id, or ErrDuplicateUsername if
	// the username is already taken. The caller supplies an already-hashed
	// password; plaintext never reaches the store.
	Register(ctx context.Context, username, passwordHash string) (uint, error)

	// FindByUsername returns the user or ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*User, error)
}

// GormCredentialStore is the Postgres-backed CredentialStore.
type GormCredentialStore struct {
	db *gorm.DB
}

func NewGormCredentialStore(db *gorm.DB) *GormCredentialStore {
	return &GormCredentialStore{db: db}
}

func (s *GormCredentialStore) Register(ctx context.Context, username, passwordHash string) (uint, error) {
	user := User{Username: username, PasswordHash: passwordHash}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateUsername
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	return user.ID, nil
}

func (s *GormCredentialStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
