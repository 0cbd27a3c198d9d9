// Package auth handles login credentials: bcrypt hashing on account
// creation and verification at login. It decides nothing about what a
// logged-in user may do; role gating is the console's concern.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/allexsabbir/uiu-ums-go/internal/errors"
	"github.com/allexsabbir/uiu-ums-go/internal/records"
	"github.com/allexsabbir/uiu-ums-go/internal/registry"
)

// HashPassword derives a bcrypt hash for storage in the user record's
// fixed-width credential field (a bcrypt hash is 60 bytes).
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", apperrors.NewValidationError("password", "must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Authenticator verifies logins against the user repository.
type Authenticator struct {
	users *registry.UserRepo
}

// NewAuthenticator creates an authenticator over the given user repository.
func NewAuthenticator(users *registry.UserRepo) *Authenticator {
	return &Authenticator{users: users}
}

// Register creates a login account with a freshly hashed credential.
func (a *Authenticator) Register(username string, role records.Role, refID, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	return a.users.Insert(records.User{
		Username:       username,
		Role:           role,
		RefID:          refID,
		CredentialHash: hash,
	})
}

// dummyHash is a well-formed bcrypt hash. The not-found path compares
// against it and discards the result, so a failed login costs one bcrypt
// comparison whether or not the username exists.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Login checks the username/password pair and returns the account on
// success. Unknown usernames and wrong passwords are indistinguishable to
// the caller: both yield ErrInvalidCredentials, and both cost one bcrypt
// comparison.
func (a *Authenticator) Login(username, password string) (records.User, error) {
	u, err := a.users.FindByUsername(username)
	if apperrors.IsNotFound(err) {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return records.User{}, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return records.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.CredentialHash), []byte(password)) != nil {
		return records.User{}, apperrors.ErrInvalidCredentials
	}
	return u, nil
}
