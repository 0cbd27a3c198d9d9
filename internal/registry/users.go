package registry

import (
	"fmt"

	apperrors "github.com/allexsabbir/uiu-ums-go/internal/errors"
	"github.com/allexsabbir/uiu-ums-go/internal/records"
	"github.com/allexsabbir/uiu-ums-go/internal/recordstore"
)

// UserRepo stores login accounts keyed by unique username. Credential
// hashing and verification live in the auth package; the repo only
// persists what it is given.
type UserRepo struct {
	store *recordstore.Store[records.User]
}

func byUsername(username string) func(records.User) bool {
	return func(u records.User) bool { return u.Username == username }
}

// Insert appends a new login account, rejecting duplicate usernames.
func (r *UserRepo) Insert(u records.User) error {
	if err := records.Validate(u); err != nil {
		return err
	}
	if _, _, err := r.store.FindFirst(byUsername(u.Username)); err == nil {
		return fmt.Errorf("user %s: %w", u.Username, apperrors.ErrDuplicateKey)
	} else if !apperrors.IsNotFound(err) {
		return err
	}
	_, err := r.store.Append(u)
	return err
}

// FindByUsername returns the account with the given username, or ErrNotFound.
func (r *UserRepo) FindByUsername(username string) (records.User, error) {
	_, u, err := r.store.FindFirst(byUsername(username))
	if apperrors.IsNotFound(err) {
		return records.User{}, fmt.Errorf("user %s: %w", username, apperrors.ErrNotFound)
	}
	return u, err
}

// Count returns the number of login accounts. Seeding keys off this being
// zero on first run.
func (r *UserRepo) Count() int64 {
	return r.store.Count()
}
