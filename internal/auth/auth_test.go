package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allexsabbir/uiu-ums-go/internal/errors"
	"github.com/allexsabbir/uiu-ums-go/internal/records"
	"github.com/allexsabbir/uiu-ums-go/internal/registry"
)

func setupAuth(t *testing.T) *Authenticator {
	t.Helper()
	reg, err := registry.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = reg.Close() })
	return NewAuthenticator(reg.Users)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)

	// bcrypt hashes are 60 bytes and fit the credential field.
	assert.Len(t, hash, 60)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	_, err = HashPassword("")
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestRegisterAndLogin(t *testing.T) {
	a := setupAuth(t)
	require.NoError(t, a.Register("sabbir", records.RoleStudent, "02124100034", "student123"))

	u, err := a.Login("sabbir", "student123")
	require.NoError(t, err)
	assert.Equal(t, records.RoleStudent, u.Role)
	assert.Equal(t, "02124100034", u.RefID)
}

func TestLoginWrongPassword(t *testing.T) {
	a := setupAuth(t)
	require.NoError(t, a.Register("admin", records.RoleAdmin, "", "admin123"))

	_, err := a.Login("admin", "wrong")
	assert.True(t, apperrors.IsInvalidCredentials(err))
}

func TestLoginUnknownUser(t *testing.T) {
	a := setupAuth(t)

	// Indistinguishable from a wrong password.
	_, err := a.Login("nobody", "whatever")
	assert.True(t, apperrors.IsInvalidCredentials(err))
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	a := setupAuth(t)
	require.NoError(t, a.Register("admin", records.RoleAdmin, "", "admin123"))

	// Unknown user and wrong password yield the identical error value;
	// both paths also run one bcrypt compare so neither is cheaper.
	_, unknownErr := a.Login("nobody", "admin123")
	_, wrongErr := a.Login("admin", "wrong")
	assert.Equal(t, unknownErr, wrongErr)
	assert.True(t, apperrors.IsInvalidCredentials(unknownErr))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	a := setupAuth(t)
	require.NoError(t, a.Register("admin", records.RoleAdmin, "", "admin123"))

	err := a.Register("admin", records.RoleAdmin, "", "other")
	assert.True(t, apperrors.IsDuplicateKey(err))
}
