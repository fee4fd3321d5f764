package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T) *User {
	t.Helper()
	user, err := NewUser("goddy", "goddy@gmail.com", RoleUser, "initial123")
	require.NoError(t, err)
	return user
}

func TestSetEmail(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      string
		rejected  bool
	}{
		{name: "valid", candidate: "new@example.com", want: "new@example.com"},
		{name: "lower-cased and trimmed", candidate: "  New@Example.COM  ", want: "new@example.com"},
		{name: "missing at sign", candidate: "invalid-email.com", rejected: true},
		{name: "missing dot", candidate: "invalid@email", rejected: true},
		{name: "empty", candidate: "", rejected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := newTestUser(t)
			err := user.SetEmail(tt.candidate)
			if tt.rejected {
				assert.ErrorIs(t, err, ErrInvalidEmail)
				assert.Equal(t, "goddy@gmail.com", user.Email(), "rejected write must keep previous value")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, user.Email())
		})
	}
}

func TestSetPassword(t *testing.T) {
	user := newTestUser(t)

	err := user.SetPassword("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
	assert.True(t, user.CheckPassword("initial123"), "rejected write must keep previous password")

	require.NoError(t, user.SetPassword("NewSecurePass123"))
	assert.True(t, user.CheckPassword("NewSecurePass123"))
	assert.False(t, user.CheckPassword("initial123"))
}

func TestSetPasswordBoundary(t *testing.T) {
	user := newTestUser(t)
	assert.ErrorIs(t, user.SetPassword("1234567"), ErrPasswordTooShort)
	assert.NoError(t, user.SetPassword("12345678"))
}

func TestSetRole(t *testing.T) {
	user := newTestUser(t)

	require.NoError(t, user.SetRole("ADMIN"))
	assert.Equal(t, RoleAdmin, user.Role())

	err := user.SetRole("wizard")
	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.Equal(t, RoleAdmin, user.Role())
}

func TestNewUserCanonicalizesRole(t *testing.T) {
	user, err := NewUser("bob", "bob@example.com", "DEVELOPER", "dev123456")
	require.NoError(t, err)
	assert.Equal(t, RoleDeveloper, user.Role())

	fallbackUser, err := NewUser("eve", "eve@example.com", "nonsense", "eve123456")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, fallbackUser.Role())
}

func TestNewAdmin(t *testing.T) {
	admin, err := NewAdmin("steven", "steven@example.com", "steven123456")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, admin.Role())
}

func TestRecordLogin(t *testing.T) {
	user := newTestUser(t)
	assert.True(t, user.LastLogin().IsZero())

	at := time.Now()
	user.RecordLogin(at)
	assert.Equal(t, at, user.LastLogin())
}
