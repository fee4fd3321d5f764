package domain

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// KindUser is the aggregate-counter kind for users; their role is the
// discriminant.
const KindUser = "user"

const (
	RoleUser      = "user"
	RoleDeveloper = "developer"
	RoleAdmin     = "admin"
)

var validRoles = map[string]struct{}{
	RoleUser:      {},
	RoleDeveloper: {},
	RoleAdmin:     {},
}

// User is an identity whose email, password, and role are mutable only through
// their validating setters. The password is held as a bcrypt hash; there is no
// way to read it back.
type User struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`

	email        string
	passwordHash string
	role         string
	lastLogin    time.Time
}

// NewUser creates a user from trusted initial values. An unknown role falls
// back to RoleUser rather than failing; construction never rejects. The only
// possible error is a bcrypt failure, which is a system error.
func NewUser(username, email, role, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &User{
		Username:     strings.TrimSpace(username),
		CreatedAt:    time.Now(),
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: string(hash),
		role:         canonicalRole(role),
	}, nil
}

// NewAdmin is a factory for admin users.
func NewAdmin(username, email, password string) (*User, error) {
	return NewUser(username, email, RoleAdmin, password)
}

func canonicalRole(role string) string {
	role = strings.ToLower(strings.TrimSpace(role))
	if _, ok := validRoles[role]; !ok {
		return RoleUser
	}
	return role
}

// Email returns the current email address.
func (u *User) Email() string { return u.email }

// SetEmail replaces the email if the trimmed candidate contains both '@' and
// '.'. The stored value is lower-cased.
func (u *User) SetEmail(candidate string) error {
	candidate = strings.TrimSpace(candidate)
	if !strings.Contains(candidate, "@") || !strings.Contains(candidate, ".") {
		return ErrInvalidEmail
	}
	u.email = strings.ToLower(candidate)
	return nil
}

// SetPassword replaces the password if the candidate is at least 8 characters.
func (u *User) SetPassword(candidate string) error {
	if len(candidate) < 8 {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(candidate), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.passwordHash = string(hash)
	return nil
}

// CheckPassword reports whether candidate matches the stored hash.
func (u *User) CheckPassword(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(candidate)) == nil
}

// Role returns the current role.
func (u *User) Role() string { return u.role }

// SetRole replaces the role if the candidate names a valid role. Input is
// case-insensitive; the canonical lower-case form is stored.
func (u *User) SetRole(candidate string) error {
	candidate = strings.ToLower(strings.TrimSpace(candidate))
	if _, ok := validRoles[candidate]; !ok {
		return ErrInvalidRole
	}
	u.role = candidate
	return nil
}

// RecordLogin stores the time of a successful login.
func (u *User) RecordLogin(at time.Time) { u.lastLogin = at }

// LastLogin returns the most recent login time, zero if the user never
// logged in.
func (u *User) LastLogin() time.Time { return u.lastLogin }
