// Package user defines the user domain entity and its value objects.
package user

import (
	"regexp"
	"strings"
)

// Username is a unique account handle: 4-30 characters, letters, digits,
// underscore and hyphen, starting with a letter and not ending with a
// separator.
type Username struct {
	value string
}

var usernameShape = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*[a-zA-Z0-9]$`)

// NewUsername validates and wraps a raw username.
func NewUsername(raw string) (Username, error) {
	if n := len([]rune(raw)); n < 4 || n > 30 {
		return Username{}, ErrUsernameLengthOutOfRange
	}
	if !usernameShape.MatchString(raw) {
		return Username{}, ErrUsernameUnallowedSymbols
	}
	return Username{value: raw}, nil
}

// Value returns the validated username string.
func (u Username) Value() string { return u.value }

// Equals compares usernames case-sensitively.
func (u Username) Equals(other Username) bool { return u.value == other.value }

// PasswordHash is an opaque hashed password. The domain never sees plain
// text; hashing and verification belong to the PasswordHasher collaborator.
type PasswordHash struct {
	value string
}

// NewPasswordHash wraps an already-hashed password from the hasher or the
// store.
func NewPasswordHash(hash string) PasswordHash { return PasswordHash{value: hash} }

// Value returns the opaque hash string.
func (p PasswordHash) Value() string { return p.value }

// Role is the authorization level of an account.
type Role string

const (
	RoleClassic Role = "classic"
	RoleAdmin   Role = "admin"
)

// ParseRole resolves a stored role name case-insensitively, defaulting
// unknown values to the least-privileged role.
func ParseRole(raw string) Role {
	if Role(strings.ToLower(raw)) == RoleAdmin {
		return RoleAdmin
	}
	return RoleClassic
}

// User is a registered account. Recipes reference their author by id only;
// the aggregate boundary of a recipe does not include its author.
type User struct {
	ID       int64
	Username Username
	Password PasswordHash
	Role     Role
}

// IsAdmin reports whether the account holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
