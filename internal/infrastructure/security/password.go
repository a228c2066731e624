// Package security provides the password hashing, token and admin-policy
// adapters.
package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/recipehub/backend/internal/domain/user"
)

// BcryptHasher implements outbound.PasswordHasher with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a hasher; a cost outside bcrypt's range falls back
// to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash derives a bcrypt hash from the plain password.
func (h *BcryptHasher) Hash(plain string) (user.PasswordHash, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return user.PasswordHash{}, fmt.Errorf("hash password: %w", err)
	}
	return user.NewPasswordHash(string(hashed)), nil
}

// Verify reports whether the plain password matches the stored hash.
func (h *BcryptHasher) Verify(plain string, hash user.PasswordHash) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash.Value()), []byte(plain)) == nil
}
