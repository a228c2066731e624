// Package outbound defines the interfaces for outbound ports (secondary,
// driven adapters). The application layer depends on these contracts; the
// infrastructure layer implements them.
package outbound

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/recipehub/backend/internal/domain/recipe"
	"github.com/recipehub/backend/internal/domain/user"
)

// ErrDuplicateUsername is reported by UserRepository.Insert when the
// username unique constraint fires. The use case maps it to its own
// conflict error; adapters never import application packages.
var ErrDuplicateUsername = errors.New("username already taken")

// RecipeUpdate is the sparse patch applied by RecipeRepository.Update.
// A nil field means "leave unchanged"; a set field replaces the whole
// recipe field. A non-nil Ingredients slice replaces the entire ingredient
// set (delete-then-insert, never a merge).
type RecipeUpdate struct {
	RecipeID    int64
	Title       *recipe.Title
	Description *recipe.Description
	Instruction *recipe.Instruction
	ImageName   *string
	Difficulty  *recipe.Difficulty
	CookingTime *time.Duration
	Ingredients []recipe.Ingredient
}

// IsEmpty reports whether the patch carries no field at all.
func (u RecipeUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Instruction == nil &&
		u.ImageName == nil && u.Difficulty == nil && u.CookingTime == nil &&
		u.Ingredients == nil
}

// RecipeRepository is the persistence contract for the recipe aggregate.
//
// All mutation of the denormalized Rate summary goes through RateToggle;
// no other method may write recipes.rating or recipes.votes.
type RecipeRepository interface {
	// Insert persists a new recipe with its ingredients in one
	// transaction and returns the assigned id.
	Insert(ctx context.Context, r *recipe.Recipe) (int64, error)

	// FindByID loads the full aggregate (ingredients, comments
	// newest-first) or returns (nil, nil) when absent.
	FindByID(ctx context.Context, id int64) (*recipe.Recipe, error)

	// RateToggle applies the toggle protocol atomically: an existing
	// rating with the same stars is retracted (returns StarsZero), any
	// other input is upserted (returns the input), and the recipe's
	// Rate summary is recomputed from the rating rows inside the same
	// transaction.
	RateToggle(ctx context.Context, recipeID, userID int64, stars recipe.Stars) (recipe.Stars, error)

	// InsertComment appends a comment row; no aggregate recompute is
	// needed.
	InsertComment(ctx context.Context, recipeID, userID int64, content recipe.CommentContent, publishedAt time.Time) error

	// FindByPage returns one catalog page, already ordered by the sort
	// type. Ingredients and comments are not loaded.
	FindByPage(ctx context.Context, page, pageSize int, sort recipe.SortType) ([]*recipe.Recipe, error)

	// FindByQuery returns recipes whose title or description contains
	// the text case-insensitively, title matches ranked first.
	FindByQuery(ctx context.Context, query string) ([]*recipe.Recipe, error)

	// FindByAuthor returns a user's recipes ordered by votes then
	// rating, both descending.
	FindByAuthor(ctx context.Context, authorID int64) ([]*recipe.Recipe, error)

	// Update applies a sparse patch in one transaction.
	Update(ctx context.Context, patch RecipeUpdate) error

	// Delete removes the recipe; ingredients, comments and rating rows
	// cascade with it.
	Delete(ctx context.Context, id int64) error
}

// UserRepository is the persistence contract for accounts.
type UserRepository interface {
	// Insert persists a new user and returns the assigned id, or
	// ErrDuplicateUsername when the handle is taken.
	Insert(ctx context.Context, u *user.User) (int64, error)

	// FindByID returns the user or (nil, nil) when absent.
	FindByID(ctx context.Context, id int64) (*user.User, error)

	// FindByUsername returns the user or (nil, nil) when absent.
	FindByUsername(ctx context.Context, username user.Username) (*user.User, error)

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id int64, hash user.PasswordHash) error
}

// PasswordHasher hashes and verifies passwords; the scheme is opaque to
// the core.
type PasswordHasher interface {
	Hash(plain string) (user.PasswordHash, error)
	Verify(plain string, hash user.PasswordHash) bool
}

// TokenSigner issues an authentication token for a user id. Issuer,
// audience and expiry are configured on the implementation.
type TokenSigner interface {
	Sign(userID int64) (string, error)
}

// AdminPolicy decides whether a username registers with the admin role.
// Consulted only at registration time.
type AdminPolicy interface {
	IsAdminUsername(username user.Username) bool
}

// FileStorage stores uploaded recipe images under opaque generated names.
type FileStorage interface {
	GenerateName(originalName string) string
	Save(ctx context.Context, name string, content io.Reader) error
}
