package inbound

import (
	"context"

	"github.com/recipehub/backend/internal/domain/recipe"
)

// RecipeService is the application contract for the recipe catalog.
type RecipeService interface {
	// Create validates and publishes a new recipe, returning its id.
	Create(ctx context.Context, cmd CreateRecipeCommand) (int64, error)

	// Update applies a sparse patch; only the author may edit.
	Update(ctx context.Context, cmd UpdateRecipeCommand) error

	// Rate toggles a rating and returns the stars now in effect,
	// StarsZero after a retraction. Authors cannot rate their own work.
	Rate(ctx context.Context, cmd RateRecipeCommand) (recipe.Stars, error)

	// Comment attaches a comment to a recipe.
	Comment(ctx context.Context, cmd CommentRecipeCommand) error

	// Delete removes a recipe; allowed for the author and for admins.
	Delete(ctx context.Context, recipeID, userID int64) error

	// GetByID loads the full aggregate.
	GetByID(ctx context.Context, id int64) (*recipe.Recipe, error)

	// GetByPage returns one catalog page; out-of-range paging inputs
	// and unknown sorts fall back to defaults instead of failing.
	GetByPage(ctx context.Context, page, pageSize int, sort string) ([]RecipeSummary, error)

	// GetByQuery searches titles and descriptions case-insensitively.
	GetByQuery(ctx context.Context, query string) ([]RecipeSummary, error)
}

// UserService is the application contract for accounts.
type UserService interface {
	// Register creates an account and returns a signed token for it.
	Register(ctx context.Context, creds Credentials) (string, error)

	// Login verifies credentials and returns a signed token.
	Login(ctx context.Context, creds Credentials) (string, error)

	// ChangePassword rotates the password after checking the current one.
	ChangePassword(ctx context.Context, cmd ChangePasswordCommand) error

	// GetByID returns the public profile with the user's recipes.
	GetByID(ctx context.Context, id int64) (*UserProfile, error)
}
