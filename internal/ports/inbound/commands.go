// Package inbound defines the interfaces and commands for inbound ports
// (primary, driving adapters). HTTP handlers talk to the application layer
// exclusively through these types.
package inbound

import "time"

// IngredientCommand carries one raw ingredient from the caller.
type IngredientCommand struct {
	Name  string
	Count float64
	Unit  string
}

// CreateRecipeCommand carries the raw fields to publish a recipe. All
// validation happens inside the service.
type CreateRecipeCommand struct {
	AuthorID    int64
	Title       string
	Description string
	Instruction string
	ImageName   string
	Difficulty  string
	CookingTime string
	Ingredients []IngredientCommand
}

// UpdateRecipeCommand is a sparse patch: a nil field is untouched, a set
// field replaces the recipe field wholesale. Ingredients follows the same
// rule at the slice level, so a non-nil empty slice is an explicit (and
// rejected) request to remove all ingredients.
type UpdateRecipeCommand struct {
	RecipeID    int64
	EditorID    int64
	Title       *string
	Description *string
	Instruction *string
	ImageName   *string
	Difficulty  *string
	CookingTime *string
	Ingredients []IngredientCommand
}

// RateRecipeCommand carries one rating press. Re-sending the current
// stars retracts the rating.
type RateRecipeCommand struct {
	RecipeID int64
	UserID   int64
	Stars    int
}

// CommentRecipeCommand carries raw comment text for a recipe.
type CommentRecipeCommand struct {
	RecipeID int64
	AuthorID int64
	Content  string
}

// Credentials is the register/login payload.
type Credentials struct {
	Username string
	Password string
}

// ChangePasswordCommand rotates a user's password after verifying the
// current one.
type ChangePasswordCommand struct {
	UserID          int64
	CurrentPassword string
	NewPassword     string
}

// RecipeSummary is the catalog/profile projection of a recipe, without
// ingredients or comments.
type RecipeSummary struct {
	ID          int64
	Title       string
	ImageName   string
	Difficulty  string
	Rating      float64
	Votes       int
	PublishedAt time.Time
}

// UserProfile is the public view of an account together with its
// published recipes.
type UserProfile struct {
	ID       int64
	Username string
	Role     string
	Recipes  []RecipeSummary
}
