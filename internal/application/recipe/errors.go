package recipe

import "github.com/recipehub/backend/pkg/errors"

var (
	// ErrRecipeNotFound is returned when the target recipe does not exist.
	ErrRecipeNotFound = errors.NewNotFound("RECIPE_NOT_FOUND", "recipe not found")

	// ErrUserIsNotAuthor guards edit and delete against non-authors.
	ErrUserIsNotAuthor = errors.NewAuthorization("USER_IS_NOT_AUTHOR", "only the author may modify this recipe")

	// ErrUserIsAuthor blocks authors from rating their own recipes.
	ErrUserIsAuthor = errors.NewAuthorization("USER_IS_AUTHOR", "authors cannot rate their own recipes")
)
