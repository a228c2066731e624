package recipe

import "time"

// Rate is the denormalized rating summary cached on a recipe. The rating
// rows are the source of truth; Rate is always recomputed from them inside
// the same atomic unit as a rating write, never adjusted in place.
type Rate struct {
	Value float64
	Votes int
}

// DefaultRate is the summary of a recipe nobody has rated yet.
var DefaultRate = Rate{Value: 0, Votes: 0}

// Comment is an append-only remark on a recipe. The author reference is
// weak: when the author account is deleted the comment survives with a nil
// AuthorID.
type Comment struct {
	AuthorID       *int64
	AuthorUsername string
	Content        CommentContent
	PublishedAt    time.Time
}

// Recipe is the aggregate root: the recipe row together with its owned
// ingredients and comments, one consistency boundary. Field invariants are
// carried by the value-object types; the aggregate adds the creation-time
// rule that at least one ingredient must be present.
type Recipe struct {
	ID          int64
	AuthorID    int64
	Title       Title
	Description Description
	Instruction Instruction
	ImageName   string
	Difficulty  Difficulty
	PublishedAt time.Time
	CookingTime time.Duration
	Rate        Rate
	Ingredients []Ingredient
	Comments    []Comment
}

// New assembles a recipe from already-validated value objects. The
// ingredient list must not be empty; PublishedAt is set once here and
// never changes. Rate starts at its zero summary.
func New(
	authorID int64,
	title Title,
	description Description,
	instruction Instruction,
	imageName string,
	difficulty Difficulty,
	cookingTime time.Duration,
	ingredients []Ingredient,
) (*Recipe, error) {
	if len(ingredients) == 0 {
		return nil, ErrNoIngredientsProvided
	}

	return &Recipe{
		AuthorID:    authorID,
		Title:       title,
		Description: description,
		Instruction: instruction,
		ImageName:   imageName,
		Difficulty:  difficulty,
		PublishedAt: time.Now().UTC(),
		CookingTime: cookingTime,
		Rate:        DefaultRate,
		Ingredients: ingredients,
	}, nil
}

// IsAuthoredBy reports whether the given user owns this recipe.
func (r *Recipe) IsAuthoredBy(userID int64) bool {
	return r.AuthorID == userID
}
