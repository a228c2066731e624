package recipe

import "github.com/recipehub/backend/pkg/errors"

// Domain validation errors. Each is a singleton so callers can match with
// errors.Is; none of them carries transport concerns.
var (
	ErrTitleLengthOutOfRange        = errors.NewValidation("TITLE_LENGTH_OUT_OF_RANGE", "recipe title length is out of range")
	ErrTitleContainsUnallowedSymbol = errors.NewValidation("TITLE_CONTAINS_UNALLOWED_SYMBOL", "recipe title contains an unallowed symbol")

	ErrDescriptionLengthOutOfRange = errors.NewValidation("DESCRIPTION_LENGTH_OUT_OF_RANGE", "recipe description length is out of range")
	ErrInstructionLengthOutOfRange = errors.NewValidation("INSTRUCTION_LENGTH_OUT_OF_RANGE", "recipe instruction length is out of range")

	ErrIngredientNameLengthOutOfRange        = errors.NewValidation("INGREDIENT_NAME_LENGTH_OUT_OF_RANGE", "ingredient name length is out of range")
	ErrIngredientNameContainsUnallowedSymbol = errors.NewValidation("INGREDIENT_NAME_CONTAINS_UNALLOWED_SYMBOL", "ingredient name contains an unallowed symbol")
	ErrIngredientCountOutOfRange             = errors.NewValidation("INGREDIENT_COUNT_OUT_OF_RANGE", "ingredient count is out of range")
	ErrIngredientMeasurementUnitIsNotDefined = errors.NewValidation("INGREDIENT_MEASUREMENT_UNIT_IS_NOT_DEFINED", "ingredient measurement unit is not defined")

	ErrDifficultyIsNotDefined = errors.NewValidation("DIFFICULTY_IS_NOT_DEFINED", "recipe difficulty is not defined")

	ErrCookingTimeHasInvalidFormat = errors.NewValidation("COOKING_TIME_HAS_INVALID_FORMAT", "cooking time format is not recognized")
	ErrCookingTimeIsTooHuge        = errors.NewValidation("COOKING_TIME_IS_TOO_HUGE", "cooking time is too huge")
	ErrCookingTimeIsTooSmall       = errors.NewValidation("COOKING_TIME_IS_TOO_SMALL", "cooking time is negative")

	ErrNoIngredientsProvided = errors.NewValidation("NO_INGREDIENTS_PROVIDED", "recipe must have at least one ingredient")

	ErrStarsAreNotDefined = errors.NewValidation("STARS_ARE_NOT_DEFINED", "stars value is not a defined rating")

	ErrCommentLengthOutOfRange = errors.NewValidation("COMMENT_LENGTH_OUT_OF_RANGE", "comment length is out of range")
)
