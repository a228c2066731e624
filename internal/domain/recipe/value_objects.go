// Package recipe contains the core domain logic for recipe management.
// Value objects are constructed exclusively through validating factories;
// an invalid value cannot exist once a factory has returned it. All
// factories are pure and never touch storage.
//
// Validation order is fixed for deterministic error reporting:
// presence check, then length/range check, then character/shape check.
package recipe

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Title is a recipe title, 3-50 characters with no control characters.
type Title struct {
	value string
}

// NewTitle validates and wraps a raw title.
func NewTitle(raw string) (Title, error) {
	if n := len([]rune(raw)); n < 3 || n > 50 {
		return Title{}, ErrTitleLengthOutOfRange
	}
	if containsControlChars(raw) {
		return Title{}, ErrTitleContainsUnallowedSymbol
	}
	return Title{value: raw}, nil
}

// Value returns the validated title string.
func (t Title) Value() string { return t.value }

// Description is a recipe description, 50-10000 characters.
type Description struct {
	value string
}

// NewDescription validates and wraps a raw description.
func NewDescription(raw string) (Description, error) {
	if n := len([]rune(raw)); n < 50 || n > 10000 {
		return Description{}, ErrDescriptionLengthOutOfRange
	}
	return Description{value: raw}, nil
}

// Value returns the validated description string.
func (d Description) Value() string { return d.value }

// Instruction is a recipe instruction, 10-10000 characters.
type Instruction struct {
	value string
}

// NewInstruction validates and wraps a raw instruction.
func NewInstruction(raw string) (Instruction, error) {
	if n := len([]rune(raw)); n < 10 || n > 10000 {
		return Instruction{}, ErrInstructionLengthOutOfRange
	}
	return Instruction{value: raw}, nil
}

// Value returns the validated instruction string.
func (i Instruction) Value() string { return i.value }

// MeasurementUnit enumerates the ingredient units the catalog accepts.
type MeasurementUnit string

const (
	UnitGrams       MeasurementUnit = "grams"
	UnitKilograms   MeasurementUnit = "kilograms"
	UnitMilliliters MeasurementUnit = "milliliters"
	UnitLiters      MeasurementUnit = "liters"
	UnitPieces      MeasurementUnit = "pieces"
	UnitCups        MeasurementUnit = "cups"
	UnitTablespoons MeasurementUnit = "tablespoons"
	UnitTeaspoons   MeasurementUnit = "teaspoons"
)

var measurementUnits = map[string]MeasurementUnit{
	string(UnitGrams):       UnitGrams,
	string(UnitKilograms):   UnitKilograms,
	string(UnitMilliliters): UnitMilliliters,
	string(UnitLiters):      UnitLiters,
	string(UnitPieces):      UnitPieces,
	string(UnitCups):        UnitCups,
	string(UnitTablespoons): UnitTablespoons,
	string(UnitTeaspoons):   UnitTeaspoons,
}

// ParseMeasurementUnit resolves a raw unit name case-insensitively.
func ParseMeasurementUnit(raw string) (MeasurementUnit, error) {
	unit, ok := measurementUnits[strings.ToLower(raw)]
	if !ok {
		return "", ErrIngredientMeasurementUnitIsNotDefined
	}
	return unit, nil
}

// Ingredient is an owned value of exactly one recipe: a name, a decimal
// count and a measurement unit. It has no identity of its own.
type Ingredient struct {
	name  string
	count float64
	unit  MeasurementUnit
}

const maxIngredientCount = 1_000_000

// NewIngredient validates the (name, count, unit) triple. The count bounds
// are exclusive on both ends: 0 < count < 1,000,000.
func NewIngredient(name string, count float64, rawUnit string) (Ingredient, error) {
	if n := len([]rune(name)); n < 3 || n > 50 {
		return Ingredient{}, ErrIngredientNameLengthOutOfRange
	}
	if containsControlChars(name) {
		return Ingredient{}, ErrIngredientNameContainsUnallowedSymbol
	}
	if count <= 0 || count >= maxIngredientCount {
		return Ingredient{}, ErrIngredientCountOutOfRange
	}
	unit, err := ParseMeasurementUnit(rawUnit)
	if err != nil {
		return Ingredient{}, err
	}
	return Ingredient{name: name, count: count, unit: unit}, nil
}

// Name returns the ingredient name.
func (i Ingredient) Name() string { return i.name }

// Count returns the ingredient amount.
func (i Ingredient) Count() float64 { return i.count }

// Unit returns the measurement unit.
func (i Ingredient) Unit() MeasurementUnit { return i.unit }

// Difficulty enumerates how demanding a recipe is to cook.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty resolves a raw difficulty name case-insensitively.
func ParseDifficulty(raw string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(raw)) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", ErrDifficultyIsNotDefined
	}
}

// MaxCookingTime is the exclusive upper bound for a recipe's cooking time.
const MaxCookingTime = 7 * 24 * time.Hour

// clockFormat matches [days.]hours:minutes[:seconds], the wire format the
// catalog has always accepted for cooking time.
var clockFormat = regexp.MustCompile(`^(?:(\d+)\.)?(\d{1,2}):(\d{2})(?::(\d{2}))?$`)

// ParseCookingTime parses a raw cooking time and enforces the shared
// bounds: 0 <= t < 7 days. Both the clock format ("1:30:00", "2.03:00:00")
// and Go duration syntax ("90m") are accepted and normalized here, so
// create and update cannot drift apart on what a valid cooking time is.
func ParseCookingTime(raw string) (time.Duration, error) {
	d, err := parseClockDuration(raw)
	if err != nil {
		d, err = time.ParseDuration(raw)
		if err != nil {
			return 0, ErrCookingTimeHasInvalidFormat
		}
	}

	if d < 0 {
		return 0, ErrCookingTimeIsTooSmall
	}
	if d >= MaxCookingTime {
		return 0, ErrCookingTimeIsTooHuge
	}
	return d, nil
}

func parseClockDuration(raw string) (time.Duration, error) {
	m := clockFormat.FindStringSubmatch(raw)
	if m == nil {
		return 0, ErrCookingTimeHasInvalidFormat
	}

	var days int
	if m[1] != "" {
		days, _ = strconv.Atoi(m[1])
	}
	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])
	var seconds int
	if m[4] != "" {
		seconds, _ = strconv.Atoi(m[4])
	}

	// Hours roll into the day component, never past 23; "26:00" is not a
	// valid clock time.
	if hours > 23 || minutes > 59 || seconds > 59 {
		return 0, ErrCookingTimeHasInvalidFormat
	}

	return time.Duration(days)*24*time.Hour +
		time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second, nil
}

// Stars is a user's rating of a recipe. Zero means "unrated" and is the
// value a retraction reports back; it is never a valid input.
type Stars int

const (
	StarsZero  Stars = 0
	StarsOne   Stars = 1
	StarsTwo   Stars = 2
	StarsThree Stars = 3
	StarsFour  Stars = 4
	StarsFive  Stars = 5
)

// NewStars validates a raw stars value as rating input: 1-5 inclusive.
func NewStars(raw int) (Stars, error) {
	if raw < int(StarsOne) || raw > int(StarsFive) {
		return StarsZero, ErrStarsAreNotDefined
	}
	return Stars(raw), nil
}

// CommentContent is comment text normalized to a single line:
// every line-ending run collapses to one space, 1-1500 characters,
// not all-whitespace.
type CommentContent struct {
	value string
}

var lineEndings = regexp.MustCompile(`[\r\n]+`)

// NewCommentContent normalizes and validates raw comment text.
func NewCommentContent(raw string) (CommentContent, error) {
	normalized := lineEndings.ReplaceAllString(raw, " ")
	if n := len([]rune(normalized)); n < 1 || n > 1500 {
		return CommentContent{}, ErrCommentLengthOutOfRange
	}
	if strings.TrimSpace(normalized) == "" {
		return CommentContent{}, ErrCommentLengthOutOfRange
	}
	return CommentContent{value: normalized}, nil
}

// Value returns the normalized comment text.
func (c CommentContent) Value() string { return c.value }

func containsControlChars(s string) bool {
	for _, r := range s {
		if r < 0x20 {
			return true
		}
	}
	return false
}
