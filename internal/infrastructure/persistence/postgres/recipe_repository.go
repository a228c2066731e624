package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recipehub/backend/internal/domain/recipe"
	"github.com/recipehub/backend/internal/ports/outbound"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// RecipeRepository implements outbound.RecipeRepository.
type RecipeRepository struct {
	pool *pgxpool.Pool
}

// NewRecipeRepository builds the repository.
func NewRecipeRepository(pool *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{pool: pool}
}

// Insert stores the recipe and its ingredients in one transaction.
func (r *RecipeRepository) Insert(ctx context.Context, rec *recipe.Recipe) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	const query = `
		INSERT INTO recipes (author_id, title, description, instruction, image_name,
		                     difficulty, published_at, cooking_time, rating, votes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id int64
	err = tx.QueryRow(ctx, query,
		rec.AuthorID,
		rec.Title.Value(),
		rec.Description.Value(),
		rec.Instruction.Value(),
		rec.ImageName,
		string(rec.Difficulty),
		rec.PublishedAt,
		rec.CookingTime.Nanoseconds(),
		rec.Rate.Value,
		rec.Rate.Votes,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert recipe: %w", err)
	}

	if err := insertIngredients(ctx, tx, id, rec.Ingredients); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return id, nil
}

// FindByID loads the full aggregate, comments newest-first, or (nil, nil)
// when the recipe does not exist.
func (r *RecipeRepository) FindByID(ctx context.Context, id int64) (*recipe.Recipe, error) {
	const recipeQuery = `
		SELECT id, author_id, title, description, instruction, image_name,
		       difficulty, published_at, cooking_time, rating, votes
		FROM recipes
		WHERE id = $1`

	rec, err := scanRecipe(r.pool.QueryRow(ctx, recipeQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	const ingredientsQuery = `
		SELECT name, count, unit
		FROM ingredients
		WHERE recipe_id = $1
		ORDER BY id`

	rows, err := r.pool.Query(ctx, ingredientsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("query ingredients: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			name  string
			count float64
			unit  string
		)
		if err := rows.Scan(&name, &count, &unit); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		ingredient, err := recipe.NewIngredient(name, count, unit)
		if err != nil {
			return nil, fmt.Errorf("stored ingredient %q: %w", name, err)
		}
		rec.Ingredients = append(rec.Ingredients, ingredient)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ingredients: %w", err)
	}

	const commentsQuery = `
		SELECT c.user_id, COALESCE(u.username, ''), c.content, c.published_at
		FROM comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.recipe_id = $1
		ORDER BY c.published_at DESC`

	commentRows, err := r.pool.Query(ctx, commentsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer commentRows.Close()
	for commentRows.Next() {
		var (
			authorID    *int64
			username    string
			rawContent  string
			publishedAt time.Time
		)
		if err := commentRows.Scan(&authorID, &username, &rawContent, &publishedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		content, err := recipe.NewCommentContent(rawContent)
		if err != nil {
			return nil, fmt.Errorf("stored comment: %w", err)
		}
		rec.Comments = append(rec.Comments, recipe.Comment{
			AuthorID:       authorID,
			AuthorUsername: username,
			Content:        content,
			PublishedAt:    publishedAt,
		})
	}
	if err := commentRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	return rec, nil
}

// RateToggle applies the toggle protocol. The recipe row is locked first so
// concurrent presses on the same recipe serialize and the recomputed
// summary always matches the rating rows.
func (r *RecipeRepository) RateToggle(ctx context.Context, recipeID, userID int64, stars recipe.Stars) (recipe.Stars, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return recipe.StarsZero, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var locked int64
	err = tx.QueryRow(ctx, `SELECT id FROM recipes WHERE id = $1 FOR UPDATE`, recipeID).Scan(&locked)
	if err != nil {
		return recipe.StarsZero, fmt.Errorf("lock recipe: %w", err)
	}

	var existing int
	err = tx.QueryRow(ctx,
		`SELECT stars FROM recipe_ratings WHERE recipe_id = $1 AND user_id = $2`,
		recipeID, userID,
	).Scan(&existing)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return recipe.StarsZero, fmt.Errorf("load rating: %w", err)
	}

	result := stars
	if existing == int(stars) {
		_, err = tx.Exec(ctx,
			`DELETE FROM recipe_ratings WHERE recipe_id = $1 AND user_id = $2`,
			recipeID, userID)
		if err != nil {
			return recipe.StarsZero, fmt.Errorf("delete rating: %w", err)
		}
		result = recipe.StarsZero
	} else {
		_, err = tx.Exec(ctx, `
			INSERT INTO recipe_ratings (recipe_id, user_id, stars)
			VALUES ($1, $2, $3)
			ON CONFLICT (recipe_id, user_id) DO UPDATE SET stars = EXCLUDED.stars`,
			recipeID, userID, int(stars))
		if err != nil {
			return recipe.StarsZero, fmt.Errorf("upsert rating: %w", err)
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE recipes SET
			votes  = (SELECT COUNT(*) FROM recipe_ratings WHERE recipe_id = $1),
			rating = (SELECT COALESCE(AVG(stars), 0) FROM recipe_ratings WHERE recipe_id = $1)
		WHERE id = $1`,
		recipeID)
	if err != nil {
		return recipe.StarsZero, fmt.Errorf("recompute rating: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return recipe.StarsZero, fmt.Errorf("commit tx: %w", err)
	}
	return result, nil
}

// InsertComment appends a comment row.
func (r *RecipeRepository) InsertComment(ctx context.Context, recipeID, userID int64, content recipe.CommentContent, publishedAt time.Time) error {
	const query = `
		INSERT INTO comments (recipe_id, user_id, content, published_at)
		VALUES ($1, $2, $3, $4)`
	if _, err := r.pool.Exec(ctx, query, recipeID, userID, content.Value(), publishedAt); err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// FindByPage returns one catalog page.
func (r *RecipeRepository) FindByPage(ctx context.Context, page, pageSize int, sort recipe.SortType) ([]*recipe.Recipe, error) {
	builder := psql.
		Select("id", "author_id", "title", "description", "instruction", "image_name",
			"difficulty", "published_at", "cooking_time", "rating", "votes").
		From("recipes").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize))

	switch sort {
	case recipe.SortNewest:
		builder = builder.OrderBy("published_at DESC")
	default:
		builder = builder.OrderBy("votes DESC", "rating DESC")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build page query: %w", err)
	}
	return r.queryRecipes(ctx, query, args...)
}

// FindByQuery searches titles and descriptions case-insensitively. Title
// matches rank ahead of description-only matches, ties broken by
// popularity.
func (r *RecipeRepository) FindByQuery(ctx context.Context, query string) ([]*recipe.Recipe, error) {
	pattern := "%" + query + "%"
	builder := psql.
		Select("id", "author_id", "title", "description", "instruction", "image_name",
			"difficulty", "published_at", "cooking_time", "rating", "votes").
		From("recipes").
		Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
		}).
		OrderByClause("CASE WHEN title ILIKE ? THEN 0 ELSE 1 END", pattern).
		OrderBy("votes DESC", "rating DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}
	return r.queryRecipes(ctx, sql, args...)
}

// FindByAuthor returns a user's recipes, best rated first.
func (r *RecipeRepository) FindByAuthor(ctx context.Context, authorID int64) ([]*recipe.Recipe, error) {
	builder := psql.
		Select("id", "author_id", "title", "description", "instruction", "image_name",
			"difficulty", "published_at", "cooking_time", "rating", "votes").
		From("recipes").
		Where(sq.Eq{"author_id": authorID}).
		OrderBy("votes DESC", "rating DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build author query: %w", err)
	}
	return r.queryRecipes(ctx, sql, args...)
}

// Update applies a sparse patch. A non-nil ingredient slice replaces the
// whole set in the same transaction.
func (r *RecipeRepository) Update(ctx context.Context, patch outbound.RecipeUpdate) error {
	if patch.IsEmpty() {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	builder := psql.Update("recipes").Where(sq.Eq{"id": patch.RecipeID})
	touched := false
	if patch.Title != nil {
		builder = builder.Set("title", patch.Title.Value())
		touched = true
	}
	if patch.Description != nil {
		builder = builder.Set("description", patch.Description.Value())
		touched = true
	}
	if patch.Instruction != nil {
		builder = builder.Set("instruction", patch.Instruction.Value())
		touched = true
	}
	if patch.ImageName != nil {
		builder = builder.Set("image_name", *patch.ImageName)
		touched = true
	}
	if patch.Difficulty != nil {
		builder = builder.Set("difficulty", string(*patch.Difficulty))
		touched = true
	}
	if patch.CookingTime != nil {
		builder = builder.Set("cooking_time", patch.CookingTime.Nanoseconds())
		touched = true
	}

	if touched {
		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("build update query: %w", err)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("update recipe: %w", err)
		}
	}

	if patch.Ingredients != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM ingredients WHERE recipe_id = $1`, patch.RecipeID); err != nil {
			return fmt.Errorf("delete ingredients: %w", err)
		}
		if err := insertIngredients(ctx, tx, patch.RecipeID, patch.Ingredients); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Delete removes the recipe. Ingredients, comments and rating rows go with
// it through the foreign keys.
func (r *RecipeRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

func (r *RecipeRepository) queryRecipes(ctx context.Context, query string, args ...any) ([]*recipe.Recipe, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recipes: %w", err)
	}
	defer rows.Close()

	recipes := make([]*recipe.Recipe, 0)
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return recipes, nil
}

func scanRecipe(row pgx.Row) (*recipe.Recipe, error) {
	var (
		id             int64
		authorID       int64
		rawTitle       string
		rawDescription string
		rawInstruction string
		imageName      string
		rawDifficulty  string
		publishedAt    time.Time
		cookingTimeNs  int64
		rating         float64
		votes          int
	)
	err := row.Scan(&id, &authorID, &rawTitle, &rawDescription, &rawInstruction,
		&imageName, &rawDifficulty, &publishedAt, &cookingTimeNs, &rating, &votes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan recipe: %w", err)
	}

	title, err := recipe.NewTitle(rawTitle)
	if err != nil {
		return nil, fmt.Errorf("stored title: %w", err)
	}
	description, err := recipe.NewDescription(rawDescription)
	if err != nil {
		return nil, fmt.Errorf("stored description: %w", err)
	}
	instruction, err := recipe.NewInstruction(rawInstruction)
	if err != nil {
		return nil, fmt.Errorf("stored instruction: %w", err)
	}
	difficulty, err := recipe.ParseDifficulty(rawDifficulty)
	if err != nil {
		return nil, fmt.Errorf("stored difficulty: %w", err)
	}

	return &recipe.Recipe{
		ID:          id,
		AuthorID:    authorID,
		Title:       title,
		Description: description,
		Instruction: instruction,
		ImageName:   imageName,
		Difficulty:  difficulty,
		PublishedAt: publishedAt,
		CookingTime: time.Duration(cookingTimeNs),
		Rate:        recipe.Rate{Value: rating, Votes: votes},
	}, nil
}

func insertIngredients(ctx context.Context, tx pgx.Tx, recipeID int64, ingredients []recipe.Ingredient) error {
	if len(ingredients) == 0 {
		return nil
	}
	builder := psql.Insert("ingredients").Columns("recipe_id", "name", "count", "unit")
	for _, ingredient := range ingredients {
		builder = builder.Values(recipeID, ingredient.Name(), ingredient.Count(), string(ingredient.Unit()))
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build ingredients query: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert ingredients: %w", err)
	}
	return nil
}
