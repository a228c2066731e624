// Package recipe implements the recipe catalog use cases.
package recipe

import (
	"context"
	"time"

	"go.uber.org/zap"

	userapp "github.com/recipehub/backend/internal/application/user"
	domain "github.com/recipehub/backend/internal/domain/recipe"
	"github.com/recipehub/backend/internal/ports/inbound"
	"github.com/recipehub/backend/internal/ports/outbound"
	"github.com/recipehub/backend/pkg/errors"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// Service implements inbound.RecipeService.
type Service struct {
	recipes outbound.RecipeRepository
	users   outbound.UserRepository
	logger  *zap.Logger
}

// NewService builds the recipe service.
func NewService(recipes outbound.RecipeRepository, users outbound.UserRepository, logger *zap.Logger) *Service {
	return &Service{
		recipes: recipes,
		users:   users,
		logger:  logger.Named("recipe-service"),
	}
}

// Create validates every field, assembles the aggregate and persists it.
func (s *Service) Create(ctx context.Context, cmd inbound.CreateRecipeCommand) (int64, error) {
	author, err := s.users.FindByID(ctx, cmd.AuthorID)
	if err != nil {
		s.logger.Error("failed to load author", zap.Int64("author_id", cmd.AuthorID), zap.Error(err))
		return 0, errors.NewInternal("load author", err)
	}
	if author == nil {
		return 0, userapp.ErrUserIdNotFound
	}

	title, err := domain.NewTitle(cmd.Title)
	if err != nil {
		return 0, err
	}
	description, err := domain.NewDescription(cmd.Description)
	if err != nil {
		return 0, err
	}
	instruction, err := domain.NewInstruction(cmd.Instruction)
	if err != nil {
		return 0, err
	}
	difficulty, err := domain.ParseDifficulty(cmd.Difficulty)
	if err != nil {
		return 0, err
	}
	cookingTime, err := domain.ParseCookingTime(cmd.CookingTime)
	if err != nil {
		return 0, err
	}
	ingredients, err := buildIngredients(cmd.Ingredients)
	if err != nil {
		return 0, err
	}

	r, err := domain.New(cmd.AuthorID, title, description, instruction, cmd.ImageName, difficulty, cookingTime, ingredients)
	if err != nil {
		return 0, err
	}

	id, err := s.recipes.Insert(ctx, r)
	if err != nil {
		s.logger.Error("failed to insert recipe", zap.Int64("author_id", cmd.AuthorID), zap.Error(err))
		return 0, errors.NewInternal("insert recipe", err)
	}
	s.logger.Info("recipe created", zap.Int64("recipe_id", id), zap.Int64("author_id", cmd.AuthorID))
	return id, nil
}

// Update applies a sparse patch. Fields are validated in the same order as
// Create so a request with several bad fields always fails on the same one.
func (s *Service) Update(ctx context.Context, cmd inbound.UpdateRecipeCommand) error {
	existing, err := s.loadRecipe(ctx, cmd.RecipeID)
	if err != nil {
		return err
	}
	if !existing.IsAuthoredBy(cmd.EditorID) {
		return ErrUserIsNotAuthor
	}

	patch := outbound.RecipeUpdate{RecipeID: cmd.RecipeID}
	if cmd.Title != nil {
		title, err := domain.NewTitle(*cmd.Title)
		if err != nil {
			return err
		}
		patch.Title = &title
	}
	if cmd.Description != nil {
		description, err := domain.NewDescription(*cmd.Description)
		if err != nil {
			return err
		}
		patch.Description = &description
	}
	if cmd.Instruction != nil {
		instruction, err := domain.NewInstruction(*cmd.Instruction)
		if err != nil {
			return err
		}
		patch.Instruction = &instruction
	}
	if cmd.ImageName != nil {
		patch.ImageName = cmd.ImageName
	}
	if cmd.Difficulty != nil {
		difficulty, err := domain.ParseDifficulty(*cmd.Difficulty)
		if err != nil {
			return err
		}
		patch.Difficulty = &difficulty
	}
	if cmd.CookingTime != nil {
		cookingTime, err := domain.ParseCookingTime(*cmd.CookingTime)
		if err != nil {
			return err
		}
		patch.CookingTime = &cookingTime
	}
	if cmd.Ingredients != nil {
		ingredients, err := buildIngredients(cmd.Ingredients)
		if err != nil {
			return err
		}
		patch.Ingredients = ingredients
	}

	if patch.IsEmpty() {
		return nil
	}

	if err := s.recipes.Update(ctx, patch); err != nil {
		s.logger.Error("failed to update recipe", zap.Int64("recipe_id", cmd.RecipeID), zap.Error(err))
		return errors.NewInternal("update recipe", err)
	}
	s.logger.Info("recipe updated", zap.Int64("recipe_id", cmd.RecipeID))
	return nil
}

// Rate toggles a rating and returns the stars now standing, StarsZero when
// the press retracted an identical rating.
func (s *Service) Rate(ctx context.Context, cmd inbound.RateRecipeCommand) (domain.Stars, error) {
	existing, err := s.loadRecipe(ctx, cmd.RecipeID)
	if err != nil {
		return domain.StarsZero, err
	}
	if existing.IsAuthoredBy(cmd.UserID) {
		return domain.StarsZero, ErrUserIsAuthor
	}

	stars, err := domain.NewStars(cmd.Stars)
	if err != nil {
		return domain.StarsZero, err
	}

	result, err := s.recipes.RateToggle(ctx, cmd.RecipeID, cmd.UserID, stars)
	if err != nil {
		s.logger.Error("failed to toggle rating",
			zap.Int64("recipe_id", cmd.RecipeID),
			zap.Int64("user_id", cmd.UserID),
			zap.Error(err))
		return domain.StarsZero, errors.NewInternal("toggle rating", err)
	}
	return result, nil
}

// Comment validates and appends a comment.
func (s *Service) Comment(ctx context.Context, cmd inbound.CommentRecipeCommand) error {
	if _, err := s.loadRecipe(ctx, cmd.RecipeID); err != nil {
		return err
	}
	content, err := domain.NewCommentContent(cmd.Content)
	if err != nil {
		return err
	}
	if err := s.recipes.InsertComment(ctx, cmd.RecipeID, cmd.AuthorID, content, time.Now().UTC()); err != nil {
		s.logger.Error("failed to insert comment", zap.Int64("recipe_id", cmd.RecipeID), zap.Error(err))
		return errors.NewInternal("insert comment", err)
	}
	return nil
}

// Delete removes a recipe for its author or for an admin.
func (s *Service) Delete(ctx context.Context, recipeID, userID int64) error {
	existing, err := s.loadRecipe(ctx, recipeID)
	if err != nil {
		return err
	}
	if !existing.IsAuthoredBy(userID) {
		caller, err := s.users.FindByID(ctx, userID)
		if err != nil {
			s.logger.Error("failed to load caller", zap.Int64("user_id", userID), zap.Error(err))
			return errors.NewInternal("load caller", err)
		}
		if caller == nil || !caller.IsAdmin() {
			return ErrUserIsNotAuthor
		}
	}

	if err := s.recipes.Delete(ctx, recipeID); err != nil {
		s.logger.Error("failed to delete recipe", zap.Int64("recipe_id", recipeID), zap.Error(err))
		return errors.NewInternal("delete recipe", err)
	}
	s.logger.Info("recipe deleted", zap.Int64("recipe_id", recipeID), zap.Int64("user_id", userID))
	return nil
}

// GetByID loads the full aggregate.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	return s.loadRecipe(ctx, id)
}

// GetByPage returns one catalog page. Paging inputs below their minimum and
// unknown sort names fall back to defaults rather than failing.
func (s *Service) GetByPage(ctx context.Context, page, pageSize int, sort string) ([]inbound.RecipeSummary, error) {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	recipes, err := s.recipes.FindByPage(ctx, page, pageSize, domain.ParseSortType(sort))
	if err != nil {
		s.logger.Error("failed to load recipe page", zap.Int("page", page), zap.Error(err))
		return nil, errors.NewInternal("load recipe page", err)
	}
	return toSummaries(recipes), nil
}

// GetByQuery searches titles and descriptions. A blank query returns an
// empty result without touching storage.
func (s *Service) GetByQuery(ctx context.Context, query string) ([]inbound.RecipeSummary, error) {
	if query == "" {
		return []inbound.RecipeSummary{}, nil
	}
	recipes, err := s.recipes.FindByQuery(ctx, query)
	if err != nil {
		s.logger.Error("failed to search recipes", zap.String("query", query), zap.Error(err))
		return nil, errors.NewInternal("search recipes", err)
	}
	return toSummaries(recipes), nil
}

func (s *Service) loadRecipe(ctx context.Context, id int64) (*domain.Recipe, error) {
	r, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load recipe", zap.Int64("recipe_id", id), zap.Error(err))
		return nil, errors.NewInternal("load recipe", err)
	}
	if r == nil {
		return nil, ErrRecipeNotFound
	}
	return r, nil
}

func buildIngredients(cmds []inbound.IngredientCommand) ([]domain.Ingredient, error) {
	if len(cmds) == 0 {
		return nil, domain.ErrNoIngredientsProvided
	}
	ingredients := make([]domain.Ingredient, 0, len(cmds))
	for _, c := range cmds {
		ingredient, err := domain.NewIngredient(c.Name, c.Count, c.Unit)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, nil
}

func toSummaries(recipes []*domain.Recipe) []inbound.RecipeSummary {
	summaries := make([]inbound.RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		summaries = append(summaries, inbound.RecipeSummary{
			ID:          r.ID,
			Title:       r.Title.Value(),
			ImageName:   r.ImageName,
			Difficulty:  string(r.Difficulty),
			Rating:      r.Rate.Value,
			Votes:       r.Rate.Votes,
			PublishedAt: r.PublishedAt,
		})
	}
	return summaries
}
