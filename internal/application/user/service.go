// Package user implements the account use cases.
package user

import (
	"context"
	stderrors "errors"

	"go.uber.org/zap"

	domain "github.com/recipehub/backend/internal/domain/user"
	"github.com/recipehub/backend/internal/ports/inbound"
	"github.com/recipehub/backend/internal/ports/outbound"
	"github.com/recipehub/backend/pkg/errors"
)

// Service implements inbound.UserService.
type Service struct {
	users   outbound.UserRepository
	recipes outbound.RecipeRepository
	hasher  outbound.PasswordHasher
	signer  outbound.TokenSigner
	admins  outbound.AdminPolicy
	logger  *zap.Logger
}

// NewService builds the user service.
func NewService(
	users outbound.UserRepository,
	recipes outbound.RecipeRepository,
	hasher outbound.PasswordHasher,
	signer outbound.TokenSigner,
	admins outbound.AdminPolicy,
	logger *zap.Logger,
) *Service {
	return &Service{
		users:   users,
		recipes: recipes,
		hasher:  hasher,
		signer:  signer,
		admins:  admins,
		logger:  logger.Named("user-service"),
	}
}

// Register creates an account and signs a token for it. The existence
// check gives a clean conflict answer; the unique index stays the source
// of truth for concurrent registrations and surfaces as
// outbound.ErrDuplicateUsername.
func (s *Service) Register(ctx context.Context, creds inbound.Credentials) (string, error) {
	username, err := domain.NewUsername(creds.Username)
	if err != nil {
		return "", err
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		s.logger.Error("failed to check username", zap.String("username", username.Value()), zap.Error(err))
		return "", errors.NewInternal("check username", err)
	}
	if existing != nil {
		return "", ErrUserAlreadyExists
	}

	hash, err := s.hasher.Hash(creds.Password)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return "", errors.NewInternal("hash password", err)
	}

	role := domain.RoleClassic
	if s.admins.IsAdminUsername(username) {
		role = domain.RoleAdmin
	}

	account := &domain.User{Username: username, Password: hash, Role: role}
	id, err := s.users.Insert(ctx, account)
	if err != nil {
		if stderrors.Is(err, outbound.ErrDuplicateUsername) {
			return "", ErrUserAlreadyExists
		}
		s.logger.Error("failed to insert user", zap.String("username", username.Value()), zap.Error(err))
		return "", errors.NewInternal("insert user", err)
	}

	token, err := s.signer.Sign(id)
	if err != nil {
		s.logger.Error("failed to sign token", zap.Int64("user_id", id), zap.Error(err))
		return "", errors.NewInternal("sign token", err)
	}
	s.logger.Info("user registered", zap.Int64("user_id", id), zap.String("role", string(role)))
	return token, nil
}

// Login verifies the credentials and signs a token.
func (s *Service) Login(ctx context.Context, creds inbound.Credentials) (string, error) {
	username, err := domain.NewUsername(creds.Username)
	if err != nil {
		return "", err
	}

	account, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		s.logger.Error("failed to load user", zap.String("username", username.Value()), zap.Error(err))
		return "", errors.NewInternal("load user", err)
	}
	if account == nil {
		return "", ErrUsernameNotFound
	}
	if !s.hasher.Verify(creds.Password, account.Password) {
		return "", ErrPasswordIsIncorrect
	}

	token, err := s.signer.Sign(account.ID)
	if err != nil {
		s.logger.Error("failed to sign token", zap.Int64("user_id", account.ID), zap.Error(err))
		return "", errors.NewInternal("sign token", err)
	}
	return token, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *Service) ChangePassword(ctx context.Context, cmd inbound.ChangePasswordCommand) error {
	account, err := s.users.FindByID(ctx, cmd.UserID)
	if err != nil {
		s.logger.Error("failed to load user", zap.Int64("user_id", cmd.UserID), zap.Error(err))
		return errors.NewInternal("load user", err)
	}
	if account == nil {
		return ErrUserIdNotFound
	}
	if !s.hasher.Verify(cmd.CurrentPassword, account.Password) {
		return ErrPasswordIsIncorrect
	}

	hash, err := s.hasher.Hash(cmd.NewPassword)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return errors.NewInternal("hash password", err)
	}
	if err := s.users.UpdatePassword(ctx, cmd.UserID, hash); err != nil {
		s.logger.Error("failed to update password", zap.Int64("user_id", cmd.UserID), zap.Error(err))
		return errors.NewInternal("update password", err)
	}
	s.logger.Info("password changed", zap.Int64("user_id", cmd.UserID))
	return nil
}

// GetByID returns the public profile with the user's recipes, best rated
// first.
func (s *Service) GetByID(ctx context.Context, id int64) (*inbound.UserProfile, error) {
	account, err := s.users.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load user", zap.Int64("user_id", id), zap.Error(err))
		return nil, errors.NewInternal("load user", err)
	}
	if account == nil {
		return nil, ErrUserIdNotFound
	}

	recipes, err := s.recipes.FindByAuthor(ctx, id)
	if err != nil {
		s.logger.Error("failed to load user recipes", zap.Int64("user_id", id), zap.Error(err))
		return nil, errors.NewInternal("load user recipes", err)
	}

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

	return &inbound.UserProfile{
		ID:       account.ID,
		Username: account.Username.Value(),
		Role:     string(account.Role),
		Recipes:  summaries,
	}, nil
}
