package user

import "github.com/recipehub/backend/pkg/errors"

var (
	// ErrUserIdNotFound is returned when an id does not resolve to an account.
	ErrUserIdNotFound = errors.NewNotFound("USER_ID_NOT_FOUND", "user not found")

	// ErrUsernameNotFound is returned on login when the handle is unknown.
	ErrUsernameNotFound = errors.NewNotFound("USERNAME_NOT_FOUND", "user not found")

	// ErrUserAlreadyExists is returned on registration with a taken handle.
	ErrUserAlreadyExists = errors.NewConflict("USER_ALREADY_EXISTS", "username already taken")

	// ErrPasswordIsIncorrect covers login and password-change verification.
	ErrPasswordIsIncorrect = errors.NewAuthentication("PASSWORD_IS_INCORRECT", "password is incorrect")
)
