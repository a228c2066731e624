package user

import "github.com/recipehub/backend/pkg/errors"

var (
	ErrUsernameLengthOutOfRange = errors.NewValidation("USERNAME_LENGTH_OUT_OF_RANGE", "username length is out of range")
	ErrUsernameUnallowedSymbols = errors.NewValidation("USERNAME_UNALLOWED_SYMBOLS", "username contains unallowed symbols")
)
