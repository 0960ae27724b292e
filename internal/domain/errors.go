package domain

import "errors"

var (
	// ErrInvalidCredentials covers a well-formed backend reply with a negative
	// confirmation. A typo and a backend malfunction look the same to us.
	ErrInvalidCredentials = errors.New("username or password incorrect")

	// ErrNotLoggedIn gates operations that require a stored session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrValidation marks input rejected before any network call.
	// Wrap it with the specific message: fmt.Errorf("%w: ...", ErrValidation).
	ErrValidation = errors.New("invalid input")
)
