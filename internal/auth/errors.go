package auth

import "errors"

var (
	// ErrDuplicateUsername is returned by Register when the username is taken.
	ErrDuplicateUsername = errors.New("user already exists")

	// ErrUserNotFound is returned by FindByUsername on no exact match.
	ErrUserNotFound = errors.New("user not found")
)
