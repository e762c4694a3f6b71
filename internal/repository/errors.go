package repository

import "errors"

// Common repository errors
var (
	// ErrDuplicateUsername is returned when a username is already taken
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrPanelNotFound is returned when a panel is not found
	ErrPanelNotFound = errors.New("panel not found")

	// ErrCardNotFound is returned when a card is not found in its panel
	ErrCardNotFound = errors.New("card not found")
)
