package auth

import (
	"context"
	"fmt"

	"panelboard/internal/model"
)

// dummyDigest is compared against when the username is unknown so that a
// miss costs about as much as a wrong password.
const dummyDigest = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3oLtpWeQ3nQ/1jjVfIj2ZmS"

// Authenticate checks a username and password against the user store.
func Authenticate(ctx context.Context, users UserLookup, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		CheckPassword(password, dummyDigest)
		return nil, ErrUnknownUser
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, ErrPasswordMismatch
	}
	return user, nil
}
