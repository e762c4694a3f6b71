package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"panelboard/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 12 * time.Hour

// Claims is the signed payload of an identity token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenIssuer signs identity tokens with a shared HMAC secret.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

// Issue returns a token for username that expires TokenTTL after now,
// together with that expiry. Token times are whole seconds, so now is
// truncated first and the returned expiry is exactly the signed one.
func (i *TokenIssuer) Issue(username string, now time.Time) (string, time.Time, error) {
	now = now.Truncate(time.Second)
	exp := jwt.NewNumericDate(now.Add(TokenTTL))
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: exp,
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}
	return signed, exp.Time, nil
}

// UserLookup resolves a username to a stored user. It returns (nil, nil)
// when no such user exists.
type UserLookup interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

// TokenVerifier checks identity tokens and resolves them to users.
type TokenVerifier struct {
	secret []byte
	users  UserLookup
}

func NewTokenVerifier(secret string, users UserLookup) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret), users: users}
}

// Verify validates tokenText as of now and returns the user it names.
//
// Signature, structure and expiry failures all yield
// ErrInvalidOrExpiredToken. A valid token whose user has since been deleted
// yields ErrUnknownSubject. Any other error comes from the user store.
func (v *TokenVerifier) Verify(ctx context.Context, tokenText string, now time.Time) (*model.User, error) {
	if tokenText == "" {
		return nil, ErrMissingToken
	}

	claims, err := v.parse(tokenText, now)
	if err != nil {
		return nil, err
	}

	user, err := v.users.FindByUsername(ctx, claims.Username)
	if err != nil {
		return nil, fmt.Errorf("resolving token subject: %w", err)
	}
	if user == nil {
		return nil, ErrUnknownSubject
	}
	return user, nil
}

func (v *TokenVerifier) parse(tokenText string, now time.Time) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenText, claims, func(_ *jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil || !token.Valid {
		return nil, errors.Join(ErrInvalidOrExpiredToken, err)
	}

	// jwt accepts a token in the second its exp falls on; expiry is exclusive here.
	if !claims.ExpiresAt.After(now) {
		return nil, ErrInvalidOrExpiredToken
	}
	if claims.Username == "" {
		return nil, ErrInvalidOrExpiredToken
	}
	return claims, nil
}
