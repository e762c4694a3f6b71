package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"panelboard/internal/auth"

	"github.com/gin-gonic/gin"
)

const loginChallenge = "Basic auth='Login required'"

type AuthHandler struct {
	users  auth.UserLookup
	issuer *auth.TokenIssuer
	logger *slog.Logger
	now    func() time.Time
}

func NewAuthHandler(users auth.UserLookup, issuer *auth.TokenIssuer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{users: users, issuer: issuer, logger: logger, now: time.Now}
}

type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	Exp     time.Time `json:"exp"`
}

// Login godoc
// @Summary      Exchange Basic credentials for a token
// @Tags         auth
// @Produce      json
// @Security     BasicAuth
// @Success      200  {object}  LoginResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	username, password, _ := c.Request.BasicAuth()

	user, err := auth.Authenticate(c.Request.Context(), h.users, username, password)
	if err != nil {
		if !errors.Is(err, auth.ErrMissingCredentials) &&
			!errors.Is(err, auth.ErrUnknownUser) &&
			!errors.Is(err, auth.ErrPasswordMismatch) {
			respondStoreFailure(c, h.logger, "login lookup failed", err)
			return
		}
		c.Header("WWW-Authenticate", loginChallenge)
		c.JSON(http.StatusUnauthorized, gin.H{
			"message":          "could not verify",
			"WWW-Authenticate": loginChallenge,
		})
		return
	}

	token, exp, err := h.issuer.Issue(user.Username, h.now())
	if err != nil {
		respondStoreFailure(c, h.logger, "token signing failed", err)
		return
	}

	h.logger.InfoContext(c.Request.Context(), "user logged in", "username", user.Username)
	c.JSON(http.StatusOK, LoginResponse{
		Message: "Validated successfully",
		Token:   token,
		Exp:     exp,
	})
}
