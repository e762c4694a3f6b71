package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"panelboard/internal/middleware"
	"panelboard/internal/model"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest = "invalid request provided"
	msgUnexpected     = "an unexpected error occurred"
)

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// respondStoreFailure logs the cause and answers with a generic 500.
func respondStoreFailure(c *gin.Context, logger *slog.Logger, op string, err error) {
	logger.ErrorContext(c.Request.Context(), op, "error", err)
	respondMessage(c, http.StatusInternalServerError, msgUnexpected)
}

// NoRoute answers requests for paths no route matches.
func NoRoute(c *gin.Context) {
	respondMessage(c, http.StatusNotFound, "resource not found")
}

// NoMethod answers requests whose path exists under another method.
func NoMethod(c *gin.Context) {
	respondMessage(c, http.StatusMethodNotAllowed, "method not allowed")
}

// identity returns the authenticated user or answers 401.
func identity(c *gin.Context) (*model.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "not authenticated")
		return nil, false
	}
	return user, true
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		respondMessage(c, http.StatusBadRequest, "invalid "+param+" format")
		return 0, false
	}
	return uint(id), true
}
