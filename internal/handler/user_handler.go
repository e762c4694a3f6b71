package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"panelboard/internal/auth"
	"panelboard/internal/model"
	"panelboard/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	repo   repository.UserRepositoryInterface
	logger *slog.Logger
}

func NewUserHandler(repo repository.UserRepositoryInterface, logger *slog.Logger) *UserHandler {
	return &UserHandler{repo: repo, logger: logger}
}

type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type UpdateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func toUserResponse(u *model.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username}
}

// Register godoc
// @Summary      Register a new user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "credentials"
// @Success      200   {object}  map[string]any
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /user/ [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusForbidden, msgInvalidRequest)
		return
	}

	existing, err := h.repo.FindByUsername(c.Request.Context(), req.Username)
	if err != nil {
		respondStoreFailure(c, h.logger, "register lookup failed", err)
		return
	}
	if existing != nil {
		respondMessage(c, http.StatusConflict, "provided username already exists")
		return
	}

	if req.Password != req.ConfirmPassword {
		respondMessage(c, http.StatusUnauthorized, "provided passwords doesn't match")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		respondMessage(c, http.StatusForbidden, msgInvalidRequest)
		return
	}
	if err != nil {
		respondStoreFailure(c, h.logger, "password hashing failed", err)
		return
	}

	user := &model.User{Username: req.Username, PasswordHash: hash}
	if err := h.repo.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			respondMessage(c, http.StatusConflict, "provided username already exists")
			return
		}
		respondStoreFailure(c, h.logger, "user create failed", err)
		return
	}

	h.logger.InfoContext(c.Request.Context(), "user registered", "user_id", user.ID, "username", user.Username)
	c.JSON(http.StatusOK, gin.H{
		"message": "user successfully registered",
		"data":    toUserResponse(user),
	})
}

// List godoc
// @Summary      List all users
// @Tags         user
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  map[string]any
// @Router       /user/list [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondStoreFailure(c, h.logger, "user list failed", err)
		return
	}

	data := make([]UserResponse, 0, len(users))
	for i := range users {
		data = append(data, toUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// GetByID godoc
// @Summary      Get a user
// @Tags         user
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "user id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /user/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreFailure(c, h.logger, "user lookup failed", err)
		return
	}
	if user == nil {
		respondMessage(c, http.StatusNotFound, "user not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toUserResponse(user)})
}

// Update godoc
// @Summary      Change the caller's own username and password
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      int                true  "user id"
// @Param        body  body      UpdateUserRequest  true  "new credentials"
// @Success      200   {object}  map[string]any
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /user/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if id != caller.ID {
		respondMessage(c, http.StatusForbidden, "you can only modify your own account")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusForbidden, msgInvalidRequest)
		return
	}

	if req.Username != caller.Username {
		taken, err := h.repo.FindByUsername(c.Request.Context(), req.Username)
		if err != nil {
			respondStoreFailure(c, h.logger, "user update lookup failed", err)
			return
		}
		if taken != nil {
			respondMessage(c, http.StatusConflict, "provided username already registered")
			return
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		respondMessage(c, http.StatusForbidden, msgInvalidRequest)
		return
	}
	if err != nil {
		respondStoreFailure(c, h.logger, "password hashing failed", err)
		return
	}

	updated := &model.User{ID: id, Username: req.Username, PasswordHash: hash}
	if err := h.repo.Update(c.Request.Context(), updated); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			respondMessage(c, http.StatusNotFound, "user not found")
		case errors.Is(err, repository.ErrDuplicateUsername):
			respondMessage(c, http.StatusConflict, "provided username already registered")
		default:
			respondStoreFailure(c, h.logger, "user update failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("user %s was successfully updated", updated.Username),
		"data":    toUserResponse(updated),
	})
}

// Delete godoc
// @Summary      Delete the caller's own account with its panels and cards
// @Tags         user
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "user id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if id != caller.ID {
		respondMessage(c, http.StatusForbidden, "you can only delete your own account")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			respondMessage(c, http.StatusNotFound, "user not found")
			return
		}
		respondStoreFailure(c, h.logger, "user delete failed", err)
		return
	}

	h.logger.InfoContext(c.Request.Context(), "user deleted", "user_id", id)
	respondMessage(c, http.StatusOK, "user was successfully deleted")
}
