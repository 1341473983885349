package api

import (
	"errors"
	"net/http"

	"shiftboard/internal/domain/user"
	reqdto "shiftboard/internal/handler/dto/request"
	resdto "shiftboard/internal/handler/dto/response"
	"shiftboard/internal/handler/middleware"
	"shiftboard/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
}

func NewUserHandler(userUseCase usecase.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

// @Summary List company users
// @Description List all users of the authenticated manager's company
// @Tags users
// @Produce json
// @Success 200 {array} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	users, err := h.userUseCase.List(c.Request.Context(), principal)
	if err != nil {
		respondUserError(c, err, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserRMs(users))
}

// @Summary Create user
// @Description Create an employee or manager account in the manager's company
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.CreateUserRequest true "User to create"
// @Success 201 {object} resdto.CreateUserResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, err := h.userUseCase.Create(c.Request.Context(), principal, req.ToParams())
	if err != nil {
		respondUserError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateUserResponse{
		Message: "User created",
		UserID:  userID,
	})
}

// @Summary Update user
// @Description Update a user of the manager's company
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateUserRequest true "User fields to update"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users [put]
func (h *UserHandler) Update(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.userUseCase.Update(c.Request.Context(), principal, req.ToParams()); err != nil {
		respondUserError(c, err, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "User updated"})
}

// @Summary Delete user
// @Description Delete a user of the manager's company
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.DeleteUserRequest true "User to delete"
// @Success 200 {object} resdto.MessageResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), principal, req.ID, req.CompanyID); err != nil {
		respondUserError(c, err, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "User deleted"})
}

func respondUserError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, usecase.ErrEmailExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
	case errors.Is(err, user.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
	case errors.Is(err, user.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email"})
	case errors.Is(err, user.ErrPasswordTooWeak):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
	case errors.Is(err, user.ErrEmptyName):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
