package api

import (
	"errors"
	"net/http"

	"shiftboard/internal/domain/shift"
	reqdto "shiftboard/internal/handler/dto/request"
	resdto "shiftboard/internal/handler/dto/response"
	"shiftboard/internal/handler/middleware"
	"shiftboard/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShiftHandler struct {
	shiftUseCase usecase.ShiftUseCase
}

func NewShiftHandler(shiftUseCase usecase.ShiftUseCase) *ShiftHandler {
	return &ShiftHandler{shiftUseCase: shiftUseCase}
}

// @Summary List shifts
// @Description Managers see the company's shifts; employees only their own
// @Tags shifts
// @Produce json
// @Success 200 {array} resdto.ShiftResponse
// @Failure 401 {object} map[string]string
// @Router /shifts [get]
func (h *ShiftHandler) List(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	shifts, err := h.shiftUseCase.List(c.Request.Context(), principal)
	if err != nil {
		respondShiftError(c, err, "Failed to fetch shifts")
		return
	}

	c.JSON(http.StatusOK, resdto.FromShiftRMs(shifts))
}

// @Summary Get shift
// @Description Fetch one shift; employees may only read their own assignment
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} resdto.ShiftResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shifts/{id} [get]
func (h *ShiftHandler) Get(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
		return
	}

	rm, err := h.shiftUseCase.Get(c.Request.Context(), principal, id)
	if err != nil {
		respondShiftError(c, err, "Failed to fetch shift")
		return
	}

	c.JSON(http.StatusOK, resdto.FromShiftRM(rm))
}

// @Summary Create shift
// @Description Create a shift for an employee of the manager's company
// @Tags shifts
// @Accept json
// @Produce json
// @Param request body reqdto.CreateShiftRequest true "Shift to create"
// @Success 201 {object} resdto.ShiftResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /shifts [post]
func (h *ShiftHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rm, err := h.shiftUseCase.Create(c.Request.Context(), principal, req.ToParams())
	if err != nil {
		respondShiftError(c, err, "Failed to create shift")
		return
	}

	c.JSON(http.StatusCreated, resdto.FromShiftRM(rm))
}

// @Summary Update shift
// @Description Overwrite a shift of the manager's company
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param request body reqdto.UpdateShiftRequest true "Shift fields"
// @Success 200 {object} resdto.ShiftResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shifts/{id} [put]
func (h *ShiftHandler) Update(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
		return
	}

	var req reqdto.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rm, err := h.shiftUseCase.Update(c.Request.Context(), principal, id, req.ToParams())
	if err != nil {
		respondShiftError(c, err, "Failed to update shift")
		return
	}

	c.JSON(http.StatusOK, resdto.FromShiftRM(rm))
}

// @Summary Delete shift
// @Description Delete a shift of the manager's company
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shifts/{id} [delete]
func (h *ShiftHandler) Delete(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
		return
	}

	if err := h.shiftUseCase.Delete(c.Request.Context(), principal, id); err != nil {
		respondShiftError(c, err, "Failed to delete shift")
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Shift deleted successfully"})
}

func respondShiftError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
	case errors.Is(err, shift.ErrEmptyTitle):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
	case errors.Is(err, shift.ErrInvalidTimeSpan):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Shift must end after it starts"})
	case errors.Is(err, shift.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift status"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
