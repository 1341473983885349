package api

import (
	"errors"
	"net/http"

	"shiftboard/internal/domain/timesheet"
	reqdto "shiftboard/internal/handler/dto/request"
	resdto "shiftboard/internal/handler/dto/response"
	"shiftboard/internal/handler/middleware"
	"shiftboard/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TimesheetHandler struct {
	timesheetUseCase usecase.TimesheetUseCase
}

func NewTimesheetHandler(timesheetUseCase usecase.TimesheetUseCase) *TimesheetHandler {
	return &TimesheetHandler{timesheetUseCase: timesheetUseCase}
}

// @Summary Clock in
// @Description Open a time entry against one of the caller's assigned shifts
// @Tags time-entries
// @Accept json
// @Produce json
// @Param request body reqdto.ClockInRequest true "Shift to clock in against"
// @Success 201 {object} resdto.TimeEntryResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /time-entries/clock-in [post]
func (h *TimesheetHandler) ClockIn(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.ClockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Shift ID is required"})
		return
	}

	rm, err := h.timesheetUseCase.ClockIn(c.Request.Context(), principal, req.ShiftID)
	if err != nil {
		respondTimesheetError(c, err, "Failed to clock in")
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTimeEntryRM(rm))
}

// @Summary Clock out
// @Description Close the caller's open time entry
// @Tags time-entries
// @Produce json
// @Success 200 {object} resdto.TimeEntryResponse
// @Failure 400 {object} map[string]string
// @Router /time-entries/clock-out [post]
func (h *TimesheetHandler) ClockOut(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	rm, err := h.timesheetUseCase.ClockOut(c.Request.Context(), principal)
	if err != nil {
		respondTimesheetError(c, err, "Failed to clock out")
		return
	}

	c.JSON(http.StatusOK, resdto.FromTimeEntryRM(rm))
}

// @Summary List time entries
// @Description Managers see the company's entries; employees only their own
// @Tags time-entries
// @Produce json
// @Success 200 {array} resdto.TimeEntryResponse
// @Failure 401 {object} map[string]string
// @Router /time-entries [get]
func (h *TimesheetHandler) List(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	entries, err := h.timesheetUseCase.List(c.Request.Context(), principal)
	if err != nil {
		respondTimesheetError(c, err, "Failed to fetch time entries")
		return
	}

	c.JSON(http.StatusOK, resdto.FromTimeEntryRMs(entries))
}

func respondTimesheetError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
	case errors.Is(err, timesheet.ErrAlreadyClockedIn):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already clocked in"})
	case errors.Is(err, timesheet.ErrNotClockedIn):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No open time entry"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
