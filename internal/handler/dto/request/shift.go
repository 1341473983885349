package request

import (
	"time"

	"shiftboard/internal/usecase"

	"github.com/google/uuid"
)

type CreateShiftRequest struct {
	Title      string    `json:"title" binding:"required"`
	StartTime  time.Time `json:"startTime" binding:"required"`
	EndTime    time.Time `json:"endTime" binding:"required"`
	AssignedTo uuid.UUID `json:"assignedTo" binding:"required"`
	Notes      string    `json:"notes"`
}

func (r *CreateShiftRequest) ToParams() usecase.CreateShiftParams {
	return usecase.CreateShiftParams{
		Title:      r.Title,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		AssignedTo: r.AssignedTo,
		Notes:      r.Notes,
	}
}

type UpdateShiftRequest struct {
	Title      string    `json:"title" binding:"required"`
	StartTime  time.Time `json:"startTime" binding:"required"`
	EndTime    time.Time `json:"endTime" binding:"required"`
	AssignedTo uuid.UUID `json:"assignedTo" binding:"required"`
	Status     string    `json:"status" binding:"required"`
	Notes      string    `json:"notes"`
}

func (r *UpdateShiftRequest) ToParams() usecase.UpdateShiftParams {
	return usecase.UpdateShiftParams{
		Title:      r.Title,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		AssignedTo: r.AssignedTo,
		Status:     r.Status,
		Notes:      r.Notes,
	}
}
