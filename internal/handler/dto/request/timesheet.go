package request

import (
	"github.com/google/uuid"
)

type ClockInRequest struct {
	ShiftID uuid.UUID `json:"shiftId" binding:"required"`
}
