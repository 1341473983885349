package response

import (
	"time"

	"shiftboard/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TimeEntryResponse struct {
	ID       uuid.UUID  `json:"id"`
	UserID   uuid.UUID  `json:"userId"`
	UserName string     `json:"userName"`
	ShiftID  uuid.UUID  `json:"shiftId"`
	ClockIn  time.Time  `json:"clockIn"`
	ClockOut *time.Time `json:"clockOut,omitempty"`
}

func FromTimeEntryRM(rm *readmodel.TimeEntryRM) TimeEntryResponse {
	var resp TimeEntryResponse
	_ = copier.Copy(&resp, rm)
	return resp
}

func FromTimeEntryRMs(rms []readmodel.TimeEntryRM) []TimeEntryResponse {
	resps := make([]TimeEntryResponse, 0, len(rms))
	for i := range rms {
		resps = append(resps, FromTimeEntryRM(&rms[i]))
	}
	return resps
}
