package response

import (
	"time"

	"shiftboard/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ShiftResponse struct {
	ID            uuid.UUID `json:"id"`
	CompanyID     uuid.UUID `json:"companyId"`
	Title         string    `json:"title"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	AssignedTo    uuid.UUID `json:"assignedTo"`
	AssigneeName  string    `json:"assigneeName"`
	AssigneeEmail string    `json:"assigneeEmail"`
	CreatedBy     uuid.UUID `json:"createdBy"`
	CreatorName   string    `json:"creatorName"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromShiftRM(rm *readmodel.ShiftRM) ShiftResponse {
	var resp ShiftResponse
	_ = copier.Copy(&resp, rm)
	return resp
}

func FromShiftRMs(rms []readmodel.ShiftRM) []ShiftResponse {
	resps := make([]ShiftResponse, 0, len(rms))
	for i := range rms {
		resps = append(resps, FromShiftRM(&rms[i]))
	}
	return resps
}
