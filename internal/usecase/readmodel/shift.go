package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// ShiftRM carries the assignee and creator display fields alongside the
// shift row so a single query serves the detail and list responses.
type ShiftRM struct {
	ID            uuid.UUID `json:"id"`
	CompanyID     uuid.UUID `json:"company_id"`
	Title         string    `json:"title"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	AssignedTo    uuid.UUID `json:"assigned_to"`
	AssigneeName  string    `json:"assignee_name"`
	AssigneeEmail string    `json:"assignee_email"`
	CreatedBy     uuid.UUID `json:"created_by"`
	CreatorName   string    `json:"creator_name"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
