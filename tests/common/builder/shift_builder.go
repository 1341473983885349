//go:build unit || e2e

package builder

import (
	"time"

	"shiftboard/internal/domain/shift"
	"shiftboard/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ShiftBuilder struct {
	CompanyID  uuid.UUID
	Title      string
	StartTime  time.Time
	EndTime    time.Time
	AssignedTo uuid.UUID
	CreatedBy  uuid.UUID
	Status     string
	Notes      string
}

func NewShiftBuilder() *ShiftBuilder {
	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	return &ShiftBuilder{
		CompanyID:  uuid.New(),
		Title:      "Morning Shift",
		StartTime:  start,
		EndTime:    start.Add(8 * time.Hour),
		AssignedTo: uuid.New(),
		CreatedBy:  uuid.New(),
		Status:     "SCHEDULED",
		Notes:      "",
	}
}

func (s *ShiftBuilder) WithCompanyID(companyID uuid.UUID) *ShiftBuilder {
	s.CompanyID = companyID
	return s
}

func (s *ShiftBuilder) WithAssignedTo(userID uuid.UUID) *ShiftBuilder {
	s.AssignedTo = userID
	return s
}

func (s *ShiftBuilder) WithTitle(title string) *ShiftBuilder {
	s.Title = title
	return s
}

func (s *ShiftBuilder) WithStatus(status string) *ShiftBuilder {
	s.Status = status
	return s
}

func (s *ShiftBuilder) WithTimeSpan(start, end time.Time) *ShiftBuilder {
	s.StartTime = start
	s.EndTime = end
	return s
}

func (s *ShiftBuilder) BuildDomain() (*shift.Shift, error) {
	return shift.NewShift(s.CompanyID, s.Title, s.StartTime, s.EndTime, s.AssignedTo, s.CreatedBy, s.Notes)
}

func (s *ShiftBuilder) BuildReadModel() *readmodel.ShiftRM {
	now := time.Now()
	return &readmodel.ShiftRM{
		ID:            uuid.New(),
		CompanyID:     s.CompanyID,
		Title:         s.Title,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		AssignedTo:    s.AssignedTo,
		AssigneeName:  "Test Employee",
		AssigneeEmail: "employee@example.com",
		CreatedBy:     s.CreatedBy,
		CreatorName:   "Test Manager",
		Status:        s.Status,
		Notes:         s.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
