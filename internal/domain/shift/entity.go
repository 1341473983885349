package shift

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle      = errors.New("shift title must not be empty")
	ErrInvalidTimeSpan = errors.New("shift must end after it starts")
	ErrInvalidStatus   = errors.New("invalid shift status")
)

type Shift struct {
	id         uuid.UUID
	companyID  uuid.UUID
	title      string
	startTime  time.Time
	endTime    time.Time
	assignedTo uuid.UUID
	createdBy  uuid.UUID
	status     Status
	notes      string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewShift(companyID uuid.UUID, title string, start, end time.Time, assignedTo, createdBy uuid.UUID, notes string) (*Shift, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !end.After(start) {
		return nil, ErrInvalidTimeSpan
	}

	return &Shift{
		id:         uuid.New(),
		companyID:  companyID,
		title:      title,
		startTime:  start,
		endTime:    end,
		assignedTo: assignedTo,
		createdBy:  createdBy,
		status:     StatusScheduled,
		notes:      notes,
	}, nil
}

func (s *Shift) ID() uuid.UUID         { return s.id }
func (s *Shift) CompanyID() uuid.UUID  { return s.companyID }
func (s *Shift) Title() string         { return s.title }
func (s *Shift) StartTime() time.Time  { return s.startTime }
func (s *Shift) EndTime() time.Time    { return s.endTime }
func (s *Shift) AssignedTo() uuid.UUID { return s.assignedTo }
func (s *Shift) CreatedBy() uuid.UUID  { return s.createdBy }
func (s *Shift) Status() Status        { return s.status }
func (s *Shift) Notes() string         { return s.notes }
func (s *Shift) CreatedAt() time.Time  { return s.createdAt }
func (s *Shift) UpdatedAt() time.Time  { return s.updatedAt }
