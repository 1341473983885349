package timesheet

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// State errors for the single-open-entry rule. One user has at most one entry
// without a clock-out at any time.
var (
	ErrAlreadyClockedIn = errors.New("already clocked in")
	ErrNotClockedIn     = errors.New("not clocked in")
)

// Entry is a clock-in recorded by an employee against a shift. Entries are
// closed by stamping clock_out in storage, so the entity only models the
// opening side.
type Entry struct {
	id        uuid.UUID
	companyID uuid.UUID
	userID    uuid.UUID
	shiftID   uuid.UUID
	clockIn   time.Time
}

func NewEntry(companyID, userID, shiftID uuid.UUID, clockIn time.Time) *Entry {
	return &Entry{
		id:        uuid.New(),
		companyID: companyID,
		userID:    userID,
		shiftID:   shiftID,
		clockIn:   clockIn,
	}
}

func (e *Entry) ID() uuid.UUID        { return e.id }
func (e *Entry) CompanyID() uuid.UUID { return e.companyID }
func (e *Entry) UserID() uuid.UUID    { return e.userID }
func (e *Entry) ShiftID() uuid.UUID   { return e.shiftID }
func (e *Entry) ClockIn() time.Time   { return e.clockIn }
