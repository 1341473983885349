package usecase

import (
	"context"
	"time"

	"shiftboard/internal/domain/auth"
	"shiftboard/internal/domain/timesheet"
	"shiftboard/internal/infra"
	"shiftboard/internal/pkg/clock"
	"shiftboard/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type TimesheetRepository interface {
	FindOpenByUser(ctx context.Context, userID uuid.UUID) (*readmodel.TimeEntryRM, error)
	Create(ctx context.Context, e *timesheet.Entry) error
	Close(ctx context.Context, id uuid.UUID, at time.Time) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]readmodel.TimeEntryRM, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]readmodel.TimeEntryRM, error)
}

type TimesheetUseCase interface {
	ClockIn(ctx context.Context, principal auth.Principal, shiftID uuid.UUID) (*readmodel.TimeEntryRM, error)
	ClockOut(ctx context.Context, principal auth.Principal) (*readmodel.TimeEntryRM, error)
	List(ctx context.Context, principal auth.Principal) ([]readmodel.TimeEntryRM, error)
}

type timesheetUseCaseImpl struct {
	timesheetRepo TimesheetRepository
	shiftRepo     ShiftRepositoryPort
	clock         clock.Clock
}

func NewTimesheetUseCase(timesheetRepo TimesheetRepository, shiftRepo ShiftRepositoryPort, clk clock.Clock) TimesheetUseCase {
	return &timesheetUseCaseImpl{
		timesheetRepo: timesheetRepo,
		shiftRepo:     shiftRepo,
		clock:         clk,
	}
}

func (t *timesheetUseCaseImpl) ClockIn(ctx context.Context, principal auth.Principal, shiftID uuid.UUID) (*readmodel.TimeEntryRM, error) {
	shiftRM, err := t.shiftRepo.FindByID(ctx, shiftID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Clocking in is only valid against an own shift in the own company.
	if !principal.SameCompany(shiftRM.CompanyID) {
		return nil, ErrForbidden
	}
	if shiftRM.AssignedTo != principal.UserID {
		return nil, ErrForbidden
	}

	if _, err := t.timesheetRepo.FindOpenByUser(ctx, principal.UserID); err == nil {
		return nil, timesheet.ErrAlreadyClockedIn
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	entry := timesheet.NewEntry(principal.CompanyID, principal.UserID, shiftID, t.clock.Now())
	if err := t.timesheetRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	clockIn := entry.ClockIn()
	return &readmodel.TimeEntryRM{
		ID:        entry.ID(),
		CompanyID: entry.CompanyID(),
		UserID:    entry.UserID(),
		UserName:  principal.Name,
		ShiftID:   entry.ShiftID(),
		ClockIn:   clockIn,
	}, nil
}

func (t *timesheetUseCaseImpl) ClockOut(ctx context.Context, principal auth.Principal) (*readmodel.TimeEntryRM, error) {
	open, err := t.timesheetRepo.FindOpenByUser(ctx, principal.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, timesheet.ErrNotClockedIn
		}
		return nil, err
	}

	now := t.clock.Now()
	if err := t.timesheetRepo.Close(ctx, open.ID, now); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, timesheet.ErrNotClockedIn
		}
		return nil, err
	}

	open.ClockOut = &now
	return open, nil
}

func (t *timesheetUseCaseImpl) List(ctx context.Context, principal auth.Principal) ([]readmodel.TimeEntryRM, error) {
	if principal.IsManager() {
		return t.timesheetRepo.ListByCompany(ctx, principal.CompanyID)
	}
	return t.timesheetRepo.ListByUser(ctx, principal.UserID)
}
