package usecase

import (
	"context"
	"time"

	"shiftboard/internal/domain/auth"
	"shiftboard/internal/domain/shift"
	"shiftboard/internal/infra"
	"shiftboard/internal/infra/repository"
	"shiftboard/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ShiftRepositoryPort interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ShiftRM, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]readmodel.ShiftRM, error)
	ListByAssignee(ctx context.Context, userID uuid.UUID) ([]readmodel.ShiftRM, error)
	Create(ctx context.Context, s *shift.Shift) error
	Update(ctx context.Context, id uuid.UUID, params repository.UpdateShiftParams) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateShiftParams struct {
	Title      string
	StartTime  time.Time
	EndTime    time.Time
	AssignedTo uuid.UUID
	Notes      string
}

type UpdateShiftParams struct {
	Title      string
	StartTime  time.Time
	EndTime    time.Time
	AssignedTo uuid.UUID
	Status     string
	Notes      string
}

type ShiftUseCase interface {
	Get(ctx context.Context, principal auth.Principal, id uuid.UUID) (*readmodel.ShiftRM, error)
	List(ctx context.Context, principal auth.Principal) ([]readmodel.ShiftRM, error)
	Create(ctx context.Context, principal auth.Principal, params CreateShiftParams) (*readmodel.ShiftRM, error)
	Update(ctx context.Context, principal auth.Principal, id uuid.UUID, params UpdateShiftParams) (*readmodel.ShiftRM, error)
	Delete(ctx context.Context, principal auth.Principal, id uuid.UUID) error
}

type shiftUseCaseImpl struct {
	shiftRepo ShiftRepositoryPort
	userRepo  UserRepository
}

func NewShiftUseCase(shiftRepo ShiftRepositoryPort, userRepo UserRepository) ShiftUseCase {
	return &shiftUseCaseImpl{
		shiftRepo: shiftRepo,
		userRepo:  userRepo,
	}
}

func (s *shiftUseCaseImpl) Get(ctx context.Context, principal auth.Principal, id uuid.UUID) (*readmodel.ShiftRM, error) {
	rm, err := s.shiftRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !principal.SameCompany(rm.CompanyID) {
		return nil, ErrForbidden
	}
	// An employee sees only shifts assigned to them; a forbidden error, not
	// a silently filtered success.
	if !principal.IsManager() && rm.AssignedTo != principal.UserID {
		return nil, ErrForbidden
	}

	return rm, nil
}

func (s *shiftUseCaseImpl) List(ctx context.Context, principal auth.Principal) ([]readmodel.ShiftRM, error) {
	if principal.IsManager() {
		return s.shiftRepo.ListByCompany(ctx, principal.CompanyID)
	}
	return s.shiftRepo.ListByAssignee(ctx, principal.UserID)
}

func (s *shiftUseCaseImpl) Create(ctx context.Context, principal auth.Principal, params CreateShiftParams) (*readmodel.ShiftRM, error) {
	if !principal.IsManager() {
		return nil, ErrForbidden
	}

	assignee, err := s.userRepo.FindByID(ctx, params.AssignedTo)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !principal.SameCompany(assignee.CompanyID) {
		return nil, ErrForbidden
	}

	newShift, err := shift.NewShift(principal.CompanyID, params.Title, params.StartTime, params.EndTime,
		params.AssignedTo, principal.UserID, params.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.shiftRepo.Create(ctx, newShift); err != nil {
		return nil, err
	}

	return s.shiftRepo.FindByID(ctx, newShift.ID())
}

func (s *shiftUseCaseImpl) Update(ctx context.Context, principal auth.Principal, id uuid.UUID, params UpdateShiftParams) (*readmodel.ShiftRM, error) {
	if !principal.IsManager() {
		return nil, ErrForbidden
	}

	existing, err := s.shiftRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !principal.SameCompany(existing.CompanyID) {
		return nil, ErrForbidden
	}

	status, err := shift.NewStatus(params.Status)
	if err != nil {
		return nil, err
	}
	if !params.EndTime.After(params.StartTime) {
		return nil, shift.ErrInvalidTimeSpan
	}

	assignee, err := s.userRepo.FindByID(ctx, params.AssignedTo)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !principal.SameCompany(assignee.CompanyID) {
		return nil, ErrForbidden
	}

	err = s.shiftRepo.Update(ctx, id, repository.UpdateShiftParams{
		Title:      params.Title,
		StartTime:  params.StartTime,
		EndTime:    params.EndTime,
		AssignedTo: params.AssignedTo,
		Status:     status,
		Notes:      params.Notes,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.shiftRepo.FindByID(ctx, id)
}

func (s *shiftUseCaseImpl) Delete(ctx context.Context, principal auth.Principal, id uuid.UUID) error {
	if !principal.IsManager() {
		return ErrForbidden
	}

	existing, err := s.shiftRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !principal.SameCompany(existing.CompanyID) {
		return ErrForbidden
	}

	if err := s.shiftRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
