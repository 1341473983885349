package usecase

import (
	"context"
	"errors"

	"shiftboard/internal/domain/auth"
	"shiftboard/internal/domain/user"
	"shiftboard/internal/infra"
	"shiftboard/internal/pkg/password"
	"shiftboard/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	// ErrForbidden covers both insufficient role and tenant mismatch; the
	// handler layer maps it to 403 uniformly.
	ErrForbidden   = errors.New("operation not permitted for this principal")
	ErrNotFound    = errors.New("resource not found")
	ErrEmailExists = errors.New("email already exists")
)

type CreateUserParams struct {
	Email     string
	Password  string
	Name      string
	Role      string
	CompanyID uuid.UUID
}

type UpdateUserParams struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      string
	CompanyID uuid.UUID
}

type UserUseCase interface {
	List(ctx context.Context, principal auth.Principal) ([]readmodel.UserRM, error)
	Create(ctx context.Context, principal auth.Principal, params CreateUserParams) (uuid.UUID, error)
	Update(ctx context.Context, principal auth.Principal, params UpdateUserParams) error
	Delete(ctx context.Context, principal auth.Principal, id, companyID uuid.UUID) error
}

type userUseCaseImpl struct {
	userRepo UserRepository
}

func NewUserUseCase(userRepo UserRepository) UserUseCase {
	return &userUseCaseImpl{userRepo: userRepo}
}

func (u *userUseCaseImpl) List(ctx context.Context, principal auth.Principal) ([]readmodel.UserRM, error) {
	if !principal.IsManager() {
		return nil, ErrForbidden
	}

	return u.userRepo.ListByCompany(ctx, principal.CompanyID)
}

func (u *userUseCaseImpl) Create(ctx context.Context, principal auth.Principal, params CreateUserParams) (uuid.UUID, error) {
	if !principal.IsManager() {
		return uuid.Nil, ErrForbidden
	}
	if !principal.SameCompany(params.CompanyID) {
		return uuid.Nil, ErrForbidden
	}

	role, err := user.NewRole(params.Role)
	if err != nil {
		return uuid.Nil, err
	}
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return uuid.Nil, err
	}
	pw, err := user.NewPassword(params.Password)
	if err != nil {
		return uuid.Nil, err
	}
	name, err := user.NewName(params.Name)
	if err != nil {
		return uuid.Nil, err
	}

	exists, err := u.userRepo.EmailExists(ctx, email.Value(), uuid.Nil)
	if err != nil {
		return uuid.Nil, err
	}
	if exists {
		return uuid.Nil, ErrEmailExists
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return uuid.Nil, err
	}

	newUser := user.NewUser(email, hash, name, role, principal.CompanyID)
	if err := u.userRepo.Create(ctx, newUser); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmailExists
		}
		return uuid.Nil, err
	}

	return newUser.ID(), nil
}

func (u *userUseCaseImpl) Update(ctx context.Context, principal auth.Principal, params UpdateUserParams) error {
	if !principal.IsManager() {
		return ErrForbidden
	}
	if !principal.SameCompany(params.CompanyID) {
		return ErrForbidden
	}

	role, err := user.NewRole(params.Role)
	if err != nil {
		return err
	}
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return err
	}
	name, err := user.NewName(params.Name)
	if err != nil {
		return err
	}

	target, err := u.userRepo.FindByID(ctx, params.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrNotFound
		}
		return err
	}

	// The stored row is re-checked so a manager cannot reach another
	// tenant's user by guessing ids.
	if !principal.SameCompany(target.CompanyID) {
		return ErrForbidden
	}

	exists, err := u.userRepo.EmailExists(ctx, email.Value(), params.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailExists
	}

	if err := u.userRepo.Update(ctx, params.ID, name.Value(), email.Value(), role); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (u *userUseCaseImpl) Delete(ctx context.Context, principal auth.Principal, id, companyID uuid.UUID) error {
	if !principal.IsManager() {
		return ErrForbidden
	}
	if !principal.SameCompany(companyID) {
		return ErrForbidden
	}

	target, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !principal.SameCompany(target.CompanyID) {
		return ErrForbidden
	}

	if err := u.userRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
