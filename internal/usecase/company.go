package usecase

import (
	"context"
	"errors"

	"shiftboard/internal/domain/auth"
	"shiftboard/internal/domain/company"
	"shiftboard/internal/domain/user"
	"shiftboard/internal/infra"
	"shiftboard/internal/pkg/jwt"
	"shiftboard/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrCompanyEmailExists = errors.New("company email already exists")
	ErrUserEmailExists    = errors.New("user email already exists")
	ErrRegistrationRole   = errors.New("invalid role for company registration")
)

type RegisterCompanyParams struct {
	CompanyName  string
	CompanyEmail string
	Email        string
	Password     string
	ManagerName  string
	Role         string
}

type RegisterResult struct {
	CompanyID uuid.UUID
	UserID    uuid.UUID
	Token     string
	Principal auth.Principal
}

type CompanyUseCase interface {
	Register(ctx context.Context, params RegisterCompanyParams) (*RegisterResult, error)
}

type companyUseCaseImpl struct {
	companyRepo CompanyRepository
	userRepo    UserRepository
	jwtService  *jwt.Service
}

func NewCompanyUseCase(companyRepo CompanyRepository, userRepo UserRepository, jwtService *jwt.Service) CompanyUseCase {
	return &companyUseCaseImpl{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		jwtService:  jwtService,
	}
}

func (c *companyUseCaseImpl) Register(ctx context.Context, params RegisterCompanyParams) (*RegisterResult, error) {
	// Self-registration only ever creates the tenant's first manager.
	if params.Role != user.RoleManager.String() {
		return nil, ErrRegistrationRole
	}

	companyEmail, err := user.NewEmail(params.CompanyEmail)
	if err != nil {
		return nil, err
	}
	managerEmail, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, err
	}
	managerPassword, err := user.NewPassword(params.Password)
	if err != nil {
		return nil, err
	}
	managerName, err := user.NewName(params.ManagerName)
	if err != nil {
		return nil, err
	}

	newCompany, err := company.NewCompany(params.CompanyName, companyEmail)
	if err != nil {
		return nil, err
	}

	companyExists, err := c.companyRepo.EmailExists(ctx, companyEmail.Value())
	if err != nil {
		return nil, err
	}
	if companyExists {
		return nil, ErrCompanyEmailExists
	}

	userExists, err := c.userRepo.EmailExists(ctx, managerEmail.Value(), uuid.Nil)
	if err != nil {
		return nil, err
	}
	if userExists {
		return nil, ErrUserEmailExists
	}

	hash, err := password.HashPassword(managerPassword.Value())
	if err != nil {
		return nil, err
	}

	manager := user.NewUser(managerEmail, hash, managerName, user.RoleManager, newCompany.ID())

	if err := c.companyRepo.CreateWithManager(ctx, newCompany, manager); err != nil {
		// The EmailExists checks above race with concurrent registrations; the
		// unique indexes are the authority, so map their violations back to
		// the same client-facing errors.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			if infra.ConstraintName(err) == "companies_email_key" {
				return nil, ErrCompanyEmailExists
			}
			return nil, ErrUserEmailExists
		}
		return nil, err
	}

	principal := auth.Principal{
		UserID:      manager.ID(),
		Email:       manager.Email().Value(),
		Name:        manager.Name().Value(),
		Role:        user.RoleManager,
		CompanyID:   newCompany.ID(),
		CompanyName: newCompany.Name(),
	}

	token, err := c.jwtService.GenerateToken(principal)
	if err != nil {
		return nil, ErrTokenGeneration
	}

	return &RegisterResult{
		CompanyID: newCompany.ID(),
		UserID:    manager.ID(),
		Token:     token,
		Principal: principal,
	}, nil
}
