package usecase

import (
	"context"
	"errors"

	"shiftboard/internal/domain/auth"
	"shiftboard/internal/domain/company"
	"shiftboard/internal/domain/user"
	"shiftboard/internal/pkg/jwt"
	"shiftboard/internal/pkg/password"
	"shiftboard/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrTokenGeneration    = errors.New("token generation failed")
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*readmodel.UserRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]readmodel.UserRM, error)
	EmailExists(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, id uuid.UUID, name, email string, role user.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CompanyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CompanyRM, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateWithManager(ctx context.Context, c *company.Company, manager *user.User) error
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials auth.Credentials) (string, auth.Principal, error)
}

type authUseCaseImpl struct {
	userRepo    UserRepository
	companyRepo CompanyRepository
	jwtService  *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, companyRepo CompanyRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		jwtService:  jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials auth.Credentials) (string, auth.Principal, error) {
	userRM, hashedPassword, err := a.userRepo.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return "", auth.Principal{}, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return "", auth.Principal{}, ErrInvalidCredentials
	}

	if !userRM.IsActive {
		return "", auth.Principal{}, ErrUserInactive
	}

	role, err := user.NewRole(userRM.Role)
	if err != nil {
		return "", auth.Principal{}, ErrInvalidCredentials
	}

	companyName := "Unknown"
	if companyRM, err := a.companyRepo.FindByID(ctx, userRM.CompanyID); err == nil {
		companyName = companyRM.Name
	}

	principal := auth.Principal{
		UserID:      userRM.ID,
		Email:       userRM.Email,
		Name:        userRM.Name,
		Role:        role,
		CompanyID:   userRM.CompanyID,
		CompanyName: companyName,
	}

	token, err := a.jwtService.GenerateToken(principal)
	if err != nil {
		return "", auth.Principal{}, ErrTokenGeneration
	}

	return token, principal, nil
}
