//go:build unit || e2e

package builder

import (
	"shiftboard/internal/domain/auth"
	"shiftboard/internal/domain/user"

	reqdto "shiftboard/internal/handler/dto/request"

	"github.com/google/uuid"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.Password = password
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildCredentials() (auth.Credentials, error) {
	return auth.NewCredentials(a.Email, a.Password)
}

type PrincipalBuilder struct {
	UserID      uuid.UUID
	Email       string
	Name        string
	Role        user.Role
	CompanyID   uuid.UUID
	CompanyName string
}

func NewPrincipalBuilder() *PrincipalBuilder {
	return &PrincipalBuilder{
		UserID:      uuid.New(),
		Email:       "manager@example.com",
		Name:        "Test Manager",
		Role:        user.RoleManager,
		CompanyID:   uuid.New(),
		CompanyName: "Test Company",
	}
}

func (p *PrincipalBuilder) AsEmployee() *PrincipalBuilder {
	p.Role = user.RoleEmployee
	p.Email = "employee@example.com"
	p.Name = "Test Employee"
	return p
}

func (p *PrincipalBuilder) WithCompanyID(companyID uuid.UUID) *PrincipalBuilder {
	p.CompanyID = companyID
	return p
}

func (p *PrincipalBuilder) WithUserID(userID uuid.UUID) *PrincipalBuilder {
	p.UserID = userID
	return p
}

func (p *PrincipalBuilder) Build() auth.Principal {
	return auth.Principal{
		UserID:      p.UserID,
		Email:       p.Email,
		Name:        p.Name,
		Role:        p.Role,
		CompanyID:   p.CompanyID,
		CompanyName: p.CompanyName,
	}
}
