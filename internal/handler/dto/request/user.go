package request

import (
	"shiftboard/internal/usecase"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email     string    `json:"email" binding:"required,email"`
	Password  string    `json:"password" binding:"required,min=6"`
	Name      string    `json:"name" binding:"required"`
	Role      string    `json:"role" binding:"required"`
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
}

func (r *CreateUserRequest) ToParams() usecase.CreateUserParams {
	return usecase.CreateUserParams{
		Email:     r.Email,
		Password:  r.Password,
		Name:      r.Name,
		Role:      r.Role,
		CompanyID: r.CompanyID,
	}
}

type UpdateUserRequest struct {
	ID        uuid.UUID `json:"id" binding:"required"`
	Name      string    `json:"name" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
	Role      string    `json:"role" binding:"required"`
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
}

func (r *UpdateUserRequest) ToParams() usecase.UpdateUserParams {
	return usecase.UpdateUserParams{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Role:      r.Role,
		CompanyID: r.CompanyID,
	}
}

type DeleteUserRequest struct {
	ID        uuid.UUID `json:"id" binding:"required"`
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
}
