package request

import (
	"shiftboard/internal/usecase"
)

type RegisterCompanyRequest struct {
	CompanyName  string `json:"companyName" binding:"required"`
	CompanyEmail string `json:"companyEmail" binding:"required,email"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	ManagerName  string `json:"managerName" binding:"required"`
	Role         string `json:"role" binding:"required"`
}

func (r *RegisterCompanyRequest) ToParams() usecase.RegisterCompanyParams {
	return usecase.RegisterCompanyParams{
		CompanyName:  r.CompanyName,
		CompanyEmail: r.CompanyEmail,
		Email:        r.Email,
		Password:     r.Password,
		ManagerName:  r.ManagerName,
		Role:         r.Role,
	}
}
