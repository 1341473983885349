package response

import (
	"shiftboard/internal/domain/auth"

	"github.com/google/uuid"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type PrincipalResponse struct {
	UserID      uuid.UUID `json:"userId"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	CompanyID   uuid.UUID `json:"companyId"`
	CompanyName string    `json:"companyName"`
}

type VerifyResponse struct {
	User PrincipalResponse `json:"user"`
}

func FromPrincipal(p auth.Principal) PrincipalResponse {
	return PrincipalResponse{
		UserID:      p.UserID,
		Email:       p.Email,
		Name:        p.Name,
		Role:        p.Role.String(),
		CompanyID:   p.CompanyID,
		CompanyName: p.CompanyName,
	}
}
