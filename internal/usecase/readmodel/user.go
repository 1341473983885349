package readmodel

import (
	"github.com/google/uuid"
)

type UserRM struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CompanyID uuid.UUID `json:"company_id"`
	IsActive  bool      `json:"is_active"`
}
