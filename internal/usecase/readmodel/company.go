package readmodel

import (
	"github.com/google/uuid"
)

type CompanyRM struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
