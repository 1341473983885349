package response

import (
	"github.com/google/uuid"
)

type RegisterCompanyResponse struct {
	Message   string    `json:"message"`
	CompanyID uuid.UUID `json:"companyId"`
	UserID    uuid.UUID `json:"userId"`
}
