package auth

import (
	"shiftboard/internal/domain/user"

	"github.com/google/uuid"
)

// Principal is the identity decoded from a session token. It is immutable
// and valid only for the token's lifetime; it is never persisted on its own.
type Principal struct {
	UserID      uuid.UUID
	Email       string
	Name        string
	Role        user.Role
	CompanyID   uuid.UUID
	CompanyName string
}

func (p Principal) IsManager() bool {
	return p.Role == user.RoleManager
}

// SameCompany reports whether a resource scoped to companyID is visible to
// this principal. Tenant isolation rests on this check.
func (p Principal) SameCompany(companyID uuid.UUID) bool {
	return p.CompanyID == companyID
}
