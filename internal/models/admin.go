package models

import "github.com/gigspace/core/internal/access"

// AdminUser is a dashboard account. Access codes are stored as-is; the
// dashboard trades hashing for recoverability on purpose.
type AdminUser struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	AccessCode string      `json:"access_code"`
	Role       access.Role `json:"role"`
}

// Identity converts the account to its request identity.
func (a AdminUser) Identity() access.Identity {
	return access.Identity{ID: a.ID, Email: a.Email, Name: a.Name, Role: a.Role}
}
