package entity

import "time"

// UserEntity ist das Lesemodell der Benutzerdaten; Authentifizierung selbst
// passiert außerhalb dieses Dienstes.
type UserEntity struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Role      UserRole  `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type UserRole string

const (
	RoleAdmin    UserRole = "Admin"
	RoleHR       UserRole = "HR"
	RoleManager  UserRole = "Manager"
	RoleEmployee UserRole = "Employee"
)

func (u UserRole) IsValid() bool {
	switch u {
	case RoleAdmin, RoleHR, RoleManager, RoleEmployee:
		return true
	}
	return false
}
