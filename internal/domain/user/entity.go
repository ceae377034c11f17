package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Back-office administrator - full access
	RoleManager  Role = "manager"  // Sees the employees assigned to them
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID              int64
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time

	// Join
	EmployeeID *int64
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// IsAdmin checks if user is a back-office administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}
