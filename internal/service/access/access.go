// Package access decides which employees the caller behind a request may see.
package access

import (
	"context"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/jwt"
)

type Guard struct {
	userRepo user.UserRepository
}

func NewGuard(userRepo user.UserRepository) *Guard {
	return &Guard{userRepo: userRepo}
}

// CanAccessEmployee returns employee.ErrUnauthorized unless the caller is an admin,
// a user responsible for the employee, or the employee themself.
func (g *Guard) CanAccessEmployee(ctx context.Context, employeeID int64) error {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	if user.HasPermission(claims.Role, user.PermissionEmployeeViewAll) {
		return nil
	}
	if claims.EmployeeID != nil && *claims.EmployeeID == employeeID {
		return nil
	}
	if claims.Role == user.RoleManager {
		ok, err := g.userRepo.IsResponsibleFor(ctx, claims.UserID, employeeID)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}

	return employee.ErrUnauthorized
}

// ScopeFilter narrows a directory filter to what the caller may see. Callers without
// employee.view_all only get the employees they are responsible for.
func (g *Guard) ScopeFilter(ctx context.Context, filter *employee.EmployeeFilter) error {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	if user.HasPermission(claims.Role, user.PermissionEmployeeViewAll) {
		return nil
	}
	filter.ResponsibleUserID = claims.UserID
	return nil
}
