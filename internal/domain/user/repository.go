package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
	// IsResponsibleFor reports whether the user may act on the employee, either through an
	// explicit assignment or because the employee is linked to the user's own account.
	IsResponsibleFor(ctx context.Context, userID, employeeID int64) (bool, error)
}
