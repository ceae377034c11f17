package user

import "errors"

var (
	ErrUserNotFound              = errors.New("user not found")
	ErrOAuthProviderIDExists     = errors.New("oauth provider id already registered")
	ErrAdminPrivilegeRequired    = errors.New("admin privilege required")
	ErrManagerAccessRequired     = errors.New("manager access required")
	ErrInsufficientPermissions   = errors.New("insufficient permissions")
	ErrNotResponsibleForEmployee = errors.New("user is not responsible for this employee")
)
