package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/master/businessunit"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/master/department"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/master/position"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/systemsetting"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/vacation"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/oauth"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, jwt.ErrMissingClaims):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountNotLinked):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrInvalidOAuthState):
		BadRequest(w, "Invalid OAuth state", nil)
	case errors.Is(err, oauth.ErrEmailNotVerified):
		Forbidden(w, "Email not verified")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrOAuthProviderIDExists):
		Conflict(w, err.Error())
	case errors.Is(err, user.ErrInsufficientPermissions),
		errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrManagerAccessRequired),
		errors.Is(err, user.ErrNotResponsibleForEmployee):
		Forbidden(w, err.Error())

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrUnauthorized):
		Forbidden(w, "You are not allowed to access this employee")
	case errors.Is(err, employee.ErrInvalidReference):
		BadRequest(w, err.Error(), nil)

	// Master data
	case errors.Is(err, department.ErrDepartmentNotFound),
		errors.Is(err, position.ErrPositionNotFound),
		errors.Is(err, businessunit.ErrBusinessUnitNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, department.ErrDepartmentNameExists),
		errors.Is(err, position.ErrPositionNameExists),
		errors.Is(err, businessunit.ErrBusinessUnitSlugExists),
		errors.Is(err, department.ErrDepartmentInUse),
		errors.Is(err, position.ErrPositionInUse),
		errors.Is(err, businessunit.ErrBusinessUnitInUse):
		Conflict(w, err.Error())

	// Vacation
	case errors.Is(err, vacation.ErrShiftExceptionNotFound):
		NotFound(w, "Shift exception not found")
	case errors.Is(err, vacation.ErrShiftExceptionDuplicate):
		Conflict(w, err.Error())
	case errors.Is(err, vacation.ErrShiftExceptionEmployee):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, vacation.ErrInvalidYear):
		BadRequest(w, err.Error(), nil)

	// System settings
	case errors.Is(err, systemsetting.ErrSystemSettingNotFound):
		NotFound(w, "No active system setting")
	case errors.Is(err, systemsetting.ErrUnsupportedLogoFormat),
		errors.Is(err, systemsetting.ErrLogoTooLarge):
		BadRequest(w, err.Error(), nil)

	// Reports never leak their cause
	case errors.Is(err, report.ErrReportGenerationFailed):
		InternalServerError(w, "Failed to generate report")

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
