package user

type Permission string

const (
	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Master data
	PermissionMasterManage Permission = "master.manage"

	// Vacation days and balances
	PermissionVacationManage Permission = "vacation.manage"

	// Reports
	PermissionReportsView Permission = "reports.view"

	// System settings
	PermissionSettingsManage Permission = "settings.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionMasterManage,
		PermissionVacationManage,
		PermissionReportsView,
		PermissionSettingsManage,
	},
	RoleManager: {
		// Managers are scoped to the employees they are responsible for
		PermissionVacationManage,
		PermissionReportsView,
	},
	RoleEmployee: {},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
