package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

const employeeDetailColumns = `
			e.id, e.code, e.first_name, e.last_name, e.second_last_name, e.hire_date,
			e.department_id, e.position_id, e.business_unit_id, e.person_id, e.user_id,
			e.created_at, e.updated_at, e.deleted_at,
			d.name AS department_name,
			p.name AS position_name,
			bu.name AS business_unit_name,
			bu.slug AS business_unit_slug,
			pe.rfc, pe.curp, pe.imss_nss`

const employeeDetailJoins = `
		FROM employees e
		INNER JOIN business_units bu ON e.business_unit_id = bu.id
		LEFT JOIN departments d ON e.department_id = d.id
		LEFT JOIN positions p ON e.position_id = p.id
		LEFT JOIN persons pe ON e.person_id = pe.id`

type employeeRepositoryImpl struct {
	db             *database.DB
	systemBusiness []string
}

// NewEmployeeRepository scopes every directory query to the given business unit slugs.
func NewEmployeeRepository(db *database.DB, systemBusiness []string) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db, systemBusiness: systemBusiness}
}

func scanEmployeeWithDetails(row pgx.Row, emp *employee.EmployeeWithDetails) error {
	return row.Scan(
		&emp.ID, &emp.Code, &emp.FirstName, &emp.LastName, &emp.SecondLastName, &emp.HireDate,
		&emp.DepartmentID, &emp.PositionID, &emp.BusinessUnitID, &emp.PersonID, &emp.UserID,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
		&emp.DepartmentName, &emp.PositionName, &emp.BusinessUnitName, &emp.BusinessUnitSlug,
		&emp.RFC, &emp.CURP, &emp.IMSSNSS,
	)
}

// buildDirectoryWhere translates the filter into a WHERE clause. Business unit scoping is always applied.
func (e *employeeRepositoryImpl) buildDirectoryWhere(filter employee.EmployeeFilter) (string, []interface{}) {
	conditions := []string{"bu.active = true", "bu.slug = ANY($1)"}
	args := []interface{}{e.systemBusiness}
	argIdx := 2

	if !filter.OnlyInactive {
		conditions = append(conditions, "e.deleted_at IS NULL")
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(CONCAT_WS(' ', e.first_name, e.last_name, e.second_last_name) ILIKE $%d OR e.code = $%d OR pe.rfc ILIKE $%d OR pe.curp ILIKE $%d OR pe.imss_nss ILIKE $%d)",
			argIdx, argIdx+1, argIdx, argIdx, argIdx,
		))
		args = append(args, "%"+search+"%", search)
		argIdx += 2
	}
	if filter.DepartmentID > 0 {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argIdx))
		args = append(args, filter.DepartmentID)
		argIdx++
	}
	if filter.PositionID > 0 {
		conditions = append(conditions, fmt.Sprintf("e.position_id = $%d", argIdx))
		args = append(args, filter.PositionID)
		argIdx++
	}
	if filter.EmployeeID > 0 {
		conditions = append(conditions, fmt.Sprintf("e.id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if start, ok := validator.IsValidDate(filter.StartDate); ok {
		conditions = append(conditions, fmt.Sprintf("e.hire_date >= $%d", argIdx))
		args = append(args, start)
		argIdx++
	}
	if end, ok := validator.IsValidDate(filter.EndDate); ok {
		conditions = append(conditions, fmt.Sprintf("e.hire_date <= $%d", argIdx))
		args = append(args, end)
		argIdx++
	}
	if filter.ResponsibleUserID > 0 {
		// either path qualifies: an explicit assignment or the employee's own linked account
		conditions = append(conditions, fmt.Sprintf(
			`(EXISTS (
				SELECT 1 FROM user_responsible_employees ure
				WHERE ure.employee_id = e.id AND ure.user_id = $%d AND ure.deleted_at IS NULL
			) OR e.user_id = $%d)`,
			argIdx, argIdx,
		))
		args = append(args, filter.ResponsibleUserID)
	}

	return strings.Join(conditions, " AND "), args
}

func (e *employeeRepositoryImpl) queryDetails(ctx context.Context, query string, args ...interface{}) ([]employee.EmployeeWithDetails, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.EmployeeWithDetails{}
	for rows.Next() {
		var emp employee.EmployeeWithDetails
		if err := scanEmployeeWithDetails(rows, &emp); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeWithDetails, int64, error) {
	q := GetQuerier(ctx, e.db)

	whereClause, args := e.buildDirectoryWhere(filter)

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s WHERE %s", employeeDetailJoins, whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	argIdx := len(args) + 1
	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s
		%s
		WHERE %s
		ORDER BY e.code ASC
		LIMIT $%d OFFSET $%d
	`, employeeDetailColumns, employeeDetailJoins, whereClause, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	employees, err := e.queryDetails(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// ListForReport implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListForReport(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeWithDetails, error) {
	whereClause, args := e.buildDirectoryWhere(filter)

	query := fmt.Sprintf(`
		SELECT %s
		%s
		WHERE %s
		ORDER BY e.code ASC
	`, employeeDetailColumns, employeeDetailJoins, whereClause)

	return e.queryDetails(ctx, query, args...)
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.EmployeeWithDetails, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`
		SELECT %s
		%s
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`, employeeDetailColumns, employeeDetailJoins)

	var emp employee.EmployeeWithDetails
	if err := scanEmployeeWithDetails(q.QueryRow(ctx, query, id), &emp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeWithDetails{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeWithDetails{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID int64) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, code, first_name, last_name, second_last_name, hire_date,
			department_id, position_id, business_unit_id, person_id, user_id,
			created_at, updated_at, deleted_at
		FROM employees
		WHERE user_id = $1 AND deleted_at IS NULL
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, userID).Scan(
		&found.ID, &found.Code, &found.FirstName, &found.LastName, &found.SecondLastName, &found.HireDate,
		&found.DepartmentID, &found.PositionID, &found.BusinessUnitID, &found.PersonID, &found.UserID,
		&found.CreatedAt, &found.UpdatedAt, &found.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user id %d: %w", userID, err)
	}

	return found, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			code, first_name, last_name, second_last_name, hire_date,
			department_id, position_id, business_unit_id, person_id, user_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	created := newEmployee
	err := q.QueryRow(ctx, query,
		newEmployee.Code, newEmployee.FirstName, newEmployee.LastName, newEmployee.SecondLastName,
		newEmployee.HireDate, newEmployee.DepartmentID, newEmployee.PositionID,
		newEmployee.BusinessUnitID, newEmployee.PersonID, newEmployee.UserID,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return employee.Employee{}, mapEmployeeWriteError(err, "create")
	}

	return created, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, e.db)

	var setClauses []string
	var args []interface{}
	set := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Code != nil {
		set("code", *req.Code)
	}
	if req.FirstName != nil {
		set("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		set("last_name", *req.LastName)
	}
	if req.SecondLastName != nil {
		if *req.SecondLastName == "" {
			set("second_last_name", nil)
		} else {
			set("second_last_name", *req.SecondLastName)
		}
	}
	if req.HireDate != nil {
		set("hire_date", *req.HireDate)
	}
	if req.DepartmentID != nil {
		set("department_id", *req.DepartmentID)
	}
	if req.PositionID != nil {
		set("position_id", *req.PositionID)
	}
	if req.BusinessUnitID != nil {
		set("business_unit_id", *req.BusinessUnitID)
	}
	if req.UserID != nil {
		if *req.UserID <= 0 {
			set("user_id", nil)
		} else {
			set("user_id", *req.UserID)
		}
	}

	if len(setClauses) == 0 {
		return nil // No updates provided
	}
	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	sql := fmt.Sprintf(
		"UPDATE employees SET %s WHERE id = $%d AND deleted_at IS NULL RETURNING id",
		strings.Join(setClauses, ", "), len(args),
	)

	var updatedID int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return mapEmployeeWriteError(err, "update")
	}
	return nil
}

// SoftDelete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee with id %d: %w", id, err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func mapEmployeeWriteError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return employee.ErrEmployeeCodeExists
		case pgForeignKeyViolation:
			return employee.ErrInvalidReference
		}
	}
	return fmt.Errorf("failed to %s employee: %w", op, err)
}
