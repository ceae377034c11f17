package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/vacation"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const shiftExceptionColumns = `id, employee_id, date, type, description, created_at, updated_at, deleted_at`

type shiftExceptionRepositoryImpl struct {
	db *database.DB
}

func NewShiftExceptionRepository(db *database.DB) vacation.ShiftExceptionRepository {
	return &shiftExceptionRepositoryImpl{db: db}
}

func scanShiftException(row pgx.Row) (vacation.ShiftException, error) {
	var ex vacation.ShiftException
	err := row.Scan(
		&ex.ID,
		&ex.EmployeeID,
		&ex.Date,
		&ex.Type,
		&ex.Description,
		&ex.CreatedAt,
		&ex.UpdatedAt,
		&ex.DeletedAt,
	)
	return ex, err
}

// Create implements vacation.ShiftExceptionRepository.
func (r *shiftExceptionRepositoryImpl) Create(ctx context.Context, exception vacation.ShiftException) (vacation.ShiftException, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_exceptions (employee_id, date, type, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + shiftExceptionColumns

	created, err := scanShiftException(q.QueryRow(ctx, query,
		exception.EmployeeID,
		exception.Date,
		exception.Type,
		exception.Description,
	))
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return vacation.ShiftException{}, vacation.ErrShiftExceptionDuplicate
		}
		if isPgError(err, pgForeignKeyViolation) {
			return vacation.ShiftException{}, vacation.ErrShiftExceptionEmployee
		}
		return vacation.ShiftException{}, fmt.Errorf("failed to create shift exception: %w", err)
	}

	return created, nil
}

// GetByID implements vacation.ShiftExceptionRepository.
func (r *shiftExceptionRepositoryImpl) GetByID(ctx context.Context, id int64) (vacation.ShiftException, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftExceptionColumns + `
		FROM shift_exceptions
		WHERE id = $1 AND deleted_at IS NULL
	`

	ex, err := scanShiftException(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.ShiftException{}, vacation.ErrShiftExceptionNotFound
		}
		return vacation.ShiftException{}, fmt.Errorf("failed to get shift exception: %w", err)
	}

	return ex, nil
}

// ListByEmployee implements vacation.ShiftExceptionRepository.
func (r *shiftExceptionRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64, year int) ([]vacation.ShiftException, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftExceptionColumns + `
		FROM shift_exceptions
		WHERE employee_id = $1 AND deleted_at IS NULL`
	args := []interface{}{employeeID}
	if year != 0 {
		start, end := yearBounds(year)
		query += ` AND date >= $2 AND date < $3`
		args = append(args, start, end)
	}
	query += ` ORDER BY date ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift exceptions: %w", err)
	}
	defer rows.Close()

	exceptions := []vacation.ShiftException{}
	for rows.Next() {
		ex, err := scanShiftException(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift exception: %w", err)
		}
		exceptions = append(exceptions, ex)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return exceptions, nil
}

// SoftDelete implements vacation.ShiftExceptionRepository.
func (r *shiftExceptionRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_exceptions
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift exception: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return vacation.ErrShiftExceptionNotFound
	}

	return nil
}

// VacationDatesByYear implements vacation.ShiftExceptionRepository.
func (r *shiftExceptionRepositoryImpl) VacationDatesByYear(ctx context.Context, employeeIDs []int64, year int) (map[int64][]time.Time, error) {
	result := make(map[int64][]time.Time, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return result, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, date
		FROM shift_exceptions
		WHERE employee_id = ANY($1)
			AND type = 'vacation'
			AND deleted_at IS NULL
			AND date >= $2 AND date < $3
		ORDER BY employee_id ASC, date ASC
	`

	start, end := yearBounds(year)
	rows, err := q.Query(ctx, query, employeeIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get vacation dates for %d: %w", year, err)
	}
	defer rows.Close()

	for rows.Next() {
		var employeeID int64
		var date time.Time
		if err := rows.Scan(&employeeID, &date); err != nil {
			return nil, fmt.Errorf("failed to scan vacation date: %w", err)
		}
		result[employeeID] = append(result[employeeID], date)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// EarliestVacationYear implements vacation.ShiftExceptionRepository.
func (r *shiftExceptionRepositoryImpl) EarliestVacationYear(ctx context.Context) (int, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(EXTRACT(YEAR FROM MIN(date))::int, 0)
		FROM shift_exceptions
		WHERE type = 'vacation' AND deleted_at IS NULL
	`

	var year int
	if err := q.QueryRow(ctx, query).Scan(&year); err != nil {
		return 0, false, fmt.Errorf("failed to get earliest vacation year: %w", err)
	}

	return year, year > 0, nil
}

// yearBounds returns the half-open date range [Jan 1 of year, Jan 1 of year+1).
func yearBounds(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}
