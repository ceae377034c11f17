package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/master/businessunit"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type businessUnitRepositoryImpl struct {
	db *database.DB
}

func NewBusinessUnitRepository(db *database.DB) businessunit.BusinessUnitRepository {
	return &businessUnitRepositoryImpl{db: db}
}

// Create implements businessunit.BusinessUnitRepository.
func (r *businessUnitRepositoryImpl) Create(ctx context.Context, unit businessunit.BusinessUnit) (businessunit.BusinessUnit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO business_units (name, slug, legal_name, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, name, slug, legal_name, active, created_at, updated_at
	`

	var result businessunit.BusinessUnit
	err := q.QueryRow(ctx, query, unit.Name, unit.Slug, unit.LegalName, unit.Active).Scan(
		&result.ID, &result.Name, &result.Slug, &result.LegalName, &result.Active,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return businessunit.BusinessUnit{}, businessunit.ErrBusinessUnitSlugExists
		}
		return businessunit.BusinessUnit{}, fmt.Errorf("failed to create business unit: %w", err)
	}

	return result, nil
}

// GetByID implements businessunit.BusinessUnitRepository.
func (r *businessUnitRepositoryImpl) GetByID(ctx context.Context, id int64) (businessunit.BusinessUnit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, slug, legal_name, active, created_at, updated_at
		FROM business_units
		WHERE id = $1 AND deleted_at IS NULL
	`

	var result businessunit.BusinessUnit
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID, &result.Name, &result.Slug, &result.LegalName, &result.Active,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return businessunit.BusinessUnit{}, businessunit.ErrBusinessUnitNotFound
		}
		return businessunit.BusinessUnit{}, fmt.Errorf("failed to get business unit: %w", err)
	}

	return result, nil
}

// List implements businessunit.BusinessUnitRepository.
func (r *businessUnitRepositoryImpl) List(ctx context.Context) ([]businessunit.BusinessUnit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, slug, legal_name, active, created_at, updated_at
		FROM business_units
		WHERE deleted_at IS NULL
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get business units: %w", err)
	}
	defer rows.Close()

	units := []businessunit.BusinessUnit{}
	for rows.Next() {
		var u businessunit.BusinessUnit
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Slug, &u.LegalName, &u.Active,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan business unit: %w", err)
		}
		units = append(units, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return units, nil
}

// Update implements businessunit.BusinessUnitRepository.
func (r *businessUnitRepositoryImpl) Update(ctx context.Context, req businessunit.UpdateBusinessUnitRequest) error {
	q := GetQuerier(ctx, r.db)

	var setClauses []string
	var args []interface{}
	set := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Name != nil {
		set("name", *req.Name)
	}
	if req.Slug != nil {
		set("slug", *req.Slug)
	}
	if req.LegalName != nil {
		set("legal_name", *req.LegalName)
	}
	if req.Active != nil {
		set("active", *req.Active)
	}

	if len(setClauses) == 0 {
		return nil
	}
	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf(
		"UPDATE business_units SET %s WHERE id = $%d AND deleted_at IS NULL",
		strings.Join(setClauses, ", "), len(args),
	)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return businessunit.ErrBusinessUnitSlugExists
		}
		return fmt.Errorf("failed to update business unit: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return businessunit.ErrBusinessUnitNotFound
	}

	return nil
}

// Delete implements businessunit.BusinessUnitRepository. Units with live employees cannot be deleted.
func (r *businessUnitRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	var inUse bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM employees WHERE business_unit_id = $1 AND deleted_at IS NULL)`,
		id,
	).Scan(&inUse)
	if err != nil {
		return fmt.Errorf("failed to check business unit usage: %w", err)
	}
	if inUse {
		return businessunit.ErrBusinessUnitInUse
	}

	commandTag, err := q.Exec(ctx,
		`UPDATE business_units SET deleted_at = NOW(), active = false, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete business unit: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return businessunit.ErrBusinessUnitNotFound
	}

	return nil
}
