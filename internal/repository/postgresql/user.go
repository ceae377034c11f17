package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `
		u.id, u.email, u.password_hash, u.role, u.oauth_provider_id,
		u.created_at, u.updated_at, u.deleted_at,
		(SELECT e.id FROM employees e WHERE e.user_id = u.id AND e.deleted_at IS NULL LIMIT 1) AS employee_id`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.OAuthProviderID,
		&u.CreatedAt, &u.UpdatedAt, &u.DeletedAt,
		&u.EmployeeID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM users u
		WHERE LOWER(u.email) = LOWER($1) AND u.deleted_at IS NULL
	`, userColumns)

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, err
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM users u
		WHERE u.id = $1 AND u.deleted_at IS NULL
	`, userColumns)

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, fmt.Errorf("failed to get user by id %d: %w", id, err)
	}
	return u, err
}

// LinkGoogleAccount implements user.UserRepository.
func (r *userRepositoryImpl) LinkGoogleAccount(ctx context.Context, googleID string, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users u
		SET oauth_provider_id = $1, updated_at = NOW()
		WHERE LOWER(u.email) = LOWER($2) AND u.deleted_at IS NULL
		RETURNING ` + userColumns

	u, err := scanUser(q.QueryRow(ctx, query, googleID, email))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return user.User{}, user.ErrOAuthProviderIDExists
		}
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, err
		}
		return user.User{}, fmt.Errorf("failed to link google account: %w", err)
	}
	return u, nil
}

// IsResponsibleFor implements user.UserRepository.
func (r *userRepositoryImpl) IsResponsibleFor(ctx context.Context, userID, employeeID int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_responsible_employees ure
			WHERE ure.user_id = $1 AND ure.employee_id = $2 AND ure.deleted_at IS NULL
		) OR EXISTS (
			SELECT 1 FROM employees e
			WHERE e.id = $2 AND e.user_id = $1
		)
	`

	var ok bool
	if err := q.QueryRow(ctx, query, userID, employeeID).Scan(&ok); err != nil {
		return false, fmt.Errorf("failed to check responsibility of user %d: %w", userID, err)
	}
	return ok, nil
}
