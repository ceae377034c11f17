package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/systemsetting"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type systemSettingRepositoryImpl struct {
	db *database.DB
}

func NewSystemSettingRepository(db *database.DB) systemsetting.SystemSettingRepository {
	return &systemSettingRepositoryImpl{db: db}
}

func scanSystemSetting(row pgx.Row) (systemsetting.SystemSetting, error) {
	var s systemsetting.SystemSetting
	err := row.Scan(&s.ID, &s.LogoURL, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// GetActive implements systemsetting.SystemSettingRepository.
func (r *systemSettingRepositoryImpl) GetActive(ctx context.Context) (systemsetting.SystemSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, logo_url, active, created_at, updated_at
		FROM system_settings
		WHERE active = true
		ORDER BY id DESC
		LIMIT 1
	`

	setting, err := scanSystemSetting(q.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return systemsetting.SystemSetting{}, systemsetting.ErrSystemSettingNotFound
		}
		return systemsetting.SystemSetting{}, fmt.Errorf("failed to get active system setting: %w", err)
	}

	return setting, nil
}

// UpsertActiveLogo implements systemsetting.SystemSettingRepository.
func (r *systemSettingRepositoryImpl) UpsertActiveLogo(ctx context.Context, logoURL *string) (systemsetting.SystemSetting, error) {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE system_settings
		SET logo_url = $1, updated_at = NOW()
		WHERE id = (SELECT id FROM system_settings WHERE active = true ORDER BY id DESC LIMIT 1)
		RETURNING id, logo_url, active, created_at, updated_at
	`

	setting, err := scanSystemSetting(q.QueryRow(ctx, updateQuery, logoURL))
	if err == nil {
		return setting, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return systemsetting.SystemSetting{}, fmt.Errorf("failed to update system setting: %w", err)
	}

	insertQuery := `
		INSERT INTO system_settings (logo_url, active, created_at, updated_at)
		VALUES ($1, true, NOW(), NOW())
		RETURNING id, logo_url, active, created_at, updated_at
	`

	setting, err = scanSystemSetting(q.QueryRow(ctx, insertQuery, logoURL))
	if err != nil {
		return systemsetting.SystemSetting{}, fmt.Errorf("failed to create system setting: %w", err)
	}

	return setting, nil
}
