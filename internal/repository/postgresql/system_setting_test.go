package postgresql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/systemsetting"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var systemSettingColumnNames = []string{"id", "logo_url", "active", "created_at", "updated_at"}

func TestSystemSettingGetActive_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewSystemSettingRepository(database.NewFromPool(mock))

	mock.ExpectQuery(regexp.QuoteMeta("FROM system_settings")).WillReturnError(pgx.ErrNoRows)

	_, err = repo.GetActive(context.Background())
	assert.ErrorIs(t, err, systemsetting.ErrSystemSettingNotFound)
}

func TestSystemSettingUpsertActiveLogo_InsertsWhenNoActiveRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewSystemSettingRepository(database.NewFromPool(mock))

	logo := "https://cdn.example.com/logo.png"
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE system_settings")).
		WithArgs(&logo).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO system_settings")).
		WithArgs(&logo).
		WillReturnRows(pgxmock.NewRows(systemSettingColumnNames).AddRow(int64(1), &logo, true, ts, ts))

	setting, err := repo.UpsertActiveLogo(context.Background(), &logo)
	require.NoError(t, err)
	assert.Equal(t, int64(1), setting.ID)
	require.NotNil(t, setting.LogoURL)
	assert.Equal(t, logo, *setting.LogoURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}
