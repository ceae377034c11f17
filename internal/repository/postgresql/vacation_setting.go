package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/vacation"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/database"
)

type vacationSettingRepositoryImpl struct {
	db *database.DB
}

func NewVacationSettingRepository(db *database.DB) vacation.VacationSettingRepository {
	return &vacationSettingRepositoryImpl{db: db}
}

// List implements vacation.VacationSettingRepository.
func (r *vacationSettingRepositoryImpl) List(ctx context.Context) ([]vacation.VacationSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, years_from, years_to, vacation_days
		FROM vacation_settings
		ORDER BY years_from ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get vacation settings: %w", err)
	}
	defer rows.Close()

	settings := []vacation.VacationSetting{}
	for rows.Next() {
		var s vacation.VacationSetting
		if err := rows.Scan(&s.ID, &s.YearsFrom, &s.YearsTo, &s.VacationDays); err != nil {
			return nil, fmt.Errorf("failed to scan vacation setting: %w", err)
		}
		settings = append(settings, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return settings, nil
}
