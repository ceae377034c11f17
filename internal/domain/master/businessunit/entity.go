package businessunit

import "time"

// BusinessUnit is the legal entity an employee is hired by. Only active units whose
// slug is part of the configured system-business scope appear in reports.
type BusinessUnit struct {
	ID        int64
	Name      string
	Slug      string
	LegalName *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
