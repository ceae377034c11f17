package businessunit

import "errors"

var (
	ErrBusinessUnitNotFound   = errors.New("business unit not found")
	ErrBusinessUnitSlugExists = errors.New("business unit with this slug already exists")
	ErrBusinessUnitInUse      = errors.New("business unit is still assigned to employees")
)
