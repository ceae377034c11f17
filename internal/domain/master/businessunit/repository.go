package businessunit

import "context"

type BusinessUnitRepository interface {
	Create(ctx context.Context, unit BusinessUnit) (BusinessUnit, error)
	GetByID(ctx context.Context, id int64) (BusinessUnit, error)
	List(ctx context.Context) ([]BusinessUnit, error)
	Update(ctx context.Context, req UpdateBusinessUnitRequest) error
	Delete(ctx context.Context, id int64) error
}
