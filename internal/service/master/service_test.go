package master

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/master/businessunit"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/master/department"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/master/position"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBusinessUnitRepo struct {
	units   []businessunit.BusinessUnit
	created businessunit.BusinessUnit
}

func (f *fakeBusinessUnitRepo) Create(_ context.Context, unit businessunit.BusinessUnit) (businessunit.BusinessUnit, error) {
	unit.ID = int64(len(f.units) + 1)
	f.created = unit
	f.units = append(f.units, unit)
	return unit, nil
}

func (f *fakeBusinessUnitRepo) GetByID(_ context.Context, id int64) (businessunit.BusinessUnit, error) {
	for _, u := range f.units {
		if u.ID == id {
			return u, nil
		}
	}
	return businessunit.BusinessUnit{}, businessunit.ErrBusinessUnitNotFound
}

func (f *fakeBusinessUnitRepo) List(context.Context) ([]businessunit.BusinessUnit, error) {
	return f.units, nil
}

func (f *fakeBusinessUnitRepo) Update(context.Context, businessunit.UpdateBusinessUnitRequest) error {
	return nil
}

func (f *fakeBusinessUnitRepo) Delete(context.Context, int64) error {
	return businessunit.ErrBusinessUnitInUse
}

type fakeDepartmentRepo struct{ department.DepartmentRepository }

type fakePositionRepo struct{ position.PositionRepository }

func newTestMasterService(units *fakeBusinessUnitRepo) MasterService {
	return NewMasterService(units, fakeDepartmentRepo{}, fakePositionRepo{}, []string{"acme"})
}

func TestCreateBusinessUnit_DefaultsToActive(t *testing.T) {
	units := &fakeBusinessUnitRepo{}
	svc := newTestMasterService(units)

	resp, err := svc.CreateBusinessUnit(context.Background(), businessunit.CreateBusinessUnitRequest{Name: "Acme", Slug: "acme"})
	require.NoError(t, err)

	assert.True(t, units.created.Active)
	assert.True(t, resp.InReportScope)
}

func TestCreateBusinessUnit_RejectsBadSlug(t *testing.T) {
	svc := newTestMasterService(&fakeBusinessUnitRepo{})

	_, err := svc.CreateBusinessUnit(context.Background(), businessunit.CreateBusinessUnitRequest{Name: "Acme", Slug: "Acme Corp"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "slug")
}

func TestListBusinessUnits_MarksReportScope(t *testing.T) {
	svc := newTestMasterService(&fakeBusinessUnitRepo{units: []businessunit.BusinessUnit{
		{ID: 1, Slug: "acme", Active: true},
		{ID: 2, Slug: "acme", Active: false},
		{ID: 3, Slug: "other", Active: true},
	}})

	got, err := svc.ListBusinessUnits(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.True(t, got[0].InReportScope)
	assert.False(t, got[1].InReportScope)
	assert.False(t, got[2].InReportScope)
}

func TestDeleteBusinessUnit_PropagatesInUse(t *testing.T) {
	svc := newTestMasterService(&fakeBusinessUnitRepo{})

	err := svc.DeleteBusinessUnit(context.Background(), 1)

	assert.ErrorIs(t, err, businessunit.ErrBusinessUnitInUse)
}

func TestCreatePosition_ValidatesName(t *testing.T) {
	svc := newTestMasterService(&fakeBusinessUnitRepo{})

	_, err := svc.CreatePosition(context.Background(), position.CreatePositionRequest{Name: " "})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
