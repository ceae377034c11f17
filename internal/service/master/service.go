package master

import (
	"context"
	"slices"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/master/businessunit"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/master/department"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/master/position"
)

type MasterService interface {
	// Business unit operations
	CreateBusinessUnit(ctx context.Context, req businessunit.CreateBusinessUnitRequest) (businessunit.BusinessUnitResponse, error)
	GetBusinessUnit(ctx context.Context, id int64) (businessunit.BusinessUnitResponse, error)
	ListBusinessUnits(ctx context.Context) ([]businessunit.BusinessUnitResponse, error)
	UpdateBusinessUnit(ctx context.Context, req businessunit.UpdateBusinessUnitRequest) error
	DeleteBusinessUnit(ctx context.Context, id int64) error

	// Department operations
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id int64) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error
	DeleteDepartment(ctx context.Context, id int64) error

	// Position operations
	CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error)
	GetPosition(ctx context.Context, id int64) (position.PositionResponse, error)
	ListPositions(ctx context.Context) ([]position.PositionResponse, error)
	UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) error
	DeletePosition(ctx context.Context, id int64) error
}

type masterServiceImpl struct {
	businessUnitRepo businessunit.BusinessUnitRepository
	departmentRepo   department.DepartmentRepository
	positionRepo     position.PositionRepository
	systemBusiness   []string
}

func NewMasterService(
	businessUnitRepo businessunit.BusinessUnitRepository,
	departmentRepo department.DepartmentRepository,
	positionRepo position.PositionRepository,
	systemBusiness []string,
) MasterService {
	return &masterServiceImpl{
		businessUnitRepo: businessUnitRepo,
		departmentRepo:   departmentRepo,
		positionRepo:     positionRepo,
		systemBusiness:   systemBusiness,
	}
}

// ==================== BUSINESS UNIT OPERATIONS ====================

func (s *masterServiceImpl) toBusinessUnitResponse(unit businessunit.BusinessUnit) businessunit.BusinessUnitResponse {
	return businessunit.BusinessUnitResponse{
		ID:            unit.ID,
		Name:          unit.Name,
		Slug:          unit.Slug,
		LegalName:     unit.LegalName,
		Active:        unit.Active,
		InReportScope: unit.Active && slices.Contains(s.systemBusiness, unit.Slug),
	}
}

func (s *masterServiceImpl) CreateBusinessUnit(ctx context.Context, req businessunit.CreateBusinessUnitRequest) (businessunit.BusinessUnitResponse, error) {
	if err := req.Validate(); err != nil {
		return businessunit.BusinessUnitResponse{}, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created, err := s.businessUnitRepo.Create(ctx, businessunit.BusinessUnit{
		Name:      req.Name,
		Slug:      req.Slug,
		LegalName: req.LegalName,
		Active:    active,
	})
	if err != nil {
		return businessunit.BusinessUnitResponse{}, err
	}

	return s.toBusinessUnitResponse(created), nil
}

func (s *masterServiceImpl) GetBusinessUnit(ctx context.Context, id int64) (businessunit.BusinessUnitResponse, error) {
	unit, err := s.businessUnitRepo.GetByID(ctx, id)
	if err != nil {
		return businessunit.BusinessUnitResponse{}, err
	}
	return s.toBusinessUnitResponse(unit), nil
}

func (s *masterServiceImpl) ListBusinessUnits(ctx context.Context) ([]businessunit.BusinessUnitResponse, error) {
	units, err := s.businessUnitRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]businessunit.BusinessUnitResponse, 0, len(units))
	for _, unit := range units {
		responses = append(responses, s.toBusinessUnitResponse(unit))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateBusinessUnit(ctx context.Context, req businessunit.UpdateBusinessUnitRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.businessUnitRepo.Update(ctx, req)
}

func (s *masterServiceImpl) DeleteBusinessUnit(ctx context.Context, id int64) error {
	return s.businessUnitRepo.Delete(ctx, id)
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{Name: req.Name})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.DepartmentResponse{ID: created.ID, Name: created.Name}, nil
}

func (s *masterServiceImpl) GetDepartment(ctx context.Context, id int64) (department.DepartmentResponse, error) {
	entity, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.DepartmentResponse{ID: entity.ID, Name: entity.Name}, nil
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	entities, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, department.DepartmentResponse{ID: entity.ID, Name: entity.Name})
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.departmentRepo.Update(ctx, req)
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id int64) error {
	return s.departmentRepo.Delete(ctx, id)
}

// ==================== POSITION OPERATIONS ====================

func (s *masterServiceImpl) CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	created, err := s.positionRepo.Create(ctx, position.Position{Name: req.Name})
	if err != nil {
		return position.PositionResponse{}, err
	}

	return position.PositionResponse{ID: created.ID, Name: created.Name}, nil
}

func (s *masterServiceImpl) GetPosition(ctx context.Context, id int64) (position.PositionResponse, error) {
	entity, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		return position.PositionResponse{}, err
	}
	return position.PositionResponse{ID: entity.ID, Name: entity.Name}, nil
}

func (s *masterServiceImpl) ListPositions(ctx context.Context) ([]position.PositionResponse, error) {
	entities, err := s.positionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]position.PositionResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, position.PositionResponse{ID: entity.ID, Name: entity.Name})
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.positionRepo.Update(ctx, req)
}

func (s *masterServiceImpl) DeletePosition(ctx context.Context, id int64) error {
	return s.positionRepo.Delete(ctx, id)
}
