package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"repair-tracking/internal/dto"
	"repair-tracking/internal/entities"
	"repair-tracking/internal/repositories"
)

// CatalogService fronts the simple reference catalogs the workflow core
// validates against: manufacturers, models, fault types and the fixed
// equipment type list.
type CatalogServiceInterface interface {
	GetManufacturers(ctx context.Context) ([]dto.ManufacturerDTO, error)
	CreateManufacturer(ctx context.Context, payload dto.CreateManufacturerDTO) (*dto.ManufacturerDTO, error)
	GetModels(ctx context.Context, equipmentType string) ([]dto.ModelDTO, error)
	CreateModel(ctx context.Context, payload dto.CreateModelDTO) (*dto.ModelDTO, error)
	GetFaultTypes(ctx context.Context) ([]dto.FaultTypeDTO, error)
	CreateFaultType(ctx context.Context, payload dto.CreateFaultTypeDTO) (*dto.FaultTypeDTO, error)
	EquipmentTypeCatalog() []string
}

type CatalogService struct {
	manufacturerRepository repositories.ManufacturerRepositoryInterface
	modelRepository        repositories.ModelRepositoryInterface
	faultTypeRepository    repositories.FaultTypeRepositoryInterface
	logger                 *zap.Logger
}

func NewCatalogService(
	manufacturerRepository repositories.ManufacturerRepositoryInterface,
	modelRepository repositories.ModelRepositoryInterface,
	faultTypeRepository repositories.FaultTypeRepositoryInterface,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		manufacturerRepository: manufacturerRepository,
		modelRepository:        modelRepository,
		faultTypeRepository:    faultTypeRepository,
		logger:                 logger,
	}
}

func (s *CatalogService) GetManufacturers(ctx context.Context) ([]dto.ManufacturerDTO, error) {
	manufacturers, err := s.manufacturerRepository.GetManufacturers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ManufacturerDTO, 0, len(manufacturers))
	for _, m := range manufacturers {
		result = append(result, dto.ManufacturerToDTO(m))
	}
	return result, nil
}

func (s *CatalogService) CreateManufacturer(ctx context.Context, payload dto.CreateManufacturerDTO) (*dto.ManufacturerDTO, error) {
	manufacturer := entities.Manufacturer{ID: uuid.NewString(), Name: payload.Name}
	if err := s.manufacturerRepository.CreateManufacturer(ctx, &manufacturer); err != nil {
		return nil, err
	}
	result := dto.ManufacturerToDTO(manufacturer)
	return &result, nil
}

func (s *CatalogService) GetModels(ctx context.Context, equipmentType string) ([]dto.ModelDTO, error) {
	models, err := s.modelRepository.GetModels(ctx, equipmentType)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ModelDTO, 0, len(models))
	for _, m := range models {
		result = append(result, dto.ModelToDTO(m))
	}
	return result, nil
}

func (s *CatalogService) CreateModel(ctx context.Context, payload dto.CreateModelDTO) (*dto.ModelDTO, error) {
	model := entities.Model{ID: uuid.NewString(), Name: payload.Name, EquipmentType: payload.EquipmentType}
	if err := s.modelRepository.CreateModel(ctx, &model); err != nil {
		return nil, err
	}
	result := dto.ModelToDTO(model)
	return &result, nil
}

func (s *CatalogService) GetFaultTypes(ctx context.Context) ([]dto.FaultTypeDTO, error) {
	faultTypes, err := s.faultTypeRepository.GetFaultTypes(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.FaultTypeDTO, 0, len(faultTypes))
	for _, ft := range faultTypes {
		result = append(result, dto.FaultTypeToDTO(ft))
	}
	return result, nil
}

func (s *CatalogService) CreateFaultType(ctx context.Context, payload dto.CreateFaultTypeDTO) (*dto.FaultTypeDTO, error) {
	faultType := entities.FaultType{ID: uuid.NewString(), Name: payload.Name, RequiresSensor: payload.RequiresSensor}
	if err := s.faultTypeRepository.CreateFaultType(ctx, &faultType); err != nil {
		return nil, err
	}
	result := dto.FaultTypeToDTO(faultType)
	return &result, nil
}

func (s *CatalogService) EquipmentTypeCatalog() []string {
	return entities.EquipmentTypeCatalog
}
