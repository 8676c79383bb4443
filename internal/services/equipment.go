package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"repair-tracking/internal/dto"
	"repair-tracking/internal/entities"
	"repair-tracking/internal/repositories"
	apperrors "repair-tracking/pkg/errors"
)

type EquipmentServiceInterface interface {
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	FindEquipment(ctx context.Context, id string) (*dto.EquipmentDTO, error)
	GetEquipment(ctx context.Context, statusFilter string) ([]dto.EquipmentDTO, error)
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	clientRepository    repositories.ClientRepositoryInterface
	faultTypeRepository repositories.FaultTypeRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	clientRepository repositories.ClientRepositoryInterface,
	faultTypeRepository repositories.FaultTypeRepositoryInterface,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		clientRepository:    clientRepository,
		faultTypeRepository: faultTypeRepository,
		logger:              logger,
	}
}

// CreateEquipment validates the intake payload against the catalogs, applies
// the sensor cross-field rule and persists the record in the initial status.
// Client and work-center display names are denormalized onto the record so
// later catalog renames do not rewrite history.
func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	client, err := s.clientRepository.FindClient(ctx, payload.ClientID)
	if err != nil {
		return nil, err
	}

	equipment := entities.Equipment{
		ID:            uuid.NewString(),
		WorkOrder:     strings.TrimSpace(payload.WorkOrder),
		ClientID:      client.ID,
		ClientName:    client.Name,
		EquipmentType: payload.EquipmentType,
		Model:         payload.Model,
		Manufacturer:  payload.Manufacturer,
		SerialNumber:  payload.SerialNumber,
		FaultType:     payload.FaultType,
		Status:        entities.StatusPending,
	}

	if equipment.WorkOrder == "" {
		return nil, apperrors.NewValidationError("work order must not be blank")
	}

	if payload.WorkCenterID.Valid {
		workCenter, err := s.clientRepository.FindWorkCenter(ctx, payload.WorkCenterID.String)
		if err != nil {
			return nil, err
		}
		if workCenter.ClientID != client.ID {
			return nil, apperrors.NewValidationError("work center %q does not belong to client %q", workCenter.Name, client.Name)
		}
		equipment.WorkCenterID = &workCenter.ID
		equipment.WorkCenterName = &workCenter.Name
	}

	faultType, err := s.faultTypeRepository.FindByName(ctx, payload.FaultType)
	if err != nil {
		return nil, err
	}

	if entities.RequiresSensorFields(payload.EquipmentType, faultType.RequiresSensor) {
		if strings.TrimSpace(payload.SensorSerial.String) == "" || !payload.SensorInstalledAt.Valid {
			return nil, apperrors.NewValidationError(
				"fault type %q on a %s requires sensor serial number and install date",
				faultType.Name, entities.EquipmentTypeGasDetector,
			)
		}
		sensorSerial := payload.SensorSerial.String
		sensorInstalledAt := payload.SensorInstalledAt.Time
		equipment.SensorSerial = &sensorSerial
		equipment.SensorInstalledAt = &sensorInstalledAt
	}
	// Sensor fields supplied outside the rule are dropped, not persisted.

	if payload.AssetTag.Valid {
		assetTag := payload.AssetTag.String
		equipment.AssetTag = &assetTag
	}
	if payload.ManufactureDate.Valid {
		manufactureDate := payload.ManufactureDate.Time
		equipment.ManufactureDate = &manufactureDate
	}
	if payload.Notes.Valid {
		notes := payload.Notes.String
		equipment.Notes = &notes
	}

	if err := s.equipmentRepository.CreateEquipment(ctx, &equipment); err != nil {
		s.logger.Error("failed to create equipment record", zap.Error(err), zap.String("work_order", equipment.WorkOrder))
		return nil, err
	}

	s.logger.Info("equipment record created",
		zap.String("id", equipment.ID),
		zap.String("client", equipment.ClientName),
		zap.String("equipment_type", equipment.EquipmentType),
	)

	result := dto.EquipmentToDTO(equipment)
	return &result, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id string) (*dto.EquipmentDTO, error) {
	equipment, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	result := dto.EquipmentToDTO(*equipment)
	return &result, nil
}

// GetEquipment returns all records in creation order, optionally filtered to
// one status.
func (s *EquipmentService) GetEquipment(ctx context.Context, statusFilter string) ([]dto.EquipmentDTO, error) {
	var status *entities.Status
	if statusFilter != "" {
		parsed, err := entities.ParseStatus(statusFilter)
		if err != nil {
			return nil, apperrors.NewValidationError("unknown status filter %q", statusFilter)
		}
		status = &parsed
	}

	list, err := s.equipmentRepository.ListEquipment(ctx, status)
	if err != nil {
		return nil, err
	}
	return dto.EquipmentListToDTO(list), nil
}
