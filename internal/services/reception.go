package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"repair-tracking/internal/dto"
	"repair-tracking/internal/entities"
	"repair-tracking/internal/repositories"
	apperrors "repair-tracking/pkg/errors"
)

type ReceptionServiceInterface interface {
	ReceiveEquipment(ctx context.Context, payload dto.ReceiveEquipmentDTO) (*dto.ReceiveEquipmentResultDTO, error)
	ListAwaitingReception(ctx context.Context) ([]dto.EquipmentDTO, error)
	ListCompleted(ctx context.Context) ([]dto.EquipmentDTO, error)
}

type ReceptionService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	txManager           repositories.TxManagerInterface
	logger              *zap.Logger
}

func NewReceptionService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) *ReceptionService {
	return &ReceptionService{
		equipmentRepository: equipmentRepository,
		txManager:           txManager,
		logger:              logger,
	}
}

// ReceiveEquipment confirms physical return of a batch of records, closing
// the loop on the workflow. The stamped update time doubles as the reception
// date in reporting.
func (s *ReceptionService) ReceiveEquipment(ctx context.Context, payload dto.ReceiveEquipmentDTO) (*dto.ReceiveEquipmentResultDTO, error) {
	ids := dedupeIDs(payload.EquipmentIDs)
	if len(ids) == 0 {
		return nil, apperrors.NewValidationError("equipment id set must not be empty")
	}

	var received int64
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		targets, err := s.equipmentRepository.LockForTransition(ctx, tx, ids)
		if err != nil {
			return err
		}
		if err := checkTransitionTargets("receive equipment", ids, targets, entities.StatusAtManufacturer, nil); err != nil {
			return err
		}

		received, err = s.equipmentRepository.MarkReceived(ctx, tx, ids)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("equipment received", zap.Int64("received_count", received))

	return &dto.ReceiveEquipmentResultDTO{ReceivedCount: received}, nil
}

func (s *ReceptionService) ListAwaitingReception(ctx context.Context) ([]dto.EquipmentDTO, error) {
	status := entities.StatusAtManufacturer
	list, err := s.equipmentRepository.ListEquipment(ctx, &status)
	if err != nil {
		return nil, err
	}
	return dto.EquipmentListToDTO(list), nil
}

func (s *ReceptionService) ListCompleted(ctx context.Context) ([]dto.EquipmentDTO, error) {
	status := entities.StatusReceived
	list, err := s.equipmentRepository.ListEquipment(ctx, &status)
	if err != nil {
		return nil, err
	}
	return dto.EquipmentListToDTO(list), nil
}
