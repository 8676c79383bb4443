package services

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"repair-tracking/internal/dto"
	"repair-tracking/internal/entities"
	"repair-tracking/internal/repositories"
	apperrors "repair-tracking/pkg/errors"
)

type PurchaseOrderServiceInterface interface {
	AssignPurchaseOrder(ctx context.Context, payload dto.AssignPurchaseOrderDTO) (*dto.AssignPurchaseOrderResultDTO, error)
	ListActivePurchaseOrders(ctx context.Context) ([]dto.ActivePurchaseOrderDTO, error)
	EquipmentByOrder(ctx context.Context, orderNumber, statusFilter string) ([]dto.EquipmentDTO, error)
}

type PurchaseOrderService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	txManager           repositories.TxManagerInterface
	logger              *zap.Logger
}

func NewPurchaseOrderService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		equipmentRepository: equipmentRepository,
		txManager:           txManager,
		logger:              logger,
	}
}

// AssignPurchaseOrder groups pending records under one purchase order number
// and ships them. The batch is all-or-nothing: if any id is missing or not
// pending, no record is touched and the offending ids are reported.
func (s *PurchaseOrderService) AssignPurchaseOrder(ctx context.Context, payload dto.AssignPurchaseOrderDTO) (*dto.AssignPurchaseOrderResultDTO, error) {
	orderNumber := strings.TrimSpace(payload.OrderNumber)
	if orderNumber == "" {
		return nil, apperrors.NewValidationError("purchase order number must not be blank")
	}

	ids := dedupeIDs(payload.EquipmentIDs)
	if len(ids) == 0 {
		return nil, apperrors.NewValidationError("equipment id set must not be empty")
	}

	var assigned int64
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		targets, err := s.equipmentRepository.LockForTransition(ctx, tx, ids)
		if err != nil {
			return err
		}
		if err := checkTransitionTargets("assign purchase order", ids, targets, entities.StatusPending, nil); err != nil {
			return err
		}

		assigned, err = s.equipmentRepository.AssignPurchaseOrder(ctx, tx, orderNumber, ids)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("purchase order assigned",
		zap.String("order_number", orderNumber),
		zap.Int64("assigned_count", assigned),
	)

	return &dto.AssignPurchaseOrderResultDTO{OrderNumber: orderNumber, AssignedCount: assigned}, nil
}

func (s *PurchaseOrderService) ListActivePurchaseOrders(ctx context.Context) ([]dto.ActivePurchaseOrderDTO, error) {
	orders, err := s.equipmentRepository.ListActivePurchaseOrders(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ActivePurchaseOrderDTO, 0, len(orders))
	for _, o := range orders {
		result = append(result, dto.ActivePurchaseOrderToDTO(o))
	}
	return result, nil
}

// EquipmentByOrder returns all records under one purchase order in creation
// order, optionally narrowed to a single status.
func (s *PurchaseOrderService) EquipmentByOrder(ctx context.Context, orderNumber, statusFilter string) ([]dto.EquipmentDTO, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, apperrors.NewValidationError("purchase order number must not be blank")
	}

	var status *entities.Status
	if statusFilter != "" {
		parsed, err := entities.ParseStatus(statusFilter)
		if err != nil {
			return nil, apperrors.NewValidationError("unknown status filter %q", statusFilter)
		}
		status = &parsed
	}

	list, err := s.equipmentRepository.ListByOrder(ctx, orderNumber, status)
	if err != nil {
		return nil, err
	}
	return dto.EquipmentListToDTO(list), nil
}
