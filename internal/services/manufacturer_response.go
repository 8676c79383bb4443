package services

import (
	"context"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"repair-tracking/internal/dto"
	"repair-tracking/internal/entities"
	"repair-tracking/internal/repositories"
	apperrors "repair-tracking/pkg/errors"
	"repair-tracking/pkg/utils"
)

type ManufacturerResponseServiceInterface interface {
	RecordManufacturerResponse(ctx context.Context, orderNumber string, payload dto.ManufacturerResponseDTO) (*dto.ManufacturerResponseResultDTO, error)
}

type ManufacturerResponseService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	txManager           repositories.TxManagerInterface
	logger              *zap.Logger
}

func NewManufacturerResponseService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) *ManufacturerResponseService {
	return &ManufacturerResponseService{
		equipmentRepository: equipmentRepository,
		txManager:           txManager,
		logger:              logger,
	}
}

// RecordManufacturerResponse applies one uniform outcome (receipt number plus
// warranty or quote result) to a batch of shipped records belonging to the
// named purchase order, moving them to at_manufacturer. Warranty and quote
// are mutually exclusive facts: under warranty any supplied quote fields are
// discarded; outside warranty a quote number is mandatory.
func (s *ManufacturerResponseService) RecordManufacturerResponse(ctx context.Context, orderNumber string, payload dto.ManufacturerResponseDTO) (*dto.ManufacturerResponseResultDTO, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, apperrors.NewValidationError("purchase order number must not be blank")
	}
	if strings.TrimSpace(payload.ReceiptNumber) == "" {
		return nil, apperrors.NewValidationError("manufacturer receipt number must not be blank")
	}

	ids := dedupeIDs(payload.EquipmentIDs)
	if len(ids) == 0 {
		return nil, apperrors.NewValidationError("equipment id set must not be empty")
	}

	params := repositories.ManufacturerResponseParams{
		ReceiptNumber: strings.TrimSpace(payload.ReceiptNumber),
		Warranty:      payload.UnderWarranty,
	}

	if payload.UnderWarranty {
		// Quote fields stay NULL regardless of what was supplied.
		params.QuoteNumber = utils.NullToNullString(null.String{})
		params.QuoteAccepted = utils.NullToNullBool(null.Bool{})
	} else {
		if strings.TrimSpace(payload.QuoteNumber.String) == "" {
			return nil, apperrors.NewValidationError("quote number is required when the repair is not under warranty")
		}
		params.QuoteNumber = utils.NullToNullString(null.StringFrom(strings.TrimSpace(payload.QuoteNumber.String)))
		params.QuoteAccepted = utils.NullToNullBool(null.BoolFrom(payload.QuoteAccepted.Bool))
	}

	var updated int64
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		targets, err := s.equipmentRepository.LockForTransition(ctx, tx, ids)
		if err != nil {
			return err
		}
		if err := checkTransitionTargets("record manufacturer response", ids, targets, entities.StatusShipped, &orderNumber); err != nil {
			return err
		}

		updated, err = s.equipmentRepository.ApplyManufacturerResponse(ctx, tx, ids, params)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("manufacturer response recorded",
		zap.String("order_number", orderNumber),
		zap.String("receipt_number", params.ReceiptNumber),
		zap.Bool("under_warranty", payload.UnderWarranty),
		zap.Int64("updated_count", updated),
	)

	return &dto.ManufacturerResponseResultDTO{OrderNumber: orderNumber, UpdatedCount: updated}, nil
}
