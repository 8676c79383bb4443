package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"repair-tracking/internal/dto"
	"repair-tracking/internal/services"
	apperrors "repair-tracking/pkg/errors"
	"repair-tracking/pkg/utils"
)

type ReceptionController struct {
	receptionService services.ReceptionServiceInterface
	logger           *zap.Logger
}

func NewReceptionController(receptionService services.ReceptionServiceInterface, logger *zap.Logger) *ReceptionController {
	return &ReceptionController{receptionService: receptionService, logger: logger}
}

func (c *ReceptionController) ReceiveEquipment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.ReceiveEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.receptionService.ReceiveEquipment(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Equipment received", http.StatusOK)
}

func (c *ReceptionController) ListAwaitingReception(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.receptionService.ListAwaitingReception(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Equipment awaiting reception", http.StatusOK)
}

func (c *ReceptionController) ListCompleted(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.receptionService.ListCompleted(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Completed equipment", http.StatusOK)
}

// ExportCompleted streams the final xlsx report of every received record.
func (c *ReceptionController) ExportCompleted(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	data, err := c.receptionService.ListCompleted(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	fileName := fmt.Sprintf("completed_equipment_%s.xlsx", time.Now().Format("2006-01-02"))
	return respondWithEquipmentXLSX(ctx, "Completed Equipment", fileName, data)
}
