package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"repair-tracking/internal/dto"
	"repair-tracking/internal/services"
	apperrors "repair-tracking/pkg/errors"
	"repair-tracking/pkg/utils"
)

type PurchaseOrderController struct {
	purchaseOrderService services.PurchaseOrderServiceInterface
	responseService      services.ManufacturerResponseServiceInterface
	logger               *zap.Logger
}

func NewPurchaseOrderController(
	purchaseOrderService services.PurchaseOrderServiceInterface,
	responseService services.ManufacturerResponseServiceInterface,
	logger *zap.Logger,
) *PurchaseOrderController {
	return &PurchaseOrderController{
		purchaseOrderService: purchaseOrderService,
		responseService:      responseService,
		logger:               logger,
	}
}

func (c *PurchaseOrderController) AssignPurchaseOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.AssignPurchaseOrderDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.purchaseOrderService.AssignPurchaseOrder(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Purchase order assigned", http.StatusOK)
}

func (c *PurchaseOrderController) ListActivePurchaseOrders(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.purchaseOrderService.ListActivePurchaseOrders(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Active purchase orders", http.StatusOK)
}

func (c *PurchaseOrderController) EquipmentByOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.purchaseOrderService.EquipmentByOrder(reqCtx, ctx.Param("number"), ctx.QueryParam("status"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Equipment under purchase order", http.StatusOK)
}

func (c *PurchaseOrderController) RecordManufacturerResponse(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.ManufacturerResponseDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.responseService.RecordManufacturerResponse(reqCtx, ctx.Param("number"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Manufacturer response recorded", http.StatusOK)
}

// ExportByOrder streams an xlsx shipping report of everything under one
// purchase order, in creation order.
func (c *PurchaseOrderController) ExportByOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	orderNumber := ctx.Param("number")
	data, err := c.purchaseOrderService.EquipmentByOrder(reqCtx, orderNumber, ctx.QueryParam("status"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	fileName := fmt.Sprintf("purchase_order_%s_%s.xlsx", orderNumber, time.Now().Format("2006-01-02"))
	return respondWithEquipmentXLSX(ctx, "Purchase Order", fileName, data)
}

var equipmentReportHeaders = []string{
	"Work Order", "Client", "Work Center", "Equipment Type", "Model", "Serial Number",
	"Fault Type", "Status", "Purchase Order", "Manufacturer Receipt", "Warranty",
	"Quote Number", "Quote Accepted", "Created", "Updated",
}

func equipmentRowToSlice(item dto.EquipmentDTO) []interface{} {
	warranty := ""
	if item.Warranty.Valid {
		if item.Warranty.Bool {
			warranty = "yes"
		} else {
			warranty = "no"
		}
	}
	quoteAccepted := ""
	if item.QuoteAccepted.Valid {
		if item.QuoteAccepted.Bool {
			quoteAccepted = "yes"
		} else {
			quoteAccepted = "no"
		}
	}

	return []interface{}{
		item.WorkOrder, item.ClientName, item.WorkCenterName.String, item.EquipmentType,
		item.Model, item.SerialNumber, item.FaultType, item.Status,
		item.PurchaseOrderNumber.String, item.ManufacturerReceipt.String, warranty,
		item.QuoteNumber.String, quoteAccepted, item.CreatedAt, item.UpdatedAt,
	}
}

func respondWithEquipmentXLSX(ctx echo.Context, sheet, fileName string, data []dto.EquipmentDTO) error {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &equipmentReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "O1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := equipmentRowToSlice(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "C", 22)
	f.SetColWidth(sheet, "D", "G", 20)
	f.SetColWidth(sheet, "I", "M", 18)
	f.SetColWidth(sheet, "N", "O", 20)

	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
