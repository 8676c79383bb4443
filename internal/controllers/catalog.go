package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"repair-tracking/internal/dto"
	"repair-tracking/internal/services"
	apperrors "repair-tracking/pkg/errors"
	"repair-tracking/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
	logger         *zap.Logger
}

func NewCatalogController(catalogService services.CatalogServiceInterface, logger *zap.Logger) *CatalogController {
	return &CatalogController{catalogService: catalogService, logger: logger}
}

func (c *CatalogController) GetManufacturers(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.catalogService.GetManufacturers(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Manufacturer list", http.StatusOK)
}

func (c *CatalogController) CreateManufacturer(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateManufacturerDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.catalogService.CreateManufacturer(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Manufacturer created", http.StatusCreated)
}

func (c *CatalogController) GetModels(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.catalogService.GetModels(reqCtx, ctx.QueryParam("equipment_type"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Model list", http.StatusOK)
}

func (c *CatalogController) CreateModel(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateModelDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.catalogService.CreateModel(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Model created", http.StatusCreated)
}

func (c *CatalogController) GetFaultTypes(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.catalogService.GetFaultTypes(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Fault type list", http.StatusOK)
}

func (c *CatalogController) CreateFaultType(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateFaultTypeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.catalogService.CreateFaultType(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Fault type created", http.StatusCreated)
}

func (c *CatalogController) GetEquipmentTypes(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, c.catalogService.EquipmentTypeCatalog(), "Equipment type catalog", http.StatusOK)
}
