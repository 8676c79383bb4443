package routes

import (
	"repair-tracking/internal/controllers"
	"repair-tracking/internal/repositories"
	"repair-tracking/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runCatalogRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	manufacturerRepository := repositories.NewManufacturerRepository(dbConn)
	modelRepository := repositories.NewModelRepository(dbConn)
	faultTypeRepository := repositories.NewFaultTypeRepository(dbConn)
	catalogService := services.NewCatalogService(manufacturerRepository, modelRepository, faultTypeRepository, logger)
	catalogCtrl := controllers.NewCatalogController(catalogService, logger)
	{
		secureGroup.GET("/manufacturers", catalogCtrl.GetManufacturers)
		secureGroup.POST("/manufacturers", catalogCtrl.CreateManufacturer)
		secureGroup.GET("/models", catalogCtrl.GetModels)
		secureGroup.POST("/models", catalogCtrl.CreateModel)
		secureGroup.GET("/fault-types", catalogCtrl.GetFaultTypes)
		secureGroup.POST("/fault-types", catalogCtrl.CreateFaultType)
		secureGroup.GET("/equipment-types", catalogCtrl.GetEquipmentTypes)
	}
}
