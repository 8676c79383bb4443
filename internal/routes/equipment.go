package routes

import (
	"repair-tracking/internal/controllers"
	"repair-tracking/internal/repositories"
	"repair-tracking/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runEquipmentRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	equipmentRepository := repositories.NewEquipmentRepository(dbConn)
	clientRepository := repositories.NewClientRepository(dbConn)
	faultTypeRepository := repositories.NewFaultTypeRepository(dbConn)
	equipmentService := services.NewEquipmentService(equipmentRepository, clientRepository, faultTypeRepository, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	{
		secureGroup.POST("/equipment", equipmentCtrl.CreateEquipment)
		secureGroup.GET("/equipment", equipmentCtrl.GetEquipment)
		secureGroup.GET("/equipment/:id", equipmentCtrl.FindEquipment)
	}
}
