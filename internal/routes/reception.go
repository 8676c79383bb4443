package routes

import (
	"repair-tracking/internal/controllers"
	"repair-tracking/internal/repositories"
	"repair-tracking/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runReceptionRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	equipmentRepository := repositories.NewEquipmentRepository(dbConn)
	txManager := repositories.NewTxManager(dbConn)
	receptionService := services.NewReceptionService(equipmentRepository, txManager, logger)
	receptionCtrl := controllers.NewReceptionController(receptionService, logger)
	{
		secureGroup.GET("/reception/awaiting", receptionCtrl.ListAwaitingReception)
		secureGroup.POST("/reception/receive", receptionCtrl.ReceiveEquipment)
		secureGroup.GET("/reception/completed", receptionCtrl.ListCompleted)
		secureGroup.GET("/reception/completed/export", receptionCtrl.ExportCompleted)
	}
}
