package routes

import (
	"repair-tracking/internal/controllers"
	"repair-tracking/internal/repositories"
	"repair-tracking/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runPurchaseOrderRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	equipmentRepository := repositories.NewEquipmentRepository(dbConn)
	txManager := repositories.NewTxManager(dbConn)
	purchaseOrderService := services.NewPurchaseOrderService(equipmentRepository, txManager, logger)
	responseService := services.NewManufacturerResponseService(equipmentRepository, txManager, logger)
	purchaseOrderCtrl := controllers.NewPurchaseOrderController(purchaseOrderService, responseService, logger)
	{
		secureGroup.POST("/purchase-orders/assign", purchaseOrderCtrl.AssignPurchaseOrder)
		secureGroup.GET("/purchase-orders/active", purchaseOrderCtrl.ListActivePurchaseOrders)
		secureGroup.GET("/purchase-orders/:number/equipment", purchaseOrderCtrl.EquipmentByOrder)
		secureGroup.POST("/purchase-orders/:number/manufacturer-response", purchaseOrderCtrl.RecordManufacturerResponse)
		secureGroup.GET("/purchase-orders/:number/export", purchaseOrderCtrl.ExportByOrder)
	}
}
