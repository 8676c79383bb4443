package routes

import (
	"repair-tracking/internal/controllers"
	"repair-tracking/internal/repositories"
	"repair-tracking/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runClientRouter(secureGroup *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	clientRepository := repositories.NewClientRepository(dbConn)
	clientService := services.NewClientService(clientRepository, logger)
	clientCtrl := controllers.NewClientController(clientService, logger)
	{
		secureGroup.POST("/clients", clientCtrl.CreateClient)
		secureGroup.GET("/clients", clientCtrl.GetClients)
		secureGroup.GET("/clients/:id", clientCtrl.FindClient)
		secureGroup.PUT("/clients/:id", clientCtrl.UpdateClient)
		secureGroup.POST("/clients/:id/work-centers", clientCtrl.AddWorkCenter)
		secureGroup.GET("/clients/:id/work-centers", clientCtrl.ListWorkCenters)
	}
}
