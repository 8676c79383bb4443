package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"repair-tracking/pkg/middleware"
	"repair-tracking/pkg/service"
)

// InitRouter wires every feature router under /api. Auth endpoints stay
// public; everything else sits behind the JWT middleware.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	runAuthRouter(api, dbConn, redisClient, jwtSvc, logger, authMW)

	secureGroup := api.Group("", authMW.Auth)

	runClientRouter(secureGroup, dbConn, logger)
	runCatalogRouter(secureGroup, dbConn, logger)
	runEquipmentRouter(secureGroup, dbConn, logger)
	runPurchaseOrderRouter(secureGroup, dbConn, logger)
	runReceptionRouter(secureGroup, dbConn, logger)
}
