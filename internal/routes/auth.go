package routes

import (
	"repair-tracking/internal/controllers"
	"repair-tracking/internal/repositories"
	"repair-tracking/internal/services"
	"repair-tracking/pkg/middleware"
	"repair-tracking/pkg/service"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runAuthRouter(api *echo.Group, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	userRepository := repositories.NewUserRepository(dbConn)
	tokenCache := repositories.NewRedisTokenCacheRepository(redisClient)
	authService := services.NewAuthService(userRepository, tokenCache, jwtSvc, logger)
	authCtrl := controllers.NewAuthController(authService, logger)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/refresh", authCtrl.Refresh)
		authGroup.POST("/logout", authCtrl.Logout, authMW.Auth)
		authGroup.GET("/me", authCtrl.Me, authMW.Auth)
	}
}
