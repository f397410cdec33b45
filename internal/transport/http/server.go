package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "imf-gadget-api/internal/app"
	"imf-gadget-api/internal/bootstrap"
	"imf-gadget-api/internal/cache"
	"imf-gadget-api/internal/events"
	"imf-gadget-api/internal/pkg/random"
	"imf-gadget-api/internal/repository"
	"imf-gadget-api/internal/transport/http/handler"
	"imf-gadget-api/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	gadgetRepo := repository.NewGadgetRepository(app.MySQL)
	gadgetCache := cache.NewGadgetCache(app.Redis, time.Duration(app.Config.Redis.GadgetTTLSeconds)*time.Second)
	publisher := events.NewGadgetEventPublisher(app.MQConn, app.Config.RabbitMQ.GadgetLifecycleQueue)

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireHour)*time.Hour,
	)
	gadgetService := appsvc.NewGadgetService(gadgetRepo, gadgetCache, publisher, random.NewGenerator())

	authHandler := handler.NewAuthHandler(authService)
	gadgetHandler := handler.NewGadgetHandler(gadgetService)

	authGroup := router.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", middleware.AuthJWT(app.Config.Auth.JWTSecret), authHandler.Me)

	gadgetGroup := router.Group("/gadgets")
	gadgetGroup.Use(middleware.AuthJWT(app.Config.Auth.JWTSecret))
	gadgetGroup.POST("", gadgetHandler.Create)
	gadgetGroup.GET("", gadgetHandler.List)
	gadgetGroup.PATCH("/:id", gadgetHandler.Update)
	gadgetGroup.DELETE("/:id", gadgetHandler.Decommission)
	gadgetGroup.PATCH("/:id/self-destruct", gadgetHandler.SelfDestruct)

	return router
}
