package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterConfig wires the handlers and middleware into the HTTP router.
type RouterConfig struct {
	AuthHandler    *AuthHandler
	PlanHandler    *PlanHandler
	AuthMiddleware *AuthMiddleware
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	api := router.Group("/api")

	// Public
	api.GET("/health", cfg.PlanHandler.Health)
	api.POST("/register", cfg.AuthHandler.Register)
	api.POST("/login", cfg.AuthHandler.Login)
	api.POST("/regenerate-meal", cfg.PlanHandler.RegenerateMeal)

	// Plan generation works anonymously; a valid token additionally
	// persists the result.
	api.POST("/generate-plan", cfg.AuthMiddleware.OptionalAuth(), cfg.PlanHandler.GeneratePlan)

	// Protected
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	protected.GET("/user-info", cfg.AuthHandler.UserInfo)
	protected.GET("/my-plans", cfg.PlanHandler.MyPlans)
	protected.POST("/save-plan", cfg.PlanHandler.SavePlan)

	return router
}
