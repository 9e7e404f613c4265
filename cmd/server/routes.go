package main

import (
	"github.com/gin-gonic/gin"

	"betx.backend/internal/interfaces/http/handlers"
	"betx.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	gameHandler    *handlers.GameHandler
	adminHandler   *handlers.AdminHandler
	authMiddleware gin.HandlerFunc
	idempotency    gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)
		}

		// User routes (protected)
		user := api.Group("/user")
		user.Use(d.authMiddleware)
		{
			user.PUT("/update-profile", d.userHandler.UpdateProfile)
			user.PUT("/change-password", d.userHandler.ChangePassword)
			user.GET("/stats", d.userHandler.GetStats)
			user.GET("/activity", d.userHandler.GetActivity)
		}

		// Game routes (protected)
		game := api.Group("/game")
		game.Use(d.authMiddleware)
		{
			game.POST("/dice", d.idempotency, d.gameHandler.PlayDice)
		}

		// Admin routes (protected)
		admin := api.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.GET("/users/:id/transactions", d.adminHandler.ListTransactions)
			admin.POST("/adjust-balance", d.idempotency, d.adminHandler.AdjustBalance)
		}
	}
}
