package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"betx.backend/pkg/metrics"
)

const (
	serviceName    = "betx-backend"
	serviceVersion = "0.1.0"
)

func applyCORSMiddleware(r *gin.Engine, allowedOrigin string) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowedOrigin == "*" || origin == allowedOrigin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, Idempotency-Key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine, m *metrics.Metrics) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is running")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
			"version": serviceVersion,
		})
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))
}
