package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// StatusReporter describes a dependency for the debug endpoints.
type StatusReporter interface {
	GetStatus(ctx context.Context) map[string]interface{}
}

// RegisterHealthRoutes adds the liveness, debug and metrics endpoints. cache
// may be nil when no external cache is configured.
func RegisterHealthRoutes(router *gin.Engine, db *gorm.DB, cache StatusReporter) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Foodgram API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		var result int
		err = sqlDB.QueryRowContext(ctx, "SELECT 1").Scan(&result)
		stats := sqlDB.Stats()

		resp := gin.H{
			"database_health":  err == nil && result == 1,
			"open_connections": stats.OpenConnections,
			"in_use":           stats.InUse,
			"idle":             stats.Idle,
		}
		if cache != nil {
			resp["cache"] = cache.GetStatus(ctx)
		}
		c.JSON(http.StatusOK, resp)
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
