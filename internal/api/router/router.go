package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nandoripardo888/TO--DO/config"
	"github.com/nandoripardo888/TO--DO/internal/api/handler"
	"github.com/nandoripardo888/TO--DO/internal/api/middleware"
	"github.com/nandoripardo888/TO--DO/pkg/jwt"
)

// Setup builds the Gin engine with all routes.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 (all routes require a resolved caller identity) ──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.JWTAuth(jwtMgr))
	{
		tasks := v1.Group("/tasks")
		{
			tasks.PUT("/:id/status", h.Task.UpdateStatus)
			tasks.GET("/:id/statistics", h.Task.GetStatistics)
			tasks.POST("/:id/auto-assign", h.Assignment.AutoAssign)
		}

		assignments := v1.Group("/assignments")
		{
			assignments.PUT("/status", h.Assignment.UpdateStatus)
		}

		events := v1.Group("/events")
		{
			events.GET("/:id/assignments/export", h.Export.ExportAssignments)
			events.GET("/:id/my-schedule.ics", h.Export.MySchedule)
		}
	}

	return r
}
