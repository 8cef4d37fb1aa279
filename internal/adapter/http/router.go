package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/schedbank/schedule-notify/internal/adapter/http/middleware"
	"github.com/schedbank/schedule-notify/internal/observability"
)

type RouterDeps struct {
	ScheduleHandler *ScheduleHandler
	HealthHandler   *HealthHandler
	Metrics         *observability.Metrics
	Logger          *zap.Logger
	RateLimitPerSec int
}

func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.CorrelationID())
	r.Use(middleware.Logging(deps.Logger))
	r.Use(middleware.Metrics(deps.Metrics))

	r.GET("/health", deps.HealthHandler.Liveness)
	r.GET("/health/ready", deps.HealthHandler.Readiness)
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(deps.RateLimitPerSec))
	{
		schedules := v1.Group("/schedules")
		{
			schedules.POST("", deps.ScheduleHandler.Create)
			schedules.GET("", deps.ScheduleHandler.List)
			schedules.GET("/:id", deps.ScheduleHandler.GetByID)
			schedules.PUT("/:id", deps.ScheduleHandler.Update)
			schedules.DELETE("/:id", deps.ScheduleHandler.Delete)
		}

		v1.DELETE("/courses/:courseId/schedules", deps.ScheduleHandler.DeleteByCourse)
	}

	return r
}
