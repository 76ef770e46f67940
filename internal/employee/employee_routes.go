package employee

import (
	"go-employees/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.List)
		employees.GET("/export",
			middleware.RateLimitByIP(0.2, 2), // export berat, dibatasi lebih ketat
			handler.Export,
		)
		employees.GET("/:id", handler.GetByID)

		employees.POST("",
			middleware.RateLimitByIP(2, 10),
			middleware.Idempotency(rdb, logger),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByIP(2, 10),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByIP(1, 5),
			handler.Delete,
		)
	}

	r.GET("/departments", handler.Departments)
	r.GET("/positions", handler.Positions)
	r.GET("/statistics", handler.Statistics)
}
