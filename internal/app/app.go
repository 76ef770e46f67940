package app

import (
	"database/sql"
	"net/http"
	"time"

	"go-employees/internal/config"
	"go-employees/internal/middleware"
	"go-employees/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Router *gin.Engine
	GormDB *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
}

func BuildApp(cfg config.Config, logger *zap.Logger) (*App, error) {
	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.IsProduction())
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.DB.MaxRetries)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	} else {
		logger.Warn("REDIS_ADDR not set, lookup cache and idempotency disabled")
	}

	// 2. Router + modules
	router := NewRouter(cfg, logger)
	registerModules(router.Group("/api/v1"), sqlDB, gormDB, rdb, logger)

	return &App{Router: router, GormDB: gormDB, SQLDB: sqlDB, Redis: rdb}, nil
}

func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.SQLDB != nil {
		_ = a.SQLDB.Close()
	}
}

// NewRouter builds the engine with the global middleware and the health check.
func NewRouter(cfg config.Config, logger *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ContextLogger(logger))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/health", healthHandler(time.Now))

	return r
}

func healthHandler(now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": now().UTC().Format(time.RFC3339),
		})
	}
}
