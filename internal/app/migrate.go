package app

import (
	"go-employees/internal/config"
	"go-employees/internal/employee"
	"go-employees/internal/messaging/kafka"
	"go-employees/internal/shared/connection"

	"go.uber.org/zap"
)

// RunMigrate creates the employees and outbox_events tables and, when seed is
// set, inserts the sample employees that are not there yet.
func RunMigrate(cfg config.Config, logger *zap.Logger, seed bool) error {
	log := logger.Named("app.migrate")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.IsProduction())
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := employee.AutoMigrate(gormDB); err != nil {
		return err
	}
	if err := kafka.AutoMigrate(gormDB); err != nil {
		return err
	}
	log.Info("schema migrated")

	if !seed {
		return nil
	}
	return employee.Seed(gormDB, logger)
}
