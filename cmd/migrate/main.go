package main

import (
	"flag"

	"go-employees/internal/app"
	"go-employees/internal/config"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	seed := flag.Bool("seed", true, "insert sample employees after migrating")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunMigrate(cfg, logger, *seed); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}
	logger.Info("migrate finished")
}
