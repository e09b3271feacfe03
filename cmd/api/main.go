package main

import (
	"os"

	"github.com/joho/godotenv"

	"school/internal/config"
	"school/internal/database"
	"school/internal/pkg/logger"
	"school/internal/repository"
	"school/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(configPath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format == "text",
	})

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		logger.Fatal().Err(err).Msg("DB connection failed")
	}
	if err := repository.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("AutoMigrate failed")
	}

	srv := server.New(cfg, db)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "configs/config.yaml"
}
