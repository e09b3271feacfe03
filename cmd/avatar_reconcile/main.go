package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"school/internal/config"
	"school/internal/database"
	"school/internal/modules/avatar"
	"school/internal/pkg/filestore"
	"school/internal/pkg/logger"
	"school/internal/repository"
)

// avatar_reconcile finds avatar records whose file is gone and files in the
// avatar directory that no record points to. Orphans are only deleted when
// run with -dry-run=false.
func main() {
	dryRun := flag.Bool("dry-run", true, "report orphans without deleting them; pass -dry-run=false to delete")
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML config")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := database.Connect(cfg.Database.URL, database.Options{Silent: true})
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect failed")
	}

	svc := avatar.NewService(
		repository.NewAvatarRepository(db),
		repository.NewStudentRepository(db),
		filestore.NewLocal(cfg.Avatars.Dir),
	)

	report, err := svc.Reconcile(context.Background(), *dryRun)
	if err != nil {
		logger.Fatal().Err(err).Msg("avatar reconcile failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		logger.Fatal().Err(err).Msg("failed to write report")
	}
	if len(report.MissingFiles) > 0 {
		os.Exit(2)
	}
}
