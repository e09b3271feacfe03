package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"school/internal/config"
	"school/internal/database"
	"school/internal/domain"
	"school/internal/pkg/filestore"
	"school/internal/pkg/logger"
	"school/internal/repository"
)

type seedStudent struct {
	name, surname string
	age           int
	faculty       string
}

func main() {
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "configs/config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		logger.Fatal().Err(err).Msg("DB connection failed")
	}
	if err := repository.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("AutoMigrate failed")
	}

	logger.Info().Msg("Cleaning old data...")
	for _, table := range []string{"avatars", "students", "faculties"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			logger.Fatal().Err(err).Str("table", table).Msg("cleanup failed")
		}
	}

	removed, err := filestore.NewLocal(cfg.Avatars.Dir).Clear()
	if err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.Avatars.Dir).Msg("avatar cleanup failed")
	}
	logger.Info().Int("files", removed).Msg("Avatar directory cleared")

	ctx := context.Background()
	faculties := repository.NewFacultyRepository(db)
	students := repository.NewStudentRepository(db)

	// ================== FACULTIES ==================
	ids := make(map[string]int64)
	for _, f := range []domain.Faculty{
		{Name: "Gryffindor", Colour: "Red"},
		{Name: "Slytherin", Colour: "Green"},
		{Name: "Ravenclaw", Colour: "Blue"},
		{Name: "Hufflepuff", Colour: "Yellow"},
	} {
		f := f
		if err := faculties.Create(ctx, &f); err != nil {
			logger.Fatal().Err(err).Str("faculty", f.Name).Msg("seed failed")
		}
		ids[f.Name] = f.ID
	}

	// ================== STUDENTS ==================
	for _, s := range []seedStudent{
		{"Harry", "Potter", 11, "Gryffindor"},
		{"Hermione", "Granger", 12, "Gryffindor"},
		{"Ron", "Weasley", 11, "Gryffindor"},
		{"Draco", "Malfoy", 11, "Slytherin"},
		{"Luna", "Lovegood", 10, "Ravenclaw"},
		{"Cedric", "Diggory", 15, "Hufflepuff"},
		{"Albus", "Dumbledore", 115, ""},
		{"Arthur", "Weasley", 45, ""},
	} {
		st := domain.Student{Name: s.name, Surname: s.surname, Age: s.age}
		if id, ok := ids[s.faculty]; ok {
			st.FacultyID = &id
		}
		if err := students.Create(ctx, &st); err != nil {
			logger.Fatal().Err(err).Str("student", s.name).Msg("seed failed")
		}
	}

	logger.Info().Int("faculties", len(ids)).Msg("Seed completed")
}
