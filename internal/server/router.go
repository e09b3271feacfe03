package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"school/internal/config"
	"school/internal/middleware"
	"school/internal/modules/avatar"
	"school/internal/modules/faculty"
	"school/internal/modules/stats"
	"school/internal/modules/student"
	"school/internal/modules/system"
	"school/internal/pkg/filestore"
	"school/internal/repository"
)

// NewRouter wires repositories, services and handlers onto a gin engine.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	studentRepo := repository.NewStudentRepository(db)
	facultyRepo := repository.NewFacultyRepository(db)
	avatarRepo := repository.NewAvatarRepository(db)
	avatarFiles := filestore.NewLocal(cfg.Avatars.Dir)

	studentHandler := student.NewHandler(student.NewService(studentRepo, facultyRepo))
	facultyHandler := faculty.NewHandler(faculty.NewService(facultyRepo, studentRepo))
	avatarHandler := avatar.NewHandler(avatar.NewService(avatarRepo, studentRepo, avatarFiles))
	statsHandler := stats.NewHandler(stats.NewService(studentRepo, facultyRepo))
	systemHandler := system.NewHandler(cfg.Server.Port)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.ErrorLogger(),
		middleware.Metrics(),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	systemHandler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		studentHandler.RegisterRoutes(v1)
		avatarHandler.RegisterRoutes(v1)
		facultyHandler.RegisterRoutes(v1)
		statsHandler.RegisterRoutes(v1)
	}

	return r
}
