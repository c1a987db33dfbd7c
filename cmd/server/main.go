package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"

	httpAdapter "github.com/khoahotran/devboard/adapters/http"
	"github.com/khoahotran/devboard/adapters/persistence"
	profileUC "github.com/khoahotran/devboard/internal/application/usecase/profile"
	projectUC "github.com/khoahotran/devboard/internal/application/usecase/project"
	searchUC "github.com/khoahotran/devboard/internal/application/usecase/search"
	"github.com/khoahotran/devboard/internal/config"
	"github.com/khoahotran/devboard/pkg/logger"
	"github.com/khoahotran/devboard/pkg/tracing"
)

//go:embed all:web
var webFiles embed.FS

func main() {
	fmt.Println("Start DevBoard API Server...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "devboard-api")
		if err != nil {
			log.Fatalf("FATAL: cannot init tracing: %v", err)
		}
		defer tp.Shutdown(context.Background())
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	// Repositories
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	searchRepo := persistence.NewPostgresSearchRepo(dbPool, appLogger)

	// Use Cases
	profileUseCase := profileUC.NewProfileUseCase(profileRepo)
	listBySkillUseCase := projectUC.NewListBySkillUseCase(projectRepo)
	searchUseCase := searchUC.NewSearchUseCase(searchRepo, appLogger)

	// HTTP Handlers
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, appLogger)
	projectHandler := httpAdapter.NewProjectHandler(listBySkillUseCase, appLogger)
	searchHandler := httpAdapter.NewSearchHandler(searchUseCase, appLogger)

	webFS, err := fs.Sub(webFiles, "web")
	if err != nil {
		log.Fatalf("FATAL: cannot mount dashboard assets: %v", err)
	}

	router := httpAdapter.NewRouter(cfg, appLogger, profileHandler, projectHandler, searchHandler, webFS)

	log.Printf("Server running on port %s", cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
