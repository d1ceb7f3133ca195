package main

import (
	"log"
	"os"

	"github.com/DhavalSuthar-24/musclemyths/config"
	_ "github.com/DhavalSuthar-24/musclemyths/docs"
	"github.com/DhavalSuthar-24/musclemyths/internal/athlete"
	"github.com/DhavalSuthar-24/musclemyths/internal/auth"
	"github.com/DhavalSuthar-24/musclemyths/internal/event"
	"github.com/DhavalSuthar-24/musclemyths/internal/lineup"
	"github.com/DhavalSuthar-24/musclemyths/internal/registration"
	"github.com/DhavalSuthar-24/musclemyths/internal/score"
	"github.com/DhavalSuthar-24/musclemyths/routes"
)

// @title Muscle Myths Competition API
// @version 1.0
// @description Athletes, events, registrations, lineups and judge scoring for bodybuilding competitions.
// @host localhost:4000
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&auth.User{},
		&athlete.Athlete{},
		&event.Event{},
		&registration.Registration{},
		&lineup.Lineup{},
		&score.Score{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	if err := auth.EnsureSuperAdmin(auth.NewAuthRepository(config.DB), cfg); err != nil {
		log.Fatalf("Seeding super admin failed: %v", err)
	}

	if err := os.MkdirAll(cfg.App.UploadDir, 0o755); err != nil {
		log.Fatalf("Cannot create upload directory %s: %v", cfg.App.UploadDir, err)
	}

	r := routes.SetupRoutes(config.DB, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
