package main

import (
	"io"
	"log"
	"os"

	"github.com/tripjournal/trip-wizard-backend/internal/config"
	"github.com/tripjournal/trip-wizard-backend/internal/logging"
	"github.com/tripjournal/trip-wizard-backend/internal/planner"
	"github.com/tripjournal/trip-wizard-backend/internal/repository/memory"
	"github.com/tripjournal/trip-wizard-backend/internal/repository/ports"
	"github.com/tripjournal/trip-wizard-backend/internal/repository/postgres"
	"github.com/tripjournal/trip-wizard-backend/internal/service"
	"github.com/tripjournal/trip-wizard-backend/internal/session"
	transport "github.com/tripjournal/trip-wizard-backend/internal/transport/http"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Printf("Warning: logstash disabled: %v", err)
		} else {
			defer writer.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, writer))
		}
	}

	catalog := buildCatalog(cfg)
	planning := service.NewPlanningService(catalog, cfg.CatalogCacheTTL)

	registry := session.NewRegistry(cfg.SessionTTL)
	trips := service.NewTripService(planner.NewClient(cfg.PlannerBaseURL))

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterTrip(e, registry, trips)
	transport.RegisterPlanner(e, planning)
	transport.RegisterSwagger(e)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

func buildCatalog(cfg config.Config) ports.CatalogRepository {
	if cfg.DatabaseURL != "" {
		db, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("connect database: %v", err)
		}
		return postgres.NewCatalogRepo(db)
	}

	if cfg.SeedFile != "" {
		catalog, err := memory.LoadSeed(cfg.SeedFile)
		if err != nil {
			log.Fatalf("load seed file: %v", err)
		}
		return catalog
	}

	log.Println("Warning: no DATABASE_URL or SEED_FILE set; catalog is empty")
	return memory.NewCatalog(nil, nil)
}
