package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/theatre-data-processor/internal/config"
	"github.com/iliyamo/theatre-data-processor/internal/database"
	"github.com/iliyamo/theatre-data-processor/internal/handler"
	"github.com/iliyamo/theatre-data-processor/internal/queue"
	"github.com/iliyamo/theatre-data-processor/internal/repository"
	"github.com/iliyamo/theatre-data-processor/internal/router"
	"github.com/iliyamo/theatre-data-processor/internal/service"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("missing required env var: JWT_SECRET")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()
	if err := database.EnsureSchema(context.Background(), db, cfg.DBDriver); err != nil {
		log.Fatalf("db: schema: %v", err)
	}

	rl := config.LoadRateLimitConfig()
	rdb := config.NewRedisClient()
	if rdb == nil && rl.Enabled {
		log.Printf("ratelimit: redis unavailable, import limiter disabled")
	}

	if cfg.EventsEnabled {
		go func() {
			if err := queue.StartImportConsumer(cfg.AMQPURL); err != nil {
				log.Printf("import-consumer: %v", err)
			}
		}()
	}

	e := echo.New()
	e.Use(echomw.Recover())
	router.RegisterRoutes(e)
	router.RegisterImport(e, handler.NewImportHandler(db, service.NewPublisher(cfg.EventsEnabled, cfg.AMQPURL)), cfg.JWTSecret, rl, rdb)
	router.RegisterExport(e, handler.NewExportHandler(repository.NewTheatreContext(db)))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, db=%s)", addr, cfg.Env, cfg.DBDriver)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
