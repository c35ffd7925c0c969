package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aviadn777/qflow-stripe-glow/internal/cache"
	"github.com/aviadn777/qflow-stripe-glow/internal/config"
	"github.com/aviadn777/qflow-stripe-glow/internal/handlers"
	"github.com/aviadn777/qflow-stripe-glow/internal/repositories"
	"github.com/aviadn777/qflow-stripe-glow/internal/services"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB

	jwtSecret []byte

	businessRepo     *repositories.BusinessRepository
	discoveryHandler *handlers.DiscoveryHandler
	businessHandler  *handlers.BusinessHandler
}

func initializeApp(db *sql.DB, rdb *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	businessRepo := repositories.BusinessRepository{DB: db}
	reviewAggregates := repositories.ReviewAggregateRepository{DB: db}

	// Services
	scoring := &services.ReviewScoring{
		Aggregates: &reviewAggregates,
		Fallback:   services.NewRandomScoring(),
	}
	var resultCache services.ResultCache
	if rdb != nil {
		resultCache = cache.NewDiscoveryCache(rdb, time.Duration(cfg.Redis.CacheTTLSec)*time.Second)
	}
	discoveryService := &services.DiscoveryService{
		Repo:    &businessRepo,
		Cache:   resultCache,
		Scoring: scoring,
	}

	// Handlers
	discoveryHandler := &handlers.DiscoveryHandler{Service: discoveryService}
	businessHandler := &handlers.BusinessHandler{Service: discoveryService}

	return &application{
		errorLog:         errorLog,
		infoLog:          infoLog,
		db:               db,
		jwtSecret:        []byte(cfg.Auth.JWTSecret),
		businessRepo:     &businessRepo,
		discoveryHandler: discoveryHandler,
		businessHandler:  businessHandler,
	}
}
