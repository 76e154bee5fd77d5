package main

import (
	"context"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/kleberlz17/locadora-api/internal/config"
	"github.com/kleberlz17/locadora-api/internal/database"
	"github.com/kleberlz17/locadora-api/internal/handler"
	"github.com/kleberlz17/locadora-api/internal/middleware"
	"github.com/kleberlz17/locadora-api/internal/queue"
	"github.com/kleberlz17/locadora-api/internal/repository"
	"github.com/kleberlz17/locadora-api/internal/router"
	"github.com/kleberlz17/locadora-api/internal/service"
)

func main() {
	log := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "locadora-api").
		Logger()

	cfg := config.Load()
	if cfg.Env == "development" {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("schema setup failed")
	}
	cancel()

	// Repositories
	customerRepo := repository.NewCustomerRepo(db)
	movieRepo := repository.NewMovieRepo(db)
	rentalRepo := repository.NewRentalRepo(db)

	// Services
	publisher := queue.NewPublisher(log)
	customerSvc := service.NewCustomerService(customerRepo, log)
	movieSvc := service.NewMovieService(movieRepo, log)
	rentalSvc := service.NewRentalService(customerRepo, movieRepo, rentalRepo, publisher, log)

	// HTTP
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(log))

	if rdb := config.NewRedisClient(); rdb != nil {
		e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, log))
	} else {
		log.Warn().Msg("redis unavailable, rate limiting disabled")
	}

	customerHandler := handler.NewCustomerHandler(customerSvc)
	movieHandler := handler.NewMovieHandler(movieSvc)
	rentalHandler := handler.NewRentalHandler(rentalSvc)
	router.RegisterRoutes(e, customerHandler, movieHandler, rentalHandler)

	if cfg.ConsumerEnabled {
		go queue.StartRentalConsumer(log)
	}

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
