package main // entry point for the field reservation API server

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/field-reservation/internal/clock"
	"github.com/iliyamo/field-reservation/internal/config"
	"github.com/iliyamo/field-reservation/internal/database"
	"github.com/iliyamo/field-reservation/internal/handler"
	"github.com/iliyamo/field-reservation/internal/middleware"
	"github.com/iliyamo/field-reservation/internal/notifier"
	"github.com/iliyamo/field-reservation/internal/queue"
	"github.com/iliyamo/field-reservation/internal/repository"
	"github.com/iliyamo/field-reservation/internal/router"
	"github.com/iliyamo/field-reservation/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	regional, err := clock.New(cfg.Timezone)
	if err != nil {
		log.Fatalf("clock: unknown time zone %q: %v", cfg.Timezone, err)
	}

	// Redis backs rate limiting and the venue cache.  Both middlewares
	// degrade to pass-through when the client is nil, so a missing Redis
	// keeps the API up, just unprotected.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, rate limiting and caching disabled")
	}
	rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	wa := notifier.NewWhatsApp(cfg.WhatsAppURL, cfg.WhatsAppKey)
	pub := queue.NewPublisher(cfg.AMQPURL)

	// The consumer drains confirmation events and sends the WhatsApp
	// template message; it reconnects on its own if the broker drops.
	go queue.StartReservationConsumer(cfg.AMQPURL, wa)

	reservations := repository.NewReservationRepo(db)
	users := repository.NewUserRepo(db)
	venues := repository.NewVenueRepo(db)
	resets := repository.NewResetRepo(db)

	svc := service.NewReservationService(reservations, pub)

	h := router.Handlers{
		Auth:         handler.NewAuthHandler(cfg, users, resets, wa),
		Reservations: handler.NewReservationHandler(svc),
		Venues:       handler.NewVenueHandler(venues),
		Verification: handler.NewVerificationHandler(wa),
		Clock:        handler.NewClockHandler(regional),
	}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAPI(e, h, cfg.JWTSecret, rateLimit, cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, tz=%s)", addr, cfg.Env, cfg.Timezone)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
