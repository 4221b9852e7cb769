package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelhub/hotel-admin/internal/api"
	"github.com/hotelhub/hotel-admin/internal/api/handler"
	"github.com/hotelhub/hotel-admin/internal/core/ports"
	"github.com/hotelhub/hotel-admin/internal/core/service"
	"github.com/hotelhub/hotel-admin/internal/core/token"
	"github.com/hotelhub/hotel-admin/internal/infrastructure/db/memory"
	mongostore "github.com/hotelhub/hotel-admin/internal/infrastructure/db/mongo"
	redisstore "github.com/hotelhub/hotel-admin/internal/infrastructure/db/redis"
	"github.com/hotelhub/hotel-admin/internal/pkg/config"
	"github.com/hotelhub/hotel-admin/pkg/logger"
)

type repositories struct {
	users      ports.UserRepository
	bookings   ports.BookingRepository
	events     ports.BookingEventRepository
	rooms      ports.RoomRepository
	categories ports.CategoryRepository
	gallery    ports.GalleryRepository
	// probe is nil for the memory store.
	probe handler.Pinger
	close func(context.Context) error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is not configured yet.
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "hotel-admin",
	})

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set: logins and authenticated requests will fail with a configuration error")
	}

	repos, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("failed to open store")
	}

	limiter, redisProbe, closeRedis := openLoginLimiter(ctx, cfg, log)

	codec := token.NewCodec(cfg.JWTSecret)
	health := []handler.Dependency{
		{Name: "store", Pinger: repos.probe},
		{Name: "redis", Optional: true},
	}
	if redisProbe != nil {
		health[1].Pinger = redisProbe
	}

	deps := api.Dependencies{
		Auth:         service.NewAuthService(repos.users, codec, logger.Component("auth")),
		Users:        service.NewUserService(repos.users, logger.Component("users")),
		Bookings:     service.NewBookingService(repos.bookings, repos.events, logger.Component("booking")),
		Rooms:        service.NewRoomService(repos.rooms, logger.Component("rooms")),
		Categories:   service.NewCategoryService(repos.categories, logger.Component("categories")),
		Gallery:      service.NewGalleryService(repos.gallery, logger.Component("gallery")),
		Tokens:       codec,
		Health:       health,
		Logger:       logger.Component("http"),
		ExposeErrors: cfg.ShowErrors(),
	}
	if limiter != nil {
		deps.LoginLimiter = limiter
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.NewRouter(deps),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("store", cfg.StoreDriver).Msg("hotel admin API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	if closeRedis != nil {
		if err := closeRedis(); err != nil {
			log.Warn().Err(err).Msg("closing redis")
		}
	}
	if err := repos.close(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("closing store")
	}
	log.Info().Msg("server exited")
}

// openStore connects the configured store. For MongoDB it also creates the
// indexes and aligns the booking sequence with existing data.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*repositories, error) {
	if cfg.StoreDriver == config.StoreMemory {
		log.Warn().Msg("using the in-memory store: data is lost on restart")
		store := memory.NewStore()
		return &repositories{
			users:      store.Users(),
			bookings:   store.Bookings(),
			events:     store.BookingEvents(),
			rooms:      store.Rooms(),
			categories: store.Categories(),
			gallery:    store.Gallery(),
			close:      func(context.Context) error { return nil },
		}, nil
	}

	client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, err
	}
	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	bookings := mongostore.NewBookingRepository(db)
	seq, err := bookings.SyncSequence(ctx)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	log.Info().Str("database", cfg.Mongo.Database).Int64("booking_sequence", seq).Msg("connected to MongoDB")

	return &repositories{
		users:      mongostore.NewUserRepository(db),
		bookings:   bookings,
		events:     mongostore.NewBookingEventRepository(db),
		rooms:      mongostore.NewRoomRepository(db),
		categories: mongostore.NewCategoryRepository(db),
		gallery:    mongostore.NewGalleryRepository(db),
		probe:      mongostore.NewProbe(db),
		close:      client.Disconnect,
	}, nil
}

// openLoginLimiter connects Redis when configured. Redis being down at startup
// disables rate limiting instead of stopping the process.
func openLoginLimiter(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*redisstore.LoginLimiter, *redisstore.Probe, func() error) {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("REDIS_ADDR is empty: login rate limiting disabled")
		return nil, nil, nil
	}

	client, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable: login rate limiting disabled")
		return nil, nil, nil
	}

	log.Info().
		Str("addr", cfg.Redis.Addr).
		Int("max_attempts", cfg.Login.MaxAttempts).
		Dur("window", cfg.Login.Window).
		Msg("login rate limiting enabled")
	return redisstore.NewLoginLimiter(client, cfg.Login.MaxAttempts, cfg.Login.Window), redisstore.NewProbe(client), client.Close
}
