package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/stpnv0/ClubCourt/internal/cache"
	"github.com/stpnv0/ClubCourt/internal/config"
	"github.com/stpnv0/ClubCourt/internal/domain"
	"github.com/stpnv0/ClubCourt/internal/handler"
	"github.com/stpnv0/ClubCourt/internal/metrics"
	"github.com/stpnv0/ClubCourt/internal/middleware"
	"github.com/stpnv0/ClubCourt/internal/notification"
	"github.com/stpnv0/ClubCourt/internal/pricing"
	"github.com/stpnv0/ClubCourt/internal/report"
	"github.com/stpnv0/ClubCourt/internal/repository"
	"github.com/stpnv0/ClubCourt/internal/router"
	"github.com/stpnv0/ClubCourt/internal/schedule"
	"github.com/stpnv0/ClubCourt/internal/scheduler"
	"github.com/stpnv0/ClubCourt/internal/service"
	"github.com/stpnv0/ClubCourt/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg         *config.Config
	log         logger.Logger
	db          *dbpg.DB
	redis       *redis.Client
	httpServer  *http.Server
	scheduler   *scheduler.Scheduler
	rateLimiter *middleware.RateLimiter
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ClubCourt",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// initCache — без redis каталог читается напрямую из БД.
func (a *App) initCache() (ports.Cache, error) {
	if !a.cfg.Redis.Enabled {
		a.log.Info("redis disabled, catalog cache off")
		return cache.Noop{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
		logger.Duration("ttl", a.cfg.Redis.TTL),
	)

	return cache.NewRedisCache(client, a.cfg.Redis.Prefix, a.cfg.Redis.TTL), nil
}

func (a *App) pricingEngine() (*pricing.Engine, error) {
	p := a.cfg.Pricing
	return pricing.NewEngine(pricing.Config{
		OffPeakStart: p.OffPeakStart,
		OffPeakEnd:   p.OffPeakEnd,
		CoachFee:     p.CoachFee,
		TierRates: map[domain.Tier]float64{
			domain.TierFounding: p.FoundingRate,
			domain.TierGold:     p.GoldRate,
			domain.TierSilver:   p.SilverRate,
		},
		Durations: p.Durations,
	})
}

func (a *App) initServices() error {
	facilityRepo := repository.NewFacilityRepo(a.db)
	addOnRepo := repository.NewAddOnRepo(a.db)
	hoursRepo := repository.NewHoursRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	memberRepo := repository.NewMemberRepo(a.db)

	catalogCache, err := a.initCache()
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}

	engine, err := a.pricingEngine()
	if err != nil {
		return fmt.Errorf("init pricing: %w", err)
	}
	resolver := schedule.NewResolver(a.cfg.Booking.DefaultSlots)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	m := metrics.New()

	catalogService := service.NewCatalogService(
		facilityRepo, addOnRepo, hoursRepo, bookingRepo,
		catalogCache, resolver, a.log,
	)
	memberService := service.NewMemberService(memberRepo, a.log)
	bookingService := service.NewBookingService(
		bookingRepo, memberRepo, catalogService, n, m,
		engine, resolver, a.cfg.Booking.PaymentTTL, a.log,
	)
	exporter := report.NewExporter(bookingService, catalogService, a.log)

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	opts := router.Options{Metrics: m.Handler()}
	if a.cfg.RateLimit.Enabled() {
		a.rateLimiter = middleware.NewRateLimiter(a.cfg.RateLimit.RPS, a.cfg.RateLimit.Burst, a.cfg.RateLimit.IdleTTL)
		opts.RateLimit = a.rateLimiter.Limit()
	}

	h := handler.NewHandler(catalogService, bookingService, memberService, exporter)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		opts,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		m.Middleware(),
	)

	c := cors.New(cors.Options{
		AllowedOrigins: a.cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "Content-Disposition"},
	})

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      c.Handler(r),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)
	if a.rateLimiter != nil {
		go a.rateLimiter.Cleanup(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connection closed")
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
