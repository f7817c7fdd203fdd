package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	associationapp "github.com/roronge/iuran04/internal/application/association"
	duesapp "github.com/roronge/iuran04/internal/application/dues"
	householdapp "github.com/roronge/iuran04/internal/application/household"
	identityapp "github.com/roronge/iuran04/internal/application/identity"
	ledgerapp "github.com/roronge/iuran04/internal/application/ledger"
	notificationapp "github.com/roronge/iuran04/internal/application/notification"
	reportapp "github.com/roronge/iuran04/internal/application/report"
	domainnotification "github.com/roronge/iuran04/internal/domain/notification"
	"github.com/roronge/iuran04/internal/infrastructure/auth"
	"github.com/roronge/iuran04/internal/infrastructure/config"
	"github.com/roronge/iuran04/internal/infrastructure/event"
	"github.com/roronge/iuran04/internal/infrastructure/logger"
	"github.com/roronge/iuran04/internal/infrastructure/mail"
	"github.com/roronge/iuran04/internal/infrastructure/persistence"
	"github.com/roronge/iuran04/internal/infrastructure/telemetry"
	"github.com/roronge/iuran04/internal/interfaces/http/handler"
	"github.com/roronge/iuran04/internal/interfaces/http/middleware"
	"github.com/roronge/iuran04/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Iuran RT backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection with a GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize telemetry (no-op providers when disabled)
	ctx := context.Background()
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer func() {
		if err := meterProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
	}()

	businessMetrics, err := telemetry.NewBusinessMetrics(meterProvider.Meter("iuran.dues"), log)
	if err != nil {
		log.Fatal("Failed to initialize business metrics", zap.Error(err))
	}

	// Token blacklist: Redis when reachable, in-memory otherwise
	var blacklist auth.TokenBlacklist
	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancelPing := context.WithTimeout(ctx, 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis unreachable, falling back to in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewMemoryTokenBlacklist()
	} else {
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
		defer func() {
			_ = redisClient.Close()
		}()
	}
	cancelPing()

	// Initialize repositories
	assocRepo := persistence.NewGormAssociationRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	householdRepo := persistence.NewGormHouseholdRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	billRepo := persistence.NewGormBillRepository(db.DB)
	settlementStore := persistence.NewGormSettlementStore(db.DB)
	ledgerRepo := persistence.NewGormLedgerRepository(db.DB)
	notifRepo := persistence.NewGormNotificationRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)

	// Mailer for notification email copies
	var mailer domainnotification.Mailer
	if cfg.Mail.Enabled {
		mailer = mail.NewResendMailer(cfg.Mail, log)
		log.Info("Transactional mail enabled", zap.String("from", cfg.Mail.FromAddress))
	} else {
		mailer = mail.NopMailer{}
	}

	// Initialize event bus and handlers
	eventBus := event.NewInMemoryEventBus(log)

	duesEventHandler := notificationapp.NewDuesEventHandler(notifRepo, householdRepo, mailer, log)
	eventBus.Subscribe(duesEventHandler)

	metricsEventHandler := telemetry.NewMetricsEventHandler(businessMetrics, log)
	eventBus.Subscribe(metricsEventHandler)

	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, identityapp.AuthServiceConfig{
		MaxLoginAttempts: cfg.Auth.MaxLoginAttempts,
		LockDuration:     cfg.Auth.LockDuration,
	}, log)
	userService := identityapp.NewUserService(userRepo, assocRepo, householdRepo, log)
	assocService := associationapp.NewAssociationService(assocRepo)
	householdService := householdapp.NewHouseholdService(householdRepo)
	categoryService := duesapp.NewCategoryService(categoryRepo)
	billingService := duesapp.NewBillingService(billRepo)
	generationService := duesapp.NewGenerationService(billRepo, categoryRepo, householdRepo, eventBus, log)
	settlementService := duesapp.NewSettlementService(billRepo, settlementStore, eventBus, log)
	ledgerService := ledgerapp.NewLedgerService(ledgerRepo)
	notificationService := notificationapp.NewNotificationService(notifRepo, householdRepo, mailer, log)
	reportService := reportapp.NewReportService(reportRepo, ledgerRepo)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	assocHandler := handler.NewAssociationHandler(assocService)
	householdHandler := handler.NewHouseholdHandler(householdService)
	duesHandler := handler.NewDuesHandler(categoryService, billingService, generationService, settlementService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	reportHandler := handler.NewReportHandler(reportService)
	systemHandler := handler.NewSystemHandler()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, order matters: request ID first so every later
	// stage can log it, auth last so rejected requests are still logged.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log
	jwtConfig.SkipPaths = append(jwtConfig.SkipPaths, "/api/v1/system/info")
	engine.Use(middleware.JWTAuth(jwtConfig))
	engine.Use(middleware.TracingAttributeInjector())

	// Health endpoints live outside API versioning
	engine.GET("/health", healthHandler(db))
	engine.GET("/ready", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(authHandler).
		Register(assocHandler).
		Register(userHandler).
		Register(householdHandler).
		Register(duesHandler).
		Register(ledgerHandler).
		Register(notificationHandler).
		Register(reportHandler).
		Register(systemHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports process and database health
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
