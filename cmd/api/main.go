package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/guardianpro/guardianpro-api/internal/cache"
	"github.com/guardianpro/guardianpro-api/internal/config"
	"github.com/guardianpro/guardianpro-api/internal/database"
	"github.com/guardianpro/guardianpro-api/internal/handler"
	"github.com/guardianpro/guardianpro-api/internal/middleware"
	"github.com/guardianpro/guardianpro-api/internal/repository"
	"github.com/guardianpro/guardianpro-api/internal/service"
	"github.com/guardianpro/guardianpro-api/internal/utils"
	"github.com/guardianpro/guardianpro-api/internal/worker"
	"github.com/guardianpro/guardianpro-api/pkg/resend"
)

// main is the application entrypoint for the GuardianPro marketing-site API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting guardianpro api")

	// 3. Initialize JWT signing
	utils.InitJWT(cfg.JWTSecret)

	// 4. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 4a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 4b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	paymentCache := cache.NewPaymentCache(redisClient)

	// 5. Initialize repositories
	adminRepo := repository.NewAdminUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	faqRepo := repository.NewFAQRepository(db)
	contactRepo := repository.NewContactRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)

	// 6. Initialize services
	authSvc := service.NewAdminAuthService(adminRepo, activityRepo)
	contentSvc := service.NewContentService(serviceRepo, newsRepo, faqRepo, activityRepo)
	dashboardSvc := service.NewDashboardService(serviceRepo, newsRepo, faqRepo, contactRepo, paymentRepo, activityRepo)

	var emailSender service.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = resend.NewClient(cfg.Email.ResendAPIKey)
		log.Info().Msg("email notifications enabled")
	} else {
		log.Warn().Msg("RESEND_API_KEY not set - email notifications disabled")
	}
	emailSvc := service.NewEmailService(emailSender, &cfg.Email)

	var captchaSvc *service.CaptchaService
	if cfg.Captcha.Enabled {
		captchaStore := cache.NewCaptchaStore(redisClient, cfg.Captcha.TTL)
		captchaSvc = service.NewCaptchaService(&cfg.Captcha, captchaStore)
		log.Info().Msg("contact-form captcha enabled")
	}
	contactSvc := service.NewContactService(contactRepo, activityRepo, emailSvc, captchaSvc)

	// Payment gateway registry; every method is a mock until real
	// gateway credentials are provisioned.
	gateways := service.NewGatewayRegistry()
	gateways.Register(service.NewStripeGateway())
	gateways.Register(service.NewPayPalGateway())
	gateways.Register(service.NewPaynowGateway())
	gateways.Register(service.NewEcocashGateway())

	paymentSvc := service.NewPaymentService(paymentRepo, activityRepo, gateways, paymentCache)

	// 7. Initialize handlers
	loginLimiter := middleware.NewLoginRateLimiter()
	handlers := &Handlers{
		Health:    handler.NewHealthHandler(db, redisClient),
		Auth:      handler.NewAuthHandler(authSvc, loginLimiter),
		Content:   handler.NewContentHandler(contentSvc),
		Dashboard: handler.NewDashboardHandler(dashboardSvc),
		Contact:   handler.NewContactHandler(contactSvc, captchaSvc),
		Payment:   handler.NewPaymentHandler(paymentSvc),
	}

	// 8. Initialize middleware
	jwtMw := middleware.NewJWTMiddleware()

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, jwtMw)

	// 10. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 11. Start workers
	go worker.NewPaymentExpiryWorker(
		paymentRepo, paymentCache,
		cfg.Worker.PaymentExpiryInterval,
		cfg.Worker.PaymentMaxPendingAge,
	).Start(ctx)

	// 12. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 13. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 14. Cancel context to stop workers
	cancel()

	// 15. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Content   *handler.ContentHandler
	Dashboard *handler.DashboardHandler
	Contact   *handler.ContactHandler
	Payment   *handler.PaymentHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/health", handlers.Health.GetHealth)

	// Admin session
	auth := router.Group("/admin-auth")
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/verify", handlers.Auth.Verify)
		auth.POST("/logout", handlers.Auth.Logout)
	}

	// Content management
	content := router.Group("/content-management")
	{
		// Public reads for the marketing site
		content.GET("/:entity/list", handlers.Content.List)

		// Admin mutations and dashboard reads
		content.POST("/:entity/create", jwtMiddleware.Handle(), handlers.Content.Create)
		content.PUT("/:entity/update", jwtMiddleware.Handle(), handlers.Content.Update)
		content.DELETE("/:entity/delete", jwtMiddleware.Handle(), handlers.Content.Delete)
		content.GET("/contact-messages/list", jwtMiddleware.Handle(), handlers.Dashboard.ListContactMessages)
		content.GET("/activity/list", jwtMiddleware.Handle(), handlers.Dashboard.ListActivity)
		content.GET("/stats", jwtMiddleware.Handle(), handlers.Dashboard.GetStats)
	}

	// Public contact form
	router.POST("/contact-form", handlers.Contact.Submit)
	router.GET("/contact-form/captcha", handlers.Contact.GetCaptcha)

	// Payments
	payments := router.Group("/payments")
	{
		payments.POST("/process", handlers.Payment.Process)
		payments.GET("/verify", handlers.Payment.Verify)
		payments.GET("/history", handlers.Payment.History)
		payments.GET("/export", handlers.Payment.Export)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
