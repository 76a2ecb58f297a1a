package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nawi-studio/nawi-backend/internal/config"
	"github.com/nawi-studio/nawi-backend/internal/handlers"
	"github.com/nawi-studio/nawi-backend/internal/jwt"
	"github.com/nawi-studio/nawi-backend/internal/logger"
	"github.com/nawi-studio/nawi-backend/internal/mailer"
	"github.com/nawi-studio/nawi-backend/internal/middlewares"
	"github.com/nawi-studio/nawi-backend/internal/migrations"
	"github.com/nawi-studio/nawi-backend/internal/repositories"
	"github.com/nawi-studio/nawi-backend/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Nawi Design Studio API
// @version 1.0.0
// @description Backend service for the Nawi design studio website
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath, migrate := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := run(context.Background(), cfg, migrate); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path
// and whether to run migrations before serving.
func parseFlags() (string, bool) {
	c := flag.String("c", "config.env", "Path to configuration file")
	migrate := flag.Bool("migrate", false, "Apply database schema and seed data before serving")
	flag.Parse()
	return *c, *migrate
}

// run initializes the logger, database, mailer, and HTTP server. It
// sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config, migrate bool) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	if migrate {
		logger.Log.Info("Applying database schema and seed data")
		if err := migrations.Run(ctx, db, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	// Notification mailer
	mail := mailer.NewSMTP(
		cfg.Mail.Host, cfg.Mail.Port,
		cfg.Mail.Username, cfg.Mail.Password,
		cfg.Mail.Sender, cfg.Admin.Email,
		cfg.Mail.Workers,
	)
	defer mail.Close()

	// Token service
	tokens := jwt.New(cfg.JWT.SecretKey, cfg.JWT.AccessExp, cfg.JWT.RefreshExp)

	// Repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	serviceReadRepo := repositories.NewServiceReadRepository(db)
	serviceWriteRepo := repositories.NewServiceWriteRepository(db)
	portfolioReadRepo := repositories.NewPortfolioReadRepository(db)
	portfolioWriteRepo := repositories.NewPortfolioWriteRepository(db)
	requestReadRepo := repositories.NewDesignRequestReadRepository(db)
	requestWriteRepo := repositories.NewDesignRequestWriteRepository(db)
	messageReadRepo := repositories.NewContactMessageReadRepository(db)
	messageWriteRepo := repositories.NewContactMessageWriteRepository(db)

	// Services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	catalogService := services.NewCatalogService(serviceReadRepo, serviceWriteRepo, portfolioReadRepo, portfolioWriteRepo)
	requestService := services.NewRequestService(requestReadRepo, requestWriteRepo, mail)
	contactService := services.NewContactService(messageReadRepo, messageWriteRepo, mail)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	refreshHandler := handlers.NewRefreshHandler(authService, tokens)
	listServicesHandler := handlers.NewListServicesHandler(catalogService)
	createServiceHandler := handlers.NewCreateServiceHandler(catalogService)
	listPortfolioHandler := handlers.NewListPortfolioHandler(catalogService)
	createPortfolioHandler := handlers.NewCreatePortfolioHandler(catalogService)
	contactHandler := handlers.NewContactHandler(contactService)
	createRequestHandler := handlers.NewCreateRequestHandler(requestService, tokens)
	myRequestsHandler := handlers.NewMyRequestsHandler(requestService)
	adminListRequestsHandler := handlers.NewAdminListRequestsHandler(requestService)
	updateRequestHandler := handlers.NewUpdateRequestHandler(requestService)
	adminListMessagesHandler := handlers.NewAdminListMessagesHandler(contactService)
	markMessageReadHandler := handlers.NewMarkMessageReadHandler(contactService)
	uploadHandler := handlers.NewUploadHandler(cfg.Upload.Dir, cfg.Upload.MaxSizeBytes)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware)

	// Public routes
	r.Get("/api/health", healthHandler)
	r.Post("/api/auth/register", registerHandler)
	r.Post("/api/auth/login", loginHandler)
	r.Post("/api/auth/refresh", refreshHandler)
	r.Get("/api/services", listServicesHandler)
	r.Get("/api/portfolio", listPortfolioHandler)
	r.Post("/api/contact", contactHandler)
	r.Post("/api/requests", createRequestHandler)

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(tokens)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/api/requests", myRequestsHandler)

		// Admin-only routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AdminMiddleware)
			r.Post("/api/services", createServiceHandler)
			r.Post("/api/portfolio", createPortfolioHandler)
			r.Get("/api/admin/requests", adminListRequestsHandler)
			r.Patch("/api/admin/requests/{id}", updateRequestHandler)
			r.Get("/api/admin/messages", adminListMessagesHandler)
			r.Patch("/api/admin/messages/{id}/read", markMessageReadHandler)
			r.Post("/api/upload", uploadHandler)
		})
	})

	// Uploaded images are served back under the URLs the upload
	// endpoint hands out.
	r.Handle("/static/uploads/*", http.StripPrefix("/static/uploads/",
		http.FileServer(http.Dir(cfg.Upload.Dir))))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.Server.Host, cfg.Server.Port)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
