package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	internal "github.com/tradingwalla/backend/internal"
	"github.com/tradingwalla/backend/internal/brochure"
	brochurepostgres "github.com/tradingwalla/backend/internal/brochure/postgres"
	"github.com/tradingwalla/backend/internal/contact"
	contactpostgres "github.com/tradingwalla/backend/internal/contact/postgres"
	"github.com/tradingwalla/backend/internal/core/events"
	"github.com/tradingwalla/backend/internal/forms"
	formspostgres "github.com/tradingwalla/backend/internal/forms/postgres"
	"github.com/tradingwalla/backend/internal/notification"
	"github.com/tradingwalla/backend/internal/payment"
	paymentpostgres "github.com/tradingwalla/backend/internal/payment/postgres"
	"github.com/tradingwalla/backend/internal/transport"
	"github.com/tradingwalla/backend/internal/transport/middleware"
	"github.com/tradingwalla/backend/internal/transport/rest"
	"github.com/tradingwalla/backend/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger

	PaymentHandler  *payment.Handler
	WebhookHandler  *payment.WebhookHandler
	BrochureHandler *brochure.Handler
	ContactHandler  *contact.Handler
	FormsHandler    *forms.Handler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server",
		"address", addr,
		"payment_mode", deps.Config.Payment.Mode)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	deps.Router.Use(middleware.LoggingMiddleware(deps.Logger))

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB,
		deps.Config,
		deps.PaymentHandler,
		deps.WebhookHandler,
		deps.BrochureHandler,
		deps.ContactHandler,
		deps.FormsHandler,
		deps.Logger,
	)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	appLogger := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	eventBus := events.NewEventBus(appLogger)

	mailer := notification.NewMailer(config.Email)
	if mailer == nil {
		appLogger.Warn("email credentials absent, notifications disabled")
	}
	notification.NewEventHandler(mailer, appLogger).RegisterHandlers(eventBus)

	baseHandler := transport.NewBaseHandler(appLogger)

	paymentRepo := paymentpostgres.NewPaymentRepository(gormDB)
	paymentService := payment.NewService(
		paymentRepo,
		config.Payment.Gateway(),
		config.Server.BaseURL,
		config.Payment.TxnIDAttempts,
		eventBus,
		appLogger,
	)
	paymentHandler := payment.NewHandler(baseHandler, paymentService)
	webhookHandler := payment.NewWebhookHandler(baseHandler, paymentService, config.Server.FrontendURL)

	brochureService := brochure.NewService(brochurepostgres.NewBrochureRepository(gormDB), appLogger)
	contactService := contact.NewService(contactpostgres.NewContactRepository(gormDB), eventBus, appLogger)
	formsService := forms.NewService(formspostgres.NewFormRepository(gormDB), appLogger)

	return &Dependencies{
		Config: config,
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
		Logger: appLogger,

		PaymentHandler:  paymentHandler,
		WebhookHandler:  webhookHandler,
		BrochureHandler: brochure.NewHandler(baseHandler, brochureService),
		ContactHandler:  contact.NewHandler(baseHandler, contactService),
		FormsHandler:    forms.NewHandler(baseHandler, formsService),
	}, nil
}

func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers the ORM over the already-open pgx connection pool.
// TranslateError is required: the txnid collision retry relies on
// gorm.ErrDuplicatedKey coming back from unique violations.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{
		TranslateError: true,
	})
}
