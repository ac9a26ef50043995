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
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ddjproj/reimbursement-tracking/internal"
	"github.com/ddjproj/reimbursement-tracking/internal/account"
	accountPostgres "github.com/ddjproj/reimbursement-tracking/internal/account/postgres"
	"github.com/ddjproj/reimbursement-tracking/internal/auth"
	authPostgres "github.com/ddjproj/reimbursement-tracking/internal/auth/postgres"
	"github.com/ddjproj/reimbursement-tracking/internal/authz"
	"github.com/ddjproj/reimbursement-tracking/internal/core/events"
	"github.com/ddjproj/reimbursement-tracking/internal/reimbursement"
	reimbursementPostgres "github.com/ddjproj/reimbursement-tracking/internal/reimbursement/postgres"
	"github.com/ddjproj/reimbursement-tracking/internal/transport/rest"
	"github.com/ddjproj/reimbursement-tracking/internal/transport/swagger"
	"github.com/ddjproj/reimbursement-tracking/pkg/logger"
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
	Config    *internal.Config
	DB        *sqlx.DB
	Router    *chi.Mux
	Logger    *slog.Logger
	Blacklist auth.TokenBlacklist
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if stoppable, ok := deps.Blacklist.(*auth.MemoryBlacklist); ok {
			stoppable.Stop()
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	lg := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	// Redis is optional; without it revoked tokens live in process memory.
	var blacklist auth.TokenBlacklist
	if config.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{Addr: config.Redis.Addr})
		blacklist = auth.NewRedisBlacklist(client)
		lg.Info("token blacklist backed by redis", "addr", config.Redis.Addr)
	} else {
		blacklist = auth.NewMemoryBlacklist(config.Security.BlacklistSweepInterval)
		lg.Info("token blacklist in process memory")
	}

	eventBus := events.NewEventBus(lg)

	authRepo := authPostgres.NewRepository(gormDB)
	accountRepo := accountPostgres.NewRepository(gormDB)
	reimbursementRepo := reimbursementPostgres.NewRepository(gormDB)

	tokens := auth.NewJWTTokenService(config.Security.JWTSecret, config.Security.TokenDuration)
	authService := auth.NewService(authRepo, tokens, blacklist, config.Security.BCryptCost, config.Security.TokenDuration, lg)
	permService := authz.NewService(accountRepo, authz.NewEvaluator(), lg)
	accountService := account.NewService(accountRepo, permService, eventBus, lg)
	reimbursementService := reimbursement.NewService(reimbursementRepo, permService, eventBus, lg)

	authHandler := auth.NewHandler(authService)
	accountHandler := account.NewHandler(accountService)
	reimbursementHandler := reimbursement.NewHandler(reimbursementService)

	specPath := config.Server.OpenAPIPath
	if specPath == "" {
		specPath = "api/openapi.yml"
	}
	if _, err := swagger.LoadSpec(context.Background(), specPath); err != nil {
		return nil, fmt.Errorf("failed to load openapi spec: %w", err)
	}

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, db.DB, authHandler, accountHandler, reimbursementHandler, lg)

	return &Dependencies{
		Config:    config,
		Logger:    lg,
		DB:        db,
		Router:    router,
		Blacklist: blacklist,
	}, nil
}

// initDB initializes the database connection
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
