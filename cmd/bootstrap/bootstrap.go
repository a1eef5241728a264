package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lab-supply-ledger/config"
	deliveryHttp "lab-supply-ledger/internal/delivery/http"
	"lab-supply-ledger/internal/delivery/http/handler"
	"lab-supply-ledger/internal/delivery/http/middleware"
	"lab-supply-ledger/internal/infrastructure/database"
	"lab-supply-ledger/internal/repository"
	"lab-supply-ledger/internal/service"
	"lab-supply-ledger/internal/usecase"
	"lab-supply-ledger/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Open the local data store
	db, err := database.NewSQLiteConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	app.DB = db

	// Seed the starter catalogue on a fresh installation
	if cfg.DB.SeedCatalogue {
		if err := database.SeedCatalogue(db, logrus.StandardLogger()); err != nil {
			return nil, fmt.Errorf("failed to seed catalogue: %w", err)
		}
	}

	// Initialize all layers
	server := initializeServer(cfg, db)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	requestRepo := repository.NewRequestRepository(db)

	// Initialize services
	exportService := service.NewExportService(log)

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, requestRepo)
	materialUsecase := usecase.NewMaterialUsecase(log, materialRepo)
	requestUsecase := usecase.NewRequestUsecase(log, doctorRepo, materialRepo, requestRepo)
	reportUsecase := usecase.NewReportUsecase(log, requestRepo, exportService, cfg.Export.Dir)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	materialHandler := handler.NewMaterialHandler(materialUsecase, customValidator)
	requestHandler := handler.NewRequestHandler(requestUsecase, customValidator)
	reportHandler := handler.NewReportHandler(reportUsecase, customValidator)

	// Initialize middleware
	requestIDMiddleware := middleware.NewRequestIDMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, materialHandler, requestHandler, reportHandler, requestIDMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes the database connection
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
