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

	"github.com/colvahr/backoffice/internal"
	"github.com/colvahr/backoffice/internal/alerting"
	"github.com/colvahr/backoffice/internal/attendance"
	attendancePostgres "github.com/colvahr/backoffice/internal/attendance/postgres"
	"github.com/colvahr/backoffice/internal/catalog"
	catalogPostgres "github.com/colvahr/backoffice/internal/catalog/postgres"
	"github.com/colvahr/backoffice/internal/core/events"
	"github.com/colvahr/backoffice/internal/employee"
	employeePostgres "github.com/colvahr/backoffice/internal/employee/postgres"
	"github.com/colvahr/backoffice/internal/incidence"
	incidencePostgres "github.com/colvahr/backoffice/internal/incidence/postgres"
	"github.com/colvahr/backoffice/internal/leave"
	leavePostgres "github.com/colvahr/backoffice/internal/leave/postgres"
	"github.com/colvahr/backoffice/internal/profile"
	profilePostgres "github.com/colvahr/backoffice/internal/profile/postgres"
	"github.com/colvahr/backoffice/internal/transport"
	"github.com/colvahr/backoffice/internal/transport/rest"
	"github.com/colvahr/backoffice/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server and the session guard`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	GormDB   *gorm.DB
	Router   *chi.Mux
	Handlers rest.Handlers
	Guard    *attendance.Guard
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.Handlers, deps.Config.Server.AllowedOrigins, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	guardCtx, stopGuard := context.WithCancel(context.Background())
	go deps.Guard.Run(guardCtx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		stopGuard()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		stopGuard()
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

	logger.Init(os.Getenv("APP_ENV"), config.Logging.Level)
	lg := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm over pgx connection: %w", err)
	}

	bus := events.NewEventBus(lg)
	alerting.New(lg).Register(bus)

	employeeRepo := employeePostgres.NewEmployeeRepository(gormDB)
	attendanceRepo := attendancePostgres.NewAttendanceRepository(gormDB)
	incidenceRepo := incidencePostgres.NewIncidenceRepository(gormDB)
	leaveRepo := leavePostgres.NewLeaveRepository(gormDB)
	catalogRepo := catalogPostgres.NewCatalogRepository(gormDB)
	profileRepo := profilePostgres.NewProfileRepository(gormDB)

	employeeService := employee.NewService(employeeRepo, lg)
	incidenceService := incidence.NewService(incidenceRepo, employeeService, bus, lg)
	attendanceService := attendance.NewService(
		attendanceRepo,
		employeeService,
		incidenceService,
		bus,
		config.Attendance.SessionCeiling,
		config.Attendance.RecomputeAtomic,
		lg,
	)
	leaveService := leave.NewService(leaveRepo, employeeService, lg)
	catalogService := catalog.NewService(catalogRepo, lg)
	profileService := profile.NewService(profileRepo, employeeService, catalogService, lg)

	guard := attendance.NewGuard(
		attendanceService,
		config.Attendance.GuardInterval,
		config.Attendance.GuardInitDelay,
		lg,
	)

	base := transport.NewBaseHandler(lg)
	handlers := rest.Handlers{
		Employee:   employee.NewHandler(base, employeeService),
		Attendance: attendance.NewHandler(base, attendanceService),
		Incidence:  incidence.NewHandler(base, incidenceService),
		Leave:      leave.NewHandler(base, leaveService),
		Catalog:    catalog.NewHandler(base, catalogService),
		Profile:    profile.NewHandler(base, profileService),
	}

	return &Dependencies{
		Config:   config,
		Logger:   lg,
		DB:       db,
		GormDB:   gormDB,
		Router:   chi.NewRouter(),
		Handlers: handlers,
		Guard:    guard,
	}, nil
}

// initDB opens the pgx stdlib connection the whole process shares.
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
