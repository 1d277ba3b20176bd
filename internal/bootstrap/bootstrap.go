package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	appControllers "github.com/yigit/studentmanagement/internal/app/controllers"
	appRepos "github.com/yigit/studentmanagement/internal/app/repositories"
	"github.com/yigit/studentmanagement/internal/app/repositories/gormrepo"
	appRoutes "github.com/yigit/studentmanagement/internal/app/routes"
	appServices "github.com/yigit/studentmanagement/internal/app/services"
	"github.com/yigit/studentmanagement/internal/config"
	"github.com/yigit/studentmanagement/internal/db"
	appMiddleware "github.com/yigit/studentmanagement/internal/middleware"
	"github.com/yigit/studentmanagement/internal/pkg/logger"
	"github.com/yigit/studentmanagement/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	Services          *appServices.Services
	StudentController *appControllers.StudentController
	SubjectController *appControllers.SubjectController
	Logger            zerolog.Logger
}

// Database holds the open store for the configured driver. Exactly one of
// Postgres and SQLite is set.
type Database struct {
	Driver   string
	Postgres *db.PostgresDB
	SQLite   *gorm.DB
}

// Close releases the underlying connections
func (d *Database) Close() error {
	if d == nil {
		return nil
	}
	if d.Postgres != nil {
		d.Postgres.Close()
	}
	if d.SQLite != nil {
		return db.CloseSQLiteDB(d.SQLite)
	}
	return nil
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath, ".env.local", ".env")
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the configured store and makes sure the tables exist.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Database, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		lgr.Info().Str("path", cfg.Database.SQLitePath).Msg("Opening sqlite database...")
		gdb, err := db.NewSQLiteDB(cfg.Database.SQLitePath)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to open sqlite database")
			return nil, err
		}
		lgr.Info().Msg("SQLite database ready.")
		return &Database{Driver: config.DriverSQLite, SQLite: gdb}, nil

	default:
		lgr.Info().Msg("Establishing database connection...")
		database, err := db.NewPostgresDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}
		lgr.Info().Msg("Database connection successfully established.")

		schemaCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		if err := db.EnsureSchema(schemaCtx, database.Pool); err != nil {
			lgr.Error().Err(err).Msg("Database schema bootstrap error")
			database.Close()
			return nil, fmt.Errorf("database schema bootstrap failed: %w", err)
		}
		lgr.Info().Msg("Database schema ready.")
		return &Database{Driver: config.DriverPostgres, Postgres: database}, nil
	}
}

// NewRepositories builds the gateways for the open store under the configured retry policy.
func NewRepositories(cfg *config.Config, database *Database) *appRepos.Repositories {
	retrier := appRepos.NewStorageRetrier(cfg.DatabaseRetry())
	if database.SQLite != nil {
		return gormrepo.NewRepositories(database.SQLite, retrier)
	}
	return appRepos.NewRepositories(database.Postgres.Pool, retrier)
}

// BuildDependencies initializes application services and controllers over repos,
// seeding sample data first when enabled.
func BuildDependencies(ctx context.Context, cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Repos: repos}

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(ctx, repos, time.Now(), lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	deps.Services = appServices.NewServices(repos, time.Now)

	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService)
	deps.SubjectController = appControllers.NewSubjectController(deps.Services.SubjectService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.StudentController, deps.SubjectController)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
