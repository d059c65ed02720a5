package db

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options selects between a local sqlite file and a remote Turso database
type Options struct {
	DBPath           string
	Environment      string
	TursoDatabaseURL string
	TursoAuthToken   string
}

// Initialize opens the database connection and returns the handle. Every
// caller receives the handle explicitly; there is no package-level
// connection state.
func Initialize(opts Options) (*gorm.DB, error) {
	// Determine log level based on environment
	logLevel := logger.Info
	if opts.Environment == "production" {
		logLevel = logger.Warn
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}

	// Remote Turso database takes precedence when configured
	if opts.TursoDatabaseURL != "" {
		dsn := opts.TursoDatabaseURL
		if opts.TursoAuthToken != "" {
			dsn = fmt.Sprintf("%s?authToken=%s", opts.TursoDatabaseURL, opts.TursoAuthToken)
		}

		conn, err := sql.Open("libsql", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open libsql connection: %w", err)
		}

		database, err := gorm.Open(&sqlite.Dialector{Conn: conn}, gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to turso database: %w", err)
		}

		log.Println("Database connection established (Turso)")
		return database, nil
	}

	// Enable WAL mode for better concurrency support
	dsn := opts.DBPath + "?_journal_mode=WAL"

	database, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established (WAL mode enabled)")
	return database, nil
}

// AutoMigrate runs database migrations for the provided models
func AutoMigrate(database *gorm.DB, models ...interface{}) error {
	if database == nil {
		return fmt.Errorf("database not initialized")
	}

	if err := database.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// Close closes the database connection
func Close(database *gorm.DB) error {
	if database == nil {
		return nil
	}

	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
