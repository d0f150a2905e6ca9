package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/openshelf/library-api/internal/config"
	"github.com/openshelf/library-api/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

// New opens a database through the given dialector and ensures the schema
// exists. Tests use this directly with a sqlite dialector.
func New(dialector gorm.Dialector) (*Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db}
	if err := database.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return database, nil
}

// Connect opens the configured Postgres database with bounded retry.
// Each attempt opens and pings; after cfg.MaxRetries failures it returns
// the last error so callers can treat the store as unavailable.
func Connect(cfg config.Database) (*Database, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Warn),
			TranslateError: true,
		})
		if err == nil {
			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
			}
			if pingErr == nil {
				database := &Database{DB: db}
				if err := database.Migrate(); err != nil {
					return nil, fmt.Errorf("failed to migrate database: %w", err)
				}
				log.Printf("Database connection established on attempt %d", attempt)
				return database, nil
			}
			err = pingErr
		}
		lastErr = err
		if attempt < cfg.MaxRetries {
			log.Printf("DB connection attempt %d failed: %v. Retrying in %s...", attempt, err, cfg.RetryDelay)
			time.Sleep(cfg.RetryDelay)
		}
	}

	return nil, fmt.Errorf("database unavailable after %d attempts: %w", cfg.MaxRetries, lastErr)
}

// Migrate creates the eight tables with their constraints and indexes if
// absent. AutoMigrate is idempotent, so this is safe to run on every start.
func (d *Database) Migrate() error {
	return d.DB.AutoMigrate(
		&entities.User{},
		&entities.Author{},
		&entities.Publisher{},
		&entities.Book{},
		&entities.Booking{},
		&entities.Reservation{},
		&entities.Review{},
		&entities.Transaction{},
	)
}

// Ping reports whether the underlying connection is still alive.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
