package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"frugalfolio/internal/config"
	"frugalfolio/internal/models"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// AutoMigrate creates the schema from the gorm models. Postgres deployments
// use the SQL migrations instead; this path serves sqlite tests and the
// fallback when the migration runner cannot run.
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Purchase{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// OpenMigrationConnection opens a dedicated lib/pq connection for the
// migration runner so schema changes never borrow from the query pool.
func OpenMigrationConnection(cfg *config.DatabaseConfig) (*sql.DB, error) {
	conn, err := sql.Open("postgres", cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to open migration connection: %w", err)
	}
	conn.SetMaxOpenConns(1)
	return conn, nil
}

// Initialize connects, migrates and returns the database handle.
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if !cfg.Migration.AutoMigrate {
		slog.Info("auto-migration disabled", "auto_migrate", false)
		return db, nil
	}

	migrationConn, err := OpenMigrationConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}
	defer migrationConn.Close()

	runner := NewMigrationRunner(migrationConn, cfg.Migration)
	if err := runner.Run(); err != nil {
		slog.Warn("migration runner failed, falling back to gorm auto-migrate", "error", err)

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	slog.Info("purchase store initialized", "host", cfg.Database.Host, "database", cfg.Database.Name)
	return db, nil
}
