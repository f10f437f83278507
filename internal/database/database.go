package database

import (
	"fmt"
	"log"

	"github.com/globalwebwork/task-management-api/internal/config"
	"github.com/globalwebwork/task-management-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the configured relational store. Postgres is the default;
// MySQL stays selectable through DB_DRIVER for on-prem deployments.
func Connect(cfg *config.Config) error {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return err
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established")
	return nil
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
			cfg.DBSSLMode,
		)
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBName,
		)
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func Migrate() error {
	log.Println("Running database migrations...")
	err := DB.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Team{},
		&models.ActivityLog{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("Database migrations completed")
	return nil
}

// HealthStatus reports store connectivity for the health endpoint.
type HealthStatus struct {
	OK         bool   `json:"ok"`
	Configured bool   `json:"configured"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Health probes the store with a cheap query against the users table.
func Health() HealthStatus {
	if DB == nil {
		return HealthStatus{
			Configured: false,
			Message:    "Task store credentials not set",
		}
	}

	var count int64
	if err := DB.Model(&models.User{}).Limit(1).Count(&count).Error; err != nil {
		return HealthStatus{
			Configured: true,
			Error:      err.Error(),
			Message:    "Failed to connect to task store",
		}
	}

	return HealthStatus{
		OK:         true,
		Configured: true,
		Message:    "Connected to task store",
	}
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
