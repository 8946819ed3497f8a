package database

import (
	"fmt"
	"log"
	"strings"

	"github.com/speccs/assetdb/internal/config"
	"github.com/speccs/assetdb/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect establishes a database connection based on the configured DB_TYPE,
// or on the DATABASE_URL connection string when one is supplied.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch dbType(cfg) {
	case "mysql", "mariadb":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				cfg.DBUser,
				cfg.DBPassword,
				cfg.DBHost,
				cfg.DBPort,
				cfg.DBDatabase,
			)
		}
		dialector = mysql.Open(dsn)

	case "postgres", "postgresql":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
				cfg.DBHost,
				cfg.DBUser,
				cfg.DBPassword,
				cfg.DBDatabase,
				cfg.DBPort,
			)
		}
		dialector = postgres.Open(dsn)

	case "sqlite":
		// For SQLite, DBDatabase is the file path
		path := strings.TrimPrefix(cfg.DatabaseURL, "sqlite://")
		if path == "" {
			path = cfg.DBDatabase
		}
		dialector = sqlite.Open(path)

	case "sqlserver", "mssql":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
				cfg.DBUser,
				cfg.DBPassword,
				cfg.DBHost,
				cfg.DBPort,
				cfg.DBDatabase,
			)
		}
		dialector = sqlserver.Open(dsn)

	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB for connection pool configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxOpenConns(cfg.DBConnectionLimit)
	sqlDB.SetMaxIdleConns(cfg.DBConnectionLimit / 2)

	log.Printf("Connected to %s database", dbType(cfg))

	return db, nil
}

// dbType resolves the effective database type, preferring the scheme of the
// connection string when one is present.
func dbType(cfg *config.Config) string {
	if cfg.DatabaseURL != "" {
		switch {
		case strings.HasPrefix(cfg.DatabaseURL, "postgres://"),
			strings.HasPrefix(cfg.DatabaseURL, "postgresql://"):
			return "postgres"
		case strings.HasPrefix(cfg.DatabaseURL, "sqlserver://"):
			return "sqlserver"
		case strings.HasPrefix(cfg.DatabaseURL, "sqlite://"):
			return "sqlite"
		}
	}
	return cfg.DBType
}

// AutoMigrate runs automatic migrations for all models. Room and Asset
// reference each other through nullable keys, so a single pass handles the
// cycle without a fixed creation order.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Property{},
		&models.Building{},
		&models.Floor{},
		&models.Room{},
		&models.Asset{},
		&models.Connection{},
		&models.Journal{},
	)
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
