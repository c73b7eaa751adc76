package config

import (
	"fmt"
	"os"
	"time"

	"food-ordering-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret signs bearer tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "food_ordering_super_secret_2026"))

// TokenTTL is the lifetime of issued bearer tokens
var TokenTTL = 24 * time.Hour

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadEnv reads a .env file if present and refreshes env-derived settings.
// Must run before InitDB.
func LoadEnv() {
	_ = godotenv.Load()
	JWTSecret = []byte(getEnv("JWT_SECRET", "food_ordering_super_secret_2026"))
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			TokenTTL = d
		}
	}
}

// InitDB opens the configured database and migrates the schema.
// DB_DRIVER=postgres selects Postgres; anything else falls back to the
// embedded sqlite file.
func InitDB() {
	var (
		dialector gorm.Dialector
		err       error
	)

	switch getEnv("DB_DRIVER", "sqlite") {
	case "postgres":
		dsn := getEnv("DATABASE_URL", fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", "postgres"),
			getEnv("DB_NAME", "food_ordering"),
			getEnv("DB_PORT", "5432"),
		))
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(getEnv("DB_PATH", "food_ordering.db"))
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		zap.L().Fatal("failed to connect to database", zap.Error(err))
	}

	if err := Migrate(DB); err != nil {
		zap.L().Fatal("failed to migrate database", zap.Error(err))
	}

	zap.L().Info("database connected and migrated")
}

// Migrate applies the schema for all models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.Country{},
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentMethod{},
	)
}
