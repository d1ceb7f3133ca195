package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultJWTSecret     = "your-very-strong-jwt-secret"
	defaultDBPassword    = "password"
	defaultSuperAdminPwd = "change-me"
)

type Config struct {
	App struct {
		Env         string `env:"APP_ENV"       envDefault:"development"`
		Port        string `env:"PORT"          envDefault:"4000"`
		FrontendURL string `env:"FRONTEND_URL"  envDefault:"http://localhost:3000"`
		UploadDir   string `env:"UPLOAD_DIR"    envDefault:"./uploads"`
		UploadMaxMB int    `env:"UPLOAD_MAX_MB" envDefault:"50"`
	}
	DB struct {
		Host     string `env:"DB_HOST"     envDefault:"localhost"`
		Port     string `env:"DB_PORT"     envDefault:"5432"`
		User     string `env:"DB_USER"     envDefault:"postgres"`
		Password string `env:"DB_PASSWORD" envDefault:"password"`
		Name     string `env:"DB_NAME"     envDefault:"musclemyths"`
		SSLMode  string `env:"DB_SSLMODE"  envDefault:"disable"`
		TimeZone string `env:"DB_TIMEZONE" envDefault:"UTC"`
	}
	JWT struct {
		Secret      string `env:"JWT_SECRET"       envDefault:"your-very-strong-jwt-secret"`
		ExpiryHours int    `env:"JWT_EXPIRY_HOURS" envDefault:"720"`
	}
	Login struct {
		RatePerMinute int `env:"LOGIN_RATE_PER_MINUTE" envDefault:"10"`
		Burst         int `env:"LOGIN_BURST"           envDefault:"5"`
	}
	SuperAdmin struct {
		Username string `env:"SUPERADMIN_USERNAME" envDefault:"superadmin"`
		Password string `env:"SUPERADMIN_PASSWORD" envDefault:"change-me"`
		Token    string `env:"SUPERADMIN_TOKEN"`
	}
}

// JWTExpiry returns the access token lifetime.
func (c *Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWT.ExpiryHours) * time.Hour
}

// UploadMaxBytes returns the multipart size limit.
func (c *Config) UploadMaxBytes() int64 {
	return int64(c.App.UploadMaxMB) << 20
}

// Global DB instance, accessible after ConnectDB() is called via Initialize.
var DB *gorm.DB

// Global AppConfig instance, accessible after LoadConfig() is called via Initialize.
var appConfig *Config
var once sync.Once

// LoadConfig loads configuration from environment variables into the Config struct.
func LoadConfig() (*Config, error) {
	// It's okay if .env doesn't exist; production sets env vars directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := &Config{}
	var err error

	// --- App Configuration ---
	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "4000")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")
	cfg.App.UploadDir = getEnv("UPLOAD_DIR", "./uploads") // Ensure this path is writable
	if cfg.App.UploadMaxMB, err = getEnvAsInt("UPLOAD_MAX_MB", 50); err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_MAX_MB: %w", err)
	}

	// --- Database Configuration ---
	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", defaultDBPassword)
	cfg.DB.Name = getEnv("DB_NAME", "musclemyths")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.DB.TimeZone = getEnv("DB_TIMEZONE", "UTC")

	// --- JWT Configuration ---
	cfg.JWT.Secret = getEnv("JWT_SECRET", defaultJWTSecret)
	if cfg.JWT.ExpiryHours, err = getEnvAsInt("JWT_EXPIRY_HOURS", 720); err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_HOURS: %w", err)
	}

	// --- Login rate limiting ---
	if cfg.Login.RatePerMinute, err = getEnvAsInt("LOGIN_RATE_PER_MINUTE", 10); err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_PER_MINUTE: %w", err)
	}
	if cfg.Login.Burst, err = getEnvAsInt("LOGIN_BURST", 5); err != nil {
		return nil, fmt.Errorf("invalid LOGIN_BURST: %w", err)
	}

	// --- Super admin seed ---
	cfg.SuperAdmin.Username = getEnv("SUPERADMIN_USERNAME", "superadmin")
	cfg.SuperAdmin.Password = getEnv("SUPERADMIN_PASSWORD", defaultSuperAdminPwd)
	cfg.SuperAdmin.Token = getEnv("SUPERADMIN_TOKEN", "")

	if cfg.JWT.Secret == defaultJWTSecret {
		log.Println("WARNING: Using default JWT secret. Please set JWT_SECRET for production.")
	}
	if cfg.App.Env == "production" {
		if cfg.DB.Password == defaultDBPassword {
			log.Println("WARNING: Using default DB password in production. Please set DB_PASSWORD environment variable.")
		}
		if cfg.SuperAdmin.Password == defaultSuperAdminPwd {
			log.Println("WARNING: Using default super admin password in production. Please set SUPERADMIN_PASSWORD.")
		}
	}

	appConfig = cfg
	return cfg, nil
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DB.Host,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.Port,
		c.DB.SSLMode,
		c.DB.TimeZone,
	)
}

// GormConfig returns the gorm settings shared by the server and integration
// tests. Duplicate-key violations are translated to gorm.ErrDuplicatedKey.
func GormConfig(env string) *gorm.Config {
	gormConfig := &gorm.Config{TranslateError: true}
	if env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info) // Log SQL queries in development
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}
	return gormConfig
}

// ConnectDB establishes a connection to the database using the provided configuration.
// It sets the global DB variable.
func ConnectDB(dbCfg Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(dbCfg.DSN()), GormConfig(dbCfg.App.Env))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB
	log.Println("Successfully connected to database!")
	return gormDB, nil
}

// Initialize loads all configurations and connects to the database.
// This should be called once at the start of the application.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg

		if _, err = ConnectDB(*appConfig); err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
// It exits if the configuration has not been loaded yet.
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}
