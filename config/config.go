package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultJWTKey = "defaultSecret"

// Config holds application configuration
type Config struct {
	Port   string
	AppEnv string

	DBDriver       string // postgres, mysql, sqlite
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBDSN          string // full DSN, overrides the individual DB_* pieces
	DBMaxOpenConns int
	DBMaxIdleConns int

	JWTKey         string
	AccessTokenTTL time.Duration
	SaltRound      int

	CORSOrigins string

	SeedOnStart bool
	SeedFile    string

	DefaultPageLimit int
	MaxPageLimit     int
}

// LoadConfig builds the configuration from environment variables (and an optional .env file).
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	p := &envParser{}
	cfg := &Config{
		Port:   getEnv("PORT", "3000"),
		AppEnv: getEnv("APP_ENV", "development"),

		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "learnhub"),
		DBDSN:          os.Getenv("DB_DSN"),
		DBMaxOpenConns: p.int("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: p.int("DB_MAX_IDLE_CONNS", 5),

		JWTKey:         getEnv("JWT_SECRET_KEY", defaultJWTKey),
		AccessTokenTTL: time.Duration(p.int("ACCESS_TOKEN_EXPIRE_MINUTES", 60*24)) * time.Minute,
		SaltRound:      p.int("SALT_ROUND", 10),

		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		SeedOnStart: p.bool("SEED_ON_START", true),
		SeedFile:    os.Getenv("SEED_FILE"),

		DefaultPageLimit: p.int("DEFAULT_PAGE_LIMIT", 100),
		MaxPageLimit:     p.int("MAX_PAGE_LIMIT", 1000),
	}
	if p.err != nil {
		return nil, p.err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.JWTKey == defaultJWTKey {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("config: ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}
	if c.DefaultPageLimit <= 0 || c.MaxPageLimit < c.DefaultPageLimit {
		return fmt.Errorf("config: page limits must satisfy 0 < DEFAULT_PAGE_LIMIT <= MAX_PAGE_LIMIT")
	}
	return nil
}

// IsProduction reports whether APP_ENV selects production mode.
func (c *Config) IsProduction() bool {
	switch strings.ToLower(c.AppEnv) {
	case "prod", "production":
		return true
	}
	return false
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// envParser keeps the first conversion error so LoadConfig can report it.
type envParser struct {
	err error
}

func (p *envParser) int(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		p.fail(fmt.Errorf("config: %s: %w", key, err))
		return defaultValue
	}
	return intValue
}

func (p *envParser) bool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		p.fail(fmt.Errorf("config: %s: %w", key, err))
		return defaultValue
	}
	return b
}

func (p *envParser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}
