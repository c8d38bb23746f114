package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Payroll  PayrollConfig
	Sync     SyncConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds the fixed amounts and shift times the attendance and
// payroll services work with. Shift starts are local times of day ("15:04").
type PayrollConfig struct {
	LatePenalty          decimal.Decimal
	LateToleranceMinutes int
	MorningShiftStart    time.Time
	EveningShiftStart    time.Time
}

// SyncConfig holds the punch-machine API settings and the cadence of the
// background day-sync job.
type SyncConfig struct {
	PunchAPIBaseURL string
	PunchTimeout    time.Duration
	Interval        time.Duration
}

func Load() (*Config, error) {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	dbMinConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "shiftledger"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(dbMaxConns),
		MinConns: int32(dbMinConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Payroll configuration
	latePenalty, err := decimal.NewFromString(getEnv("PAYROLL_LATE_PENALTY", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_LATE_PENALTY: %w", err)
	}

	lateTolerance, err := strconv.Atoi(getEnv("PAYROLL_LATE_TOLERANCE_MINUTES", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_LATE_TOLERANCE_MINUTES: %w", err)
	}

	morningStart, err := time.Parse("15:04", getEnv("SHIFT_MORNING_START", "08:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHIFT_MORNING_START: %w", err)
	}

	eveningStart, err := time.Parse("15:04", getEnv("SHIFT_EVENING_START", "16:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHIFT_EVENING_START: %w", err)
	}

	config.Payroll = PayrollConfig{
		LatePenalty:          latePenalty,
		LateToleranceMinutes: lateTolerance,
		MorningShiftStart:    morningStart,
		EveningShiftStart:    eveningStart,
	}

	// Punch sync configuration
	punchTimeout, err := time.ParseDuration(getEnv("PUNCH_API_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PUNCH_API_TIMEOUT: %w", err)
	}

	syncInterval, err := time.ParseDuration(getEnv("SYNC_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SYNC_INTERVAL: %w", err)
	}

	config.Sync = SyncConfig{
		PunchAPIBaseURL: getEnv("PUNCH_API_BASE_URL", ""),
		PunchTimeout:    punchTimeout,
		Interval:        syncInterval,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Sync.PunchAPIBaseURL == "" {
		return fmt.Errorf("PUNCH_API_BASE_URL is required")
	}
	if c.Payroll.LatePenalty.IsNegative() {
		return fmt.Errorf("PAYROLL_LATE_PENALTY must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
