package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Salary   SalaryConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	FrontendURL string
}

// SalaryConfig holds the deduction rates and defaults applied by the
// salary calculator. Percentages are whole numbers (10 means 10%).
type SalaryConfig struct {
	TaxPercent        decimal.Decimal
	PFPercent         decimal.Decimal
	MiscDeduction     decimal.Decimal
	DefaultBaseSalary decimal.Decimal
}

func Load() (*Config, error) {
	// Missing .env is fine in production, values come from the environment.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "employee_system"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "24h"),
	}

	salary, err := loadSalaryConfig()
	if err != nil {
		return nil, err
	}
	config.Salary = salary

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadSalaryConfig() (SalaryConfig, error) {
	taxPercent, err := getEnvDecimal("SALARY_TAX_PERCENT", "0")
	if err != nil {
		return SalaryConfig{}, fmt.Errorf("invalid SALARY_TAX_PERCENT: %w", err)
	}
	pfPercent, err := getEnvDecimal("SALARY_PF_PERCENT", "0")
	if err != nil {
		return SalaryConfig{}, fmt.Errorf("invalid SALARY_PF_PERCENT: %w", err)
	}
	miscDeduction, err := getEnvDecimal("SALARY_MISC_DEDUCTION", "0")
	if err != nil {
		return SalaryConfig{}, fmt.Errorf("invalid SALARY_MISC_DEDUCTION: %w", err)
	}
	defaultBase, err := getEnvDecimal("SALARY_DEFAULT_BASE", "30000")
	if err != nil {
		return SalaryConfig{}, fmt.Errorf("invalid SALARY_DEFAULT_BASE: %w", err)
	}

	return SalaryConfig{
		TaxPercent:        taxPercent,
		PFPercent:         pfPercent,
		MiscDeduction:     miscDeduction,
		DefaultBaseSalary: defaultBase,
	}, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Salary.TaxPercent.IsNegative() {
		return fmt.Errorf("SALARY_TAX_PERCENT must be non-negative")
	}
	if c.Salary.PFPercent.IsNegative() {
		return fmt.Errorf("SALARY_PF_PERCENT must be non-negative")
	}
	if c.Salary.MiscDeduction.IsNegative() {
		return fmt.Errorf("SALARY_MISC_DEDUCTION must be non-negative")
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

func getEnvDecimal(key, fallback string) (decimal.Decimal, error) {
	return decimal.NewFromString(getEnv(key, fallback))
}
