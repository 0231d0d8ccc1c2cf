package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	ServerPort string
	LogLevel   string

	// Параметры StatsStore
	StatsMaxAttempts  int
	StatsApplyTimeout time.Duration
	OutOfOrderPolicy  string

	LeaderboardLimit       int
	ContributionsPageLimit int
	MetricsEnabled         bool
}

// LoadConfig читает конфигурацию из окружения и необязательного .env.
// Некорректные значения заменяются значениями по умолчанию и попадают в возвращаемую ошибку.
func LoadConfig() (Config, error) {
	var errs []error
	if err := godotenv.Load(); err != nil {
		errs = append(errs, err)
	}

	cfg := Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "contribution_tracker"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		StatsMaxAttempts:  getEnvInt("STATS_MAX_ATTEMPTS", 5, &errs),
		StatsApplyTimeout: getEnvDuration("STATS_APPLY_TIMEOUT", 5*time.Second, &errs),
		OutOfOrderPolicy:  getEnv("OUT_OF_ORDER_POLICY", "reset"),

		LeaderboardLimit:       getEnvInt("LEADERBOARD_LIMIT", 10, &errs),
		ContributionsPageLimit: getEnvInt("CONTRIBUTIONS_PAGE_LIMIT", 50, &errs),
		MetricsEnabled:         getEnvBool("METRICS_ENABLED", true, &errs),
	}

	if cfg.OutOfOrderPolicy != "reset" && cfg.OutOfOrderPolicy != "reject" {
		errs = append(errs, fmt.Errorf("OUT_OF_ORDER_POLICY: unknown policy %q, using reset", cfg.OutOfOrderPolicy))
		cfg.OutOfOrderPolicy = "reset"
	}

	return cfg, errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int, errs *[]error) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool, errs *[]error) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration, errs *[]error) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return d
}
