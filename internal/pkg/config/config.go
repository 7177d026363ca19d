package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type (
	Tasks struct {
		StatsRefreshInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	// Lookup настройки публичного виджет-эндпоинта.
	Lookup struct {
		AllowedOrigins []string
		PlatformDomain string
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Lookup   Lookup
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	statsInterval, err := osGetEnvDuration("BACKGROUND_STATS_REFRESH_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			StatsRefreshInterval: statsInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Lookup: Lookup{
			AllowedOrigins: osGetList("LOOKUP_ALLOWED_ORIGINS"),
			PlatformDomain: os.Getenv("LOOKUP_PLATFORM_DOMAIN"),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.StatsRefreshInterval == time.Duration(0) {
		return errors.New("BACKGROUND_STATS_REFRESH_INTERVAL is required")
	}

	if len(cfg.Lookup.AllowedOrigins) == 0 {
		return errors.New("LOOKUP_ALLOWED_ORIGINS is required")
	}
	if cfg.Lookup.PlatformDomain == "" {
		return errors.New("LOOKUP_PLATFORM_DOMAIN is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetList(s string) []string {
	val := os.Getenv(s)
	if val == "" {
		return nil
	}

	parts := strings.Split(val, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			res = append(res, trimmed)
		}
	}
	return res
}
