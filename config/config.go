package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// General
	BaseURL       string
	Engine        string // "http", "headless"
	RespectRobots bool
	OutputPath    string
	LogLevel      string // "debug", "info", "warn", "error"

	// Transport
	ProxyFile   string // file with one proxy URL per line
	LauncherURL string // remote rod launcher for the headless engine
	MaxBrowsers int    // concurrent browsers for the headless engine

	// Stock estimation
	StockMode     string // "random", "fixed", "redis"
	StockFixed    int
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	// MCP HTTP server
	HTTPPort string
	APIKey   string
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:       "https://sportvision.rs",
		Engine:        "http",
		RespectRobots: false,
		OutputPath:    "products.json",
		LogLevel:      "info",
		MaxBrowsers:   4,
		StockMode:     "random",
		RedisAddr:     "localhost:6379",
		RedisPrefix:   "sportvision:stock:",
		HTTPPort:      "8080",
	}
}

// LoadFromEnv loads .env file (if present) then overrides config from environment variables.
func (c *Config) LoadFromEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("SPORTVISION_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("SPORTVISION_ENGINE"); v != "" {
		c.Engine = v
	}
	if v := os.Getenv("SPORTVISION_RESPECT_ROBOTS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.RespectRobots = b
		}
	}
	if v := os.Getenv("SPORTVISION_OUTPUT"); v != "" {
		c.OutputPath = v
	}
	if v := os.Getenv("SPORTVISION_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("SPORTVISION_PROXIES"); v != "" {
		c.ProxyFile = v
	}
	if v := os.Getenv("ROD_LAUNCHER_URL"); v != "" {
		c.LauncherURL = v
	}
	if v := os.Getenv("SPORTVISION_MAX_BROWSERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxBrowsers = n
		}
	}
	if v := os.Getenv("SPORTVISION_STOCK_MODE"); v != "" {
		c.StockMode = v
	}
	if v := os.Getenv("SPORTVISION_STOCK_FIXED"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.StockFixed = n
		}
	}
	if v := os.Getenv("SPORTVISION_REDIS_ADDR"); v != "" {
		c.RedisAddr = v
	}
	if v := os.Getenv("SPORTVISION_REDIS_PASSWORD"); v != "" {
		c.RedisPassword = v
	}
	if v := os.Getenv("SPORTVISION_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("SPORTVISION_REDIS_PREFIX"); v != "" {
		c.RedisPrefix = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.HTTPPort = v
	}
	if v := os.Getenv("SPORTVISION_API_KEY"); v != "" {
		c.APIKey = v
	}
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
