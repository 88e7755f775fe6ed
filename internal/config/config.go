package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config contains runtime settings for the board server
type Config struct {
	LogLevel     string
	Host         string // default 0.0.0.0
	Port         string // default PORT env or 8080
	JobsFile     string
	BoardTitle   string
	ShowSalary   bool
	RateLimitRPS float64 // POST actions per second per client
	// TrustedProxies may set X-Forwarded-For. Empty means none, so the
	// client IP is always the socket peer.
	TrustedProxies []string
}

// Load reads .env when present, then populates config from environment
// variables.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel:     "info",
		Host:         "0.0.0.0",
		Port:         "8080",
		BoardTitle:   "Open Positions",
		RateLimitRPS: 5,
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if v := os.Getenv("BOARD_TITLE"); v != "" {
		cfg.BoardTitle = v
	}

	cfg.JobsFile = os.Getenv("JOBS_FILE")

	if v := os.Getenv("TRUSTED_PROXIES"); v != "" {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	var invalid []string

	if v := os.Getenv("SHOW_SALARY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			invalid = append(invalid, "SHOW_SALARY")
		}
		cfg.ShowSalary = b
	}

	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps <= 0 {
			invalid = append(invalid, "RATE_LIMIT_RPS")
		} else {
			cfg.RateLimitRPS = rps
		}
	}

	if cfg.JobsFile == "" {
		return cfg, fmt.Errorf("missing required environment variables: JOBS_FILE")
	}

	if len(invalid) > 0 {
		return cfg, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}
