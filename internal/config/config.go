// Package config loads environment-based settings for cmd/crossd and
// cmd/loadgen, optionally from a .env file via github.com/joho/godotenv
// (grounded on uhyunpark-hyperlicked's own use of the same library).
// cmd/cross, the pure textual driver, takes no configuration at all: it
// only ever reads actions.txt or stdin and writes to stdout.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"crossengine/internal/errs"
)

// ServerConfig controls cmd/crossd.
type ServerConfig struct {
	ListenAddr   string
	CORSOrigin   string
	AuthToken    string
	ProfilerAddr string // empty disables the pyroscope profiler
}

// LoadServerConfig reads a .env file if present (ignored if absent), then
// overlays environment variables.
func LoadServerConfig() (ServerConfig, error) {
	if err := loadDotenv(); err != nil {
		return ServerConfig{}, err
	}
	return ServerConfig{
		ListenAddr:   getEnv("LISTEN_ADDR", ":8080"),
		CORSOrigin:   getEnv("CORS_ORIGIN", "*"),
		AuthToken:    os.Getenv("AUTH_TOKEN"),
		ProfilerAddr: os.Getenv("PYROSCOPE_ADDR"),
	}, nil
}

// LoadGenConfig controls cmd/loadgen.
type LoadGenConfig struct {
	Symbol      string
	TotalOrders int
	Seed        int64
}

// LoadGenConfigFromEnv overlays defaults with environment variables, for
// callers that want an env-first loadgen invocation alongside flags.
func LoadGenConfigFromEnv(def LoadGenConfig) LoadGenConfig {
	if v := os.Getenv("LOADGEN_SYMBOL"); v != "" {
		def.Symbol = v
	}
	if v := os.Getenv("LOADGEN_ORDERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			def.TotalOrders = n
		}
	}
	return def
}

func loadDotenv() error {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return errs.Wrap(err, "loading .env file")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
