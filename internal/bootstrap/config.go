package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mohammadpnp/user-accounts/internal/infrastructure/db"
)

type Config struct {
	Driver      string
	DSN         string
	SeedFile    string
	ResetSchema bool
	LogLevel    slog.Level
}

// LoadConfig reads the configuration through getenv, usually os.Getenv.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		Driver:   getEnv(getenv, "DATABASE_DRIVER", db.DriverSQLite),
		DSN:      getEnv(getenv, "DATABASE_DSN", ":memory:"),
		SeedFile: getenv("SEED_FILE"),
	}

	switch cfg.Driver {
	case db.DriverSQLite, db.DriverPostgres:
	default:
		return Config{}, fmt.Errorf("DATABASE_DRIVER: %w: %q", db.ErrUnsupportedDriver, cfg.Driver)
	}

	reset, err := strconv.ParseBool(getEnv(getenv, "RESET_SCHEMA", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("RESET_SCHEMA: %w", err)
	}
	cfg.ResetSchema = reset

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv(getenv, "LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func getEnv(getenv func(string) string, key, fallback string) string {
	value := strings.TrimSpace(getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
