package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Cheertaboi/coffee-shop-billing/internal/logger"
	"github.com/Cheertaboi/coffee-shop-billing/pkg/db"
)

// Config holds everything the coffee-shop binary needs at startup.
type Config struct {
	ServiceName string
	LogLevel    slog.Level

	HTTP HTTPConfig

	Postgres     db.PostgresConfig
	SeedMenu     bool
	MenuCacheTTL time.Duration

	KafkaBrokers    string
	KafkaBillsTopic string
}

// HTTPConfig holds listener address and server timeouts.
type HTTPConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	r := reader{getenv: getenv}

	level, ok := logger.ParseLevel(getenv("LOG_LEVEL"))
	if !ok {
		r.fail("LOG_LEVEL", getenv("LOG_LEVEL"))
	}

	cfg := Config{
		ServiceName: r.str("SERVICE_NAME", "coffee-shop"),
		LogLevel:    level,
		HTTP: HTTPConfig{
			Addr:            r.str("HTTP_ADDR", ":8080"),
			ReadTimeout:     r.duration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    r.duration("HTTP_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:     r.duration("HTTP_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: r.duration("SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		SeedMenu:        r.boolean("SEED_MENU", true),
		MenuCacheTTL:    r.duration("MENU_CACHE_TTL", 30*time.Second),
		KafkaBrokers:    r.str("KAFKA_BROKERS", ""),
		KafkaBillsTopic: r.str("KAFKA_BILLS_TOPIC", "coffee-shop.bills"),
	}
	if r.err != nil {
		return Config{}, r.err
	}

	pg, err := db.LoadPostgresConfigFrom(getenv)
	if err != nil {
		return Config{}, err
	}
	cfg.Postgres = pg
	return cfg, nil
}

// reader keeps the first parse error so Load can report it once.
type reader struct {
	getenv func(string) string
	err    error
}

func (r *reader) fail(key, value string) {
	if r.err == nil {
		r.err = fmt.Errorf("invalid %s %q", key, value)
	}
}

func (r *reader) str(key, def string) string {
	if v := strings.TrimSpace(r.getenv(key)); v != "" {
		return v
	}
	return def
}

func (r *reader) duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(r.getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		r.fail(key, v)
		return def
	}
	return d
}

func (r *reader) boolean(key string, def bool) bool {
	v := strings.TrimSpace(r.getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(key, v)
		return def
	}
	return b
}
