package db

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// LoadPostgresConfigFrom reads DB_* variables through getenv, falling back
// to a local development database when they are unset.
func LoadPostgresConfigFrom(getenv func(string) string) (PostgresConfig, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	port, err := strconv.Atoi(get("DB_PORT", "5432"))
	if err != nil || port <= 0 || port > 65535 {
		return PostgresConfig{}, fmt.Errorf("invalid DB_PORT %q", getenv("DB_PORT"))
	}

	return PostgresConfig{
		Host:     get("DB_HOST", "localhost"),
		Port:     port,
		User:     get("DB_USER", "postgres"),
		Password: getenv("DB_PASSWORD"),
		DBName:   get("DB_NAME", "coffee_shop"),
		SSLMode:  get("DB_SSLMODE", "disable"),
	}, nil
}

// DSN returns the connection URL for lib/pq.
func (c PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}
