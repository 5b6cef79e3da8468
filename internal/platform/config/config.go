package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	platformstrings "todolists/pkg/platform/strings"
)

const (
	SessionBackendMemory   = "memory"
	SessionBackendRedis    = "redis"
	SessionBackendPostgres = "postgres"

	PostgresDriverPQ  = "postgres"
	PostgresDriverPgx = "pgx"

	devSessionSecret = "dev-secret-change-in-production"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Session controls where session state lives and how long it lasts.
type Session struct {
	Backend       string
	Secret        string
	TTL           time.Duration
	SecureCookie  bool
	PurgeInterval time.Duration
}

// RedisConfig configures the go-redis client. An empty URL disables Redis.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PostgresConfig configures the database/sql pool. An empty URL disables it.
// Driver selects lib/pq ("postgres") or pgx's database/sql adapter ("pgx").
type PostgresConfig struct {
	URL             string
	Driver          string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// KafkaConfig configures the audit stream. No brokers disables it.
type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
}

// Log selects slog level and output format ("json" or "text").
type Log struct {
	Level  string
	Format string
}

// Config is the full process configuration.
type Config struct {
	Server          Server
	Session         Session
	Redis           RedisConfig
	Postgres        PostgresConfig
	Kafka           KafkaConfig
	Log             Log
	AuditBufferSize int

	// AuditMemoryCapacity bounds the in-process ring of recent audit events.
	AuditMemoryCapacity int
}

// FromEnv builds a Config from environment variables so main stays lean.
// Unset values fall back to development defaults.
func FromEnv() Config {
	return Config{
		Server: Server{
			Addr:            envString("TODOLISTS_ADDR", ":8080"),
			RequestTimeout:  envDuration("REQUEST_TIMEOUT", 30*time.Second),
			ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Session: Session{
			Backend:       strings.ToLower(envString("SESSION_BACKEND", SessionBackendMemory)),
			Secret:        envString("SESSION_SECRET", devSessionSecret),
			TTL:           envDuration("SESSION_TTL", 24*time.Hour),
			SecureCookie:  os.Getenv("SESSION_SECURE_COOKIE") == "true",
			PurgeInterval: envDuration("SESSION_PURGE_INTERVAL", 10*time.Minute),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Postgres: PostgresConfig{
			URL:             os.Getenv("DATABASE_URL"),
			Driver:          strings.ToLower(envString("DATABASE_DRIVER", PostgresDriverPQ)),
			MaxOpenConns:    envInt("DATABASE_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    envInt("DATABASE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: envDuration("DATABASE_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Kafka: KafkaConfig{
			Brokers:    envList("KAFKA_BROKERS"),
			AuditTopic: envString("AUDIT_TOPIC", "todolists.audit"),
		},
		Log: Log{
			Level:  strings.ToLower(envString("LOG_LEVEL", "info")),
			Format: strings.ToLower(envString("LOG_FORMAT", "json")),
		},
		AuditBufferSize:     envInt("AUDIT_BUFFER_SIZE", 1024),
		AuditMemoryCapacity: envInt("AUDIT_MEMORY_CAPACITY", 1000),
	}
}

// Validate rejects combinations that cannot start.
func (c Config) Validate() error {
	var errs []error
	switch c.Session.Backend {
	case SessionBackendMemory:
	case SessionBackendRedis:
		if c.Redis.URL == "" {
			errs = append(errs, errors.New("SESSION_BACKEND=redis requires REDIS_URL"))
		}
	case SessionBackendPostgres:
		if c.Postgres.URL == "" {
			errs = append(errs, errors.New("SESSION_BACKEND=postgres requires DATABASE_URL"))
		}
		switch c.Postgres.Driver {
		case PostgresDriverPQ, PostgresDriverPgx:
		default:
			errs = append(errs, fmt.Errorf("unknown DATABASE_DRIVER %q", c.Postgres.Driver))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown SESSION_BACKEND %q", c.Session.Backend))
	}
	if c.Session.Secret == "" {
		errs = append(errs, errors.New("SESSION_SECRET must not be empty"))
	}
	if c.Session.TTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if c.Session.PurgeInterval <= 0 {
		errs = append(errs, errors.New("SESSION_PURGE_INTERVAL must be positive"))
	}
	if c.AuditBufferSize <= 0 {
		errs = append(errs, errors.New("AUDIT_BUFFER_SIZE must be positive"))
	}
	if c.AuditMemoryCapacity <= 0 {
		errs = append(errs, errors.New("AUDIT_MEMORY_CAPACITY must be positive"))
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("unknown LOG_FORMAT %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// UsesDevSecret reports whether the session secret was left at its default.
func (c Config) UsesDevSecret() bool {
	return c.Session.Secret == devSessionSecret
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func envList(key string) []string {
	return platformstrings.SplitList(os.Getenv(key), ",")
}
