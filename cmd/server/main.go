package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"todolists/internal/audit"
	"todolists/internal/platform/config"
	"todolists/internal/platform/httpserver"
	"todolists/internal/platform/kafka"
	"todolists/internal/platform/logger"
	"todolists/internal/platform/metrics"
	"todolists/internal/platform/middleware"
	"todolists/internal/platform/postgres"
	"todolists/internal/platform/redis"
	sessionmw "todolists/internal/session/middleware"
	"todolists/internal/session/store"
	todohandler "todolists/internal/todo/handler"
	todometrics "todolists/internal/todo/metrics"
	todoservice "todolists/internal/todo/service"
	"todolists/pkg/platform/circuit"
)

const (
	auditTopicPartitions  = 3
	auditTopicReplication = 1
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.UsesDevSecret() {
		log.Warn("SESSION_SECRET not set, using the development secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	platformMetrics := metrics.New(registry)

	g, gctx := errgroup.WithContext(ctx)

	sessions, health, err := buildSessionStore(ctx, cfg, log, platformMetrics, g, gctx)
	if err != nil {
		return err
	}

	auditStore, closeAudit, err := buildAuditStore(ctx, cfg, log, platformMetrics)
	if err != nil {
		return err
	}
	defer closeAudit()

	publisher := audit.NewPublisher(cfg.AuditBufferSize, log, platformMetrics)
	worker := audit.NewWorker(auditStore, publisher.Inbox(), log)
	g.Go(func() error { return ignoreCanceled(worker.Run(gctx)) })

	service := todoservice.New(
		todoservice.WithLogger(log),
		todoservice.WithAuditPublisher(publisher),
		todoservice.WithMetrics(todometrics.New(registry)),
	)
	handler, err := todohandler.New(service, log)
	if err != nil {
		return err
	}
	sessionManager := sessionmw.New(sessions, sessionmw.Config{
		Secret:       cfg.Session.Secret,
		TTL:          cfg.Session.TTL,
		SecureCookie: cfg.Session.SecureCookie,
	}, log, platformMetrics)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.RequestTime)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	r.Use(middleware.Latency(platformMetrics))

	r.Get("/healthz", todohandler.Health(health, log))
	r.Handle("/metrics", metrics.Handler(registry))
	r.Group(func(r chi.Router) {
		r.Use(sessionManager.Middleware)
		handler.Register(r)
	})

	srv := httpserver.New(cfg.Server.Addr, r)
	g.Go(func() error {
		log.Info("starting todolists", "addr", cfg.Server.Addr, "session_backend", cfg.Session.Backend)
		return httpserver.Run(gctx, srv, cfg.Server.ShutdownTimeout)
	})

	return g.Wait()
}

// buildSessionStore selects the configured backend. Backends that cannot
// expire entries themselves get a janitor in g.
func buildSessionStore(
	ctx context.Context,
	cfg config.Config,
	log *slog.Logger,
	m *metrics.Metrics,
	g *errgroup.Group,
	gctx context.Context,
) (store.Store, todohandler.HealthChecker, error) {
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		g.Go(func() error {
			<-gctx.Done()
			return client.Close()
		})
		s := store.NewRedis(client.Client, store.WithMetrics(m))
		return s, s, nil

	case config.SessionBackendPostgres:
		db, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		s := store.NewPostgres(db, store.WithMetrics(m))
		if err := s.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		janitor := store.NewJanitor(s, cfg.Session.PurgeInterval, log)
		g.Go(func() error {
			err := ignoreCanceled(janitor.Run(gctx))
			_ = db.Close()
			return err
		})
		return s, s, nil

	default:
		s := store.NewInMemory(store.WithMetrics(m))
		janitor := store.NewJanitor(s, cfg.Session.PurgeInterval, log)
		g.Go(func() error { return ignoreCanceled(janitor.Run(gctx)) })
		return s, nil, nil
	}
}

// buildAuditStore keeps the newest events in a bounded ring and also streams
// them to Kafka when brokers are configured. A circuit breaker stops the
// worker from blocking on an unreachable broker.
func buildAuditStore(ctx context.Context, cfg config.Config, log *slog.Logger, m *metrics.Metrics) (audit.Store, func(), error) {
	memory := audit.NewInMemoryStore(cfg.AuditMemoryCapacity)
	client, err := kafka.New(cfg.Kafka)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		return memory, func() {}, nil
	}
	if err := kafka.EnsureTopic(ctx, client, cfg.Kafka.AuditTopic, auditTopicPartitions, auditTopicReplication); err != nil {
		client.Close()
		return nil, nil, err
	}
	log.Info("streaming audit events", "topic", cfg.Kafka.AuditTopic, "brokers", cfg.Kafka.Brokers)
	kafkaSink := audit.NewGuardedStore(
		audit.NewKafkaSink(client, cfg.Kafka.AuditTopic),
		circuit.New("kafka-audit"),
		log,
		m,
	)
	return audit.MultiStore{memory, kafkaSink}, client.Close, nil
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
