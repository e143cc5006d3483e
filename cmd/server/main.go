package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"summit-connect/internal/admin/session"
	attendeehandler "summit-connect/internal/attendee/handler"
	attendeeservice "summit-connect/internal/attendee/service"
	"summit-connect/internal/attendee/store"
	"summit-connect/internal/notify"
	"summit-connect/internal/platform/config"
	"summit-connect/internal/platform/httpserver"
	"summit-connect/internal/platform/logger"
	"summit-connect/internal/platform/metrics"
	"summit-connect/internal/platform/middleware"
	platformredis "summit-connect/internal/platform/redis"
	"summit-connect/internal/registration"
	"summit-connect/internal/suggest"
)

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal service packages.
func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString("summit-connect: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.FromEnv()
	log := logger.New()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	attendeeStore, storeHealth, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	var sessions *session.Service
	var validator middleware.SessionValidator
	if cfg.AdminPasscodeHash != "" {
		sessions = session.New(cfg.AdminPasscodeHash, cfg.JWTSigningKey, cfg.SessionTTL)
		validator = sessions
	} else {
		log.Warn("ADMIN_PASSCODE_HASH not set; admin endpoints are unprotected")
	}

	var suggestions suggest.Service
	if cfg.GeminiAPIKey != "" {
		gemini, err := suggest.NewGemini(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return err
		}
		defer gemini.Close()
		suggestions = gemini
	} else {
		log.Warn("GEMINI_API_KEY not set; registrants receive the fallback suggestion")
	}

	var notifier notify.Service
	if twilio := notify.NewTwilio(cfg.Twilio); twilio != nil {
		notifier = twilio
	} else {
		log.Warn("twilio not configured; confirmation sms disabled")
	}

	attendees := attendeeservice.New(attendeeStore, log, m)
	workflow := registration.New(attendees, suggestions, notifier, log, m)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))

	attendeehandler.New(attendees, log, validator).Register(r)
	registration.NewHandler(workflow, log).Register(r)
	suggest.NewHandler(suggestions, log).Register(r)
	notify.NewHandler(notifier, log).Register(r)
	if sessions != nil {
		session.NewHandler(sessions, log).Register(r)
	}

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if storeHealth != nil {
			if err := storeHealth(req.Context()); err != nil {
				log.Warn("health check failed", "error", err)
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte("store unreachable"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := httpserver.New(cfg.Addr, r)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting summit-connect", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// buildStore picks the attendee store backend from configuration: Redis when
// REDIS_URL is set, Postgres when DATABASE_URL is set, in-memory otherwise.
// The health func, when non-nil, pings the backend for /healthz.
func buildStore(ctx context.Context, cfg config.Server) (store.Store, func(context.Context) error, func(), error) {
	noop := func() {}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		return nil, nil, noop, err
	}
	if redisClient != nil {
		return store.NewRedis(redisClient), redisClient.Health, func() { redisClient.Close() }, nil
	}

	if cfg.PostgresURL != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, nil, noop, err
		}
		pg := store.NewPostgres(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, noop, err
		}
		return pg, pool.Ping, pool.Close, nil
	}

	return store.NewInMemory(), nil, noop, nil
}
