package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/states-directory/internal/config"
	"github.com/iliyamo/states-directory/internal/database"
	"github.com/iliyamo/states-directory/internal/greeting"
	"github.com/iliyamo/states-directory/internal/handler"
	"github.com/iliyamo/states-directory/internal/logger"
	"github.com/iliyamo/states-directory/internal/middleware"
	"github.com/iliyamo/states-directory/internal/queue"
	"github.com/iliyamo/states-directory/internal/repository"
	"github.com/iliyamo/states-directory/internal/router"
	"github.com/iliyamo/states-directory/internal/service"
)

const helloCounterKey = "states-directory:hello:counter"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	db, dialect, err := database.Open(cfg.DBDriver, cfg.DBDSN, database.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ready := map[string]handler.Pinger{"database": db}

	var counter greeting.Counter = &greeting.AtomicCounter{}
	if cfg.CounterBackend == "redis" {
		if rdb := config.NewRedisClient(cfg.Redis); rdb != nil {
			defer rdb.Close()
			rc, err := greeting.NewRedisCounter(ctx, rdb, helloCounterKey)
			if err != nil {
				log.Fatal().Err(err).Msg("failed to initialise redis counter")
			}
			counter = rc
			ready["redis"] = handler.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
		} else {
			log.Warn().Str("addr", cfg.Redis.Addr).Msg("redis unreachable; using in-process counter")
		}
	}

	greetings := newGreetingHandler(cfg, counter)
	if cfg.GreetingEventsEnabled {
		consumer := &queue.Consumer{URL: cfg.AMQPURL}
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("greeting consumer stopped")
			}
		}()
	}

	reg := prometheus.NewRegistry()
	metrics := middleware.NewMetrics()
	reg.MustRegister(metrics, collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	e := router.New(router.Deps{
		States:    &handler.StateHandler{States: repository.NewStateRepo(db, dialect)},
		Greetings: greetings,
		Health:    &handler.HealthHandler{Deps: ready},
		Metrics:   metrics,
		Gatherer:  reg,

		CORSAllowOrigins: cfg.CORSAllowOrigins,
	})

	addr := ":" + cfg.Port
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Str("driver", dialect.Name).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
}

// newGreetingHandler leaves Publisher nil when greeting events are disabled
// so hello requests skip publishing entirely.
func newGreetingHandler(cfg config.Config, counter greeting.Counter) *handler.GreetingHandler {
	h := &handler.GreetingHandler{Counter: counter}
	if cfg.GreetingEventsEnabled {
		h.Publisher = &service.AMQPPublisher{URL: cfg.AMQPURL}
	}
	return h
}
