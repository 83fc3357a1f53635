// Command server runs the fund ledger HTTP service: fund registry,
// compliance gate, and the per-fund trading pools.
//
// All wiring happens here; business logic lives in the internal service
// packages. Persistence and transport backends are chosen by configuration:
// without external infrastructure everything runs on in-memory stores.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"fundcore/internal/amm"
	ammmetrics "fundcore/internal/amm/metrics"
	ammservice "fundcore/internal/amm/service"
	ammstore "fundcore/internal/amm/store"
	"fundcore/internal/compliance"
	compliancemetrics "fundcore/internal/compliance/metrics"
	complianceservice "fundcore/internal/compliance/service"
	compliancestore "fundcore/internal/compliance/store"
	"fundcore/internal/events"
	"fundcore/internal/fund"
	fundmetrics "fundcore/internal/fund/metrics"
	fundservice "fundcore/internal/fund/service"
	fundstore "fundcore/internal/fund/store"
	"fundcore/internal/platform/config"
	"fundcore/internal/platform/httpserver"
	"fundcore/internal/platform/logger"
	"fundcore/internal/platform/metrics"
	"fundcore/internal/platform/postgres"
	platformredis "fundcore/internal/platform/redis"
	httptransport "fundcore/internal/transport/http"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Persistence backends. Empty URLs fall back to memory stores.
	db, err := postgres.Open(ctx, cfg.PostgresURL)
	if err != nil {
		log.Error("failed to open postgres", "error", err)
		return err
	}
	if db != nil {
		defer db.Close()
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Notification pipeline: services write to an inbox, the worker drains it
	// into kafka when brokers are configured, a log-backed store otherwise.
	var sink events.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafka, err := events.NewKafkaPublisher(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("failed to connect to kafka", "error", err)
			return err
		}
		defer kafka.Close()
		sink = kafka
	} else if db != nil {
		sink = events.NewStorePublisher(events.NewPostgresStore(db))
	} else {
		sink = events.NewStorePublisher(events.NewInMemoryStore())
	}
	sink = events.NewLoggingPublisher(sink, log)

	inbox := make(chan events.Event, 1024)
	dispatcher := events.NewDispatcher(inbox, log)
	worker := events.NewWorker(sink, inbox, log)

	// Module stores.
	var (
		fundStore fundservice.Store = fundstore.NewInMemory()
		ammStore  ammservice.Store  = ammstore.NewInMemory()
	)
	if db != nil {
		fundStore = fundstore.NewPostgres(db)
		ammStore = ammstore.NewPostgres(db)
	}
	var complianceStore complianceservice.Store = compliancestore.NewInMemory()
	if redisClient != nil {
		complianceStore = compliancestore.NewRedis(redisClient)
	}

	// Services and the HTTP surface.
	m := metrics.New()
	fundSvc := fund.NewService(fundStore,
		fundservice.WithLogger(log),
		fundservice.WithPublisher(dispatcher),
		fundservice.WithMetrics(fundmetrics.New()),
	)
	complianceSvc := compliance.NewService(complianceStore,
		compliance.NewJWTVerifier(cfg.ProofSigningKey),
		complianceservice.WithLogger(log),
		complianceservice.WithPublisher(dispatcher),
		complianceservice.WithMetrics(compliancemetrics.New()),
	)
	ammSvc := amm.NewService(ammStore, fundSvc, complianceSvc,
		ammservice.WithLogger(log),
		ammservice.WithPublisher(dispatcher),
		ammservice.WithMetrics(ammmetrics.New()),
	)

	router := httptransport.NewRouter(log, m,
		fund.NewHandler(fundSvc, log),
		compliance.NewHandler(complianceSvc, log),
		amm.NewHandler(ammSvc, log),
	)
	srv := httpserver.New(cfg.Addr, router)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("starting server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		if err := worker.Run(groupCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server exited with error", "error", err)
		return err
	}
	log.Info("server stopped")
	return nil
}
