// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	g "github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/adapters/grpc"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/adapters/httpapi"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/adapters/kafka"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/adapters/redis"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/adapters/repository"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/application"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/config"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/logger"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/ports"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/scheduler"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/telemetry"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/pkg/auth"
)

func main() {
	cfg := config.MustLoad()

	zl, err := logger.New(cfg.App.LogLevel, cfg.App.Env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.InitTracing(cfg.App.Name, cfg.Tracing.Endpoint, cfg.Tracing.SampleRate)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())
	zl.Info("store connected", zap.String("driver", cfg.Store.Driver))

	blacklist := redis.NewBlacklist(cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
	if err := blacklist.Ping(ctx); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer blacklist.Close()

	var publisher ports.EventPublisherPort
	if brokers := cfg.Kafka.BrokerList(); len(brokers) > 0 {
		producer, err := kafka.InitProducer(brokers, cfg.Kafka.ClientID, zl)
		if err != nil {
			return err
		}
		p := kafka.NewPublisher(producer, cfg.Kafka.Topic, zl)
		defer p.Close()
		publisher = p
	} else {
		zl.Warn("KAFKA_BROKERS not set, request events are not published")
	}

	tokens := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	validation := application.NewValidationService(store, store, store)
	services := httpapi.Services{
		Sellers:  application.NewSellerService(store),
		Users:    application.NewUserService(store),
		Products: application.NewProductService(store, store),
		Search:   application.NewSearchService(store, store, cfg.TimeLocation(), zl),
		Requests: application.NewRequestService(validation, store, store, publisher, zl),
		Auth:     application.NewAuthService(store, store, tokens, blacklist),
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      httpapi.NewRouter(cfg.App.Name, services, zl),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	healthServer := g.NewServer(zl,
		g.Check{Name: cfg.Store.Driver, Pinger: store},
		g.Check{Name: "redis", Pinger: blacklist},
	)
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPC.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	go healthServer.Watch(ctx, cfg.GRPC.HealthInterval)

	sched := scheduler.New(zl)
	if cfg.Scheduler.Enabled {
		canceller := application.NewCanceller(store, publisher, application.CancellerConfig{
			StaleAfter: cfg.Scheduler.StaleAfter(),
			Page:       cfg.Scheduler.Page,
			Size:       cfg.Scheduler.Size,
		}, zl)
		if err := sched.Add(ctx, "cancel-stale-requests", cfg.Scheduler.Cron, canceller); err != nil {
			return err
		}
		sched.Start()
	}

	errCh := make(chan error, 2)
	go func() {
		zl.Info("HTTP server listening", zap.Int("port", cfg.HTTP.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()
	go func() {
		zl.Info("gRPC health server listening", zap.Int("port", cfg.GRPC.Port))
		if err := healthServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		zl.Info("shutting down")
	case runErr = <-errCh:
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zl.Error("http server forced to shutdown", zap.Error(err))
	}
	healthServer.Shutdown()
	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		zl.Warn("scheduled jobs still running at shutdown")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		zl.Error("failed to flush traces", zap.Error(err))
	}
	return runErr
}

// openStore connects the configured backend and prepares its schema.
func openStore(ctx context.Context, cfg *config.Config) (ports.StorePort, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Store.Timeout)
	defer cancel()

	switch cfg.Store.Driver {
	case config.StorePostgres:
		store, err := repository.OpenPostgres(ctx, cfg.Postgres.DSN())
		if err != nil {
			return nil, err
		}
		if err := store.InitSchema(ctx); err != nil {
			store.Close(ctx)
			return nil, err
		}
		return store, nil
	default:
		store, err := repository.ConnectMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Store.Timeout)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureIndexes(ctx); err != nil {
			store.Close(ctx)
			return nil, err
		}
		return store, nil
	}
}
