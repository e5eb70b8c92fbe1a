package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/Hagni1/jurney/internal/config"
	v1alpha1 "github.com/Hagni1/jurney/internal/handlers/journey/v1alpha1"
	"github.com/Hagni1/jurney/internal/logging"
	"github.com/Hagni1/jurney/internal/metrics"
	"github.com/Hagni1/jurney/internal/orchestrators/character"
	"github.com/Hagni1/jurney/internal/orchestrators/combat"
	"github.com/Hagni1/jurney/internal/orchestrators/training"
	"github.com/Hagni1/jurney/internal/pkg/clock"
	"github.com/Hagni1/jurney/internal/pkg/idgen"
	"github.com/Hagni1/jurney/internal/postgres"
	"github.com/Hagni1/jurney/internal/redis"
	characterrepo "github.com/Hagni1/jurney/internal/repositories/character"
	combatrepo "github.com/Hagni1/jurney/internal/repositories/combat"
	"github.com/Hagni1/jurney/internal/repositories/completion"
	"github.com/Hagni1/jurney/internal/repositories/lock"
	"github.com/Hagni1/jurney/internal/repositories/stage"
	trainingrepo "github.com/Hagni1/jurney/internal/repositories/training"
	"github.com/Hagni1/jurney/internal/telemetry"
)

const serviceName = "journey"

var grpcPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the journey gRPC server together with the Prometheus metrics endpoint.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides server.port)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = grpcPort
	}

	logger, err := logging.Setup(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	otelSettings, err := telemetry.SettingsFromEnv()
	if err != nil {
		return fmt.Errorf("failed to read telemetry settings: %w", err)
	}
	shutdownTracing, err := telemetry.Setup(ctx, serviceName, otelSettings)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Warn("tracer shutdown failed", "error", err)
		}
	}()

	metricsManager := metrics.NewManager()

	handler, cleanup, err := buildHandler(ctx, cfg, metricsManager)
	if err != nil {
		return err
	}
	defer cleanup()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	interceptorLogger := logging.InterceptorLogger(logger)
	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		slog.ErrorContext(ctx, "panic in handler", "panic", p)
		return status.Error(codes.Internal, "internal error")
	})

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	v1alpha1.RegisterJourneyServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("gRPC server starting", "port", cfg.Server.Port)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	var metricsServer *http.Server
	if cfg.Server.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metricsManager.Handler())
		metricsServer = &http.Server{
			Addr:              cfg.Server.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			slog.Info("metrics server starting", "addr", cfg.Server.MetricsAddr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if metricsServer != nil {
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				slog.Warn("metrics server shutdown failed", "error", err)
			}
		}

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}
		return nil
	})

	return g.Wait()
}

// buildHandler connects the stores and wires the orchestrators behind the gRPC handler
func buildHandler(ctx context.Context, cfg *config.Config, m *metrics.Manager) (*v1alpha1.Handler, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	fail := func(err error) (*v1alpha1.Handler, func(), error) {
		cleanup()
		return nil, nil, err
	}

	redisClient, err := redis.NewClient(cfg.Redis.Addr, &redis.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		return fail(err)
	}
	closers = append(closers, func() { _ = redisClient.Close() })

	if err := redis.Ping(ctx, redisClient); err != nil {
		return fail(err)
	}

	catalog, err := loadCatalog(cfg.Game.CatalogPath)
	if err != nil {
		return fail(err)
	}

	archive, closeArchive, err := openArchive(ctx, cfg.Postgres)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, closeArchive)

	clk := clock.New()

	characters, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: redisClient, Clock: clk})
	if err != nil {
		return fail(err)
	}
	completions, err := completion.NewRedis(&completion.RedisConfig{Client: redisClient})
	if err != nil {
		return fail(err)
	}
	sessions, err := trainingrepo.NewRedis(&trainingrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return fail(err)
	}
	locker, err := lock.NewRedis(&lock.RedisConfig{Client: redisClient})
	if err != nil {
		return fail(err)
	}
	stages, err := stage.NewInMemory(&stage.Config{Catalog: catalog})
	if err != nil {
		return fail(err)
	}

	characterService, err := character.NewOrchestrator(&character.Config{
		CharacterRepo: characters,
		StageRepo:     stages,
		IDGenerator:   idgen.NewUUID("char"),
		Clock:         clk,
		Metrics:       m,
		RankingLimit:  cfg.Game.RankingLimit,
	})
	if err != nil {
		return fail(fmt.Errorf("failed to create character orchestrator: %w", err))
	}

	combatService, err := combat.NewOrchestrator(&combat.Config{
		CharacterRepo:  characters,
		StageRepo:      stages,
		CompletionRepo: completions,
		CombatRepo:     archive,
		Locker:         locker,
		IDGenerator:    idgen.NewUUID("combat"),
		Clock:          clk,
		Metrics:        m,
		LockTTL:        cfg.Game.LockTTL,
	})
	if err != nil {
		return fail(fmt.Errorf("failed to create combat orchestrator: %w", err))
	}

	trainingService, err := training.NewOrchestrator(&training.Config{
		CharacterRepo: characters,
		TrainingRepo:  sessions,
		Locker:        locker,
		Clock:         clk,
		Metrics:       m,
		LockTTL:       cfg.Game.LockTTL,
	})
	if err != nil {
		return fail(fmt.Errorf("failed to create training orchestrator: %w", err))
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CharacterService: characterService,
		CombatService:    combatService,
		TrainingService:  trainingService,
	})
	if err != nil {
		return fail(fmt.Errorf("failed to create handler: %w", err))
	}

	return handler, cleanup, nil
}

func loadCatalog(path string) (*stage.Catalog, error) {
	catalog, err := stage.LoadCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load stage catalog: %w", err)
	}
	slog.Info("loaded stage catalog", "path", path, "stages", len(catalog.Stages))
	return catalog, nil
}

// openArchive returns the Postgres combat archive, or an in-memory one when no DSN is set
func openArchive(ctx context.Context, cfg config.Postgres) (combatrepo.Repository, func(), error) {
	if cfg.DSN == "" {
		slog.Warn("postgres.dsn not set, combat archive is kept in memory")
		return combatrepo.NewInMemory(), func() {}, nil
	}

	if cfg.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.DSN); err != nil {
			return nil, nil, err
		}
	}

	pool, err := postgres.Open(ctx, cfg.DSN, &postgres.Options{MaxConns: cfg.MaxConns})
	if err != nil {
		return nil, nil, err
	}

	repo, err := combatrepo.NewPostgres(&combatrepo.PostgresConfig{DB: pool})
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	return repo, pool.Close, nil
}
