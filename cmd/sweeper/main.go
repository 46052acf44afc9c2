package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/squadplay/squad-engine/internal/adapter"
	"github.com/squadplay/squad-engine/internal/config"
	"github.com/squadplay/squad-engine/internal/court"
	"github.com/squadplay/squad-engine/internal/domain"
	"github.com/squadplay/squad-engine/internal/judge"
	"github.com/squadplay/squad-engine/internal/ledger"
	"github.com/squadplay/squad-engine/internal/logger"
	"github.com/squadplay/squad-engine/internal/messaging"
	"github.com/squadplay/squad-engine/internal/power"
	"github.com/squadplay/squad-engine/internal/providers/jetstream"
	"github.com/squadplay/squad-engine/internal/store"
	"github.com/squadplay/squad-engine/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Expiry Sweeper")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Route reads through the replica when one is configured
	if cfg.Database.ReadHost != "" {
		if err := store.RegisterReadReplica(db, cfg.Database.ReadDSN()); err != nil {
			logger.FatalCtx(ctx, "Failed to register read replica", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Registered read replica", zap.String("read_host", cfg.Database.ReadHost))
	}

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize clock adapter
	clock := adapter.NewClock()

	// Connect to NATS JetStream so expirations emit events like any other
	// challenge transition
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), adapter.NewJSON())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer publisher.Close()
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, events will not be published")
	}

	// Initialize the court. Expiry never consults the squad roster, so no
	// membership client is wired here.
	grantCosts := make(map[domain.PowerType]int64, len(cfg.Engine.GrantCosts))
	for powerType, cost := range cfg.Engine.GrantCosts {
		grantCosts[domain.PowerType(powerType)] = cost
	}

	starLedger := ledger.NewLedger(dataStore, clock, publisher)
	powers := power.NewRegistry(dataStore, clock, publisher, starLedger, power.Config{
		TargetLockTTL: cfg.Engine.TargetLockTTL,
		GrantCosts:    grantCosts,
	})
	judges := judge.NewJudge(dataStore, clock, publisher)
	challengeCourt := court.NewCourt(dataStore, clock, publisher, nil, powers, judges, court.Config{
		VotingWindow: cfg.Engine.VotingWindow,
		JudgePenalty: cfg.Engine.JudgePenalty,
	})

	// Initialize expiry sweeper
	expirySweeperConfig := &sweeper.ExpirySweeperConfig{
		Interval:        cfg.ExpirySweeper.Interval,
		BatchSize:       cfg.ExpirySweeper.BatchSize,
		WorkerPoolSize:  cfg.ExpirySweeper.Worker.WorkerPoolSize,
		WorkerQueueSize: cfg.ExpirySweeper.Worker.WorkerQueueSize,
	}
	expirySweeper := sweeper.NewExpirySweeper(expirySweeperConfig, dataStore, challengeCourt, clock)

	logger.InfoCtx(ctx, "Initialized expiry sweeper",
		zap.Duration("interval", cfg.ExpirySweeper.Interval),
		zap.Int("batch_size", cfg.ExpirySweeper.BatchSize),
		zap.Int("worker_pool_size", cfg.ExpirySweeper.Worker.WorkerPoolSize),
	)

	// Start the sweeper in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := expirySweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the sweeper
	cancel()

	// Give the sweeper time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	if err := expirySweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
