package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/attendrop/minter/internal/adapter"
	"github.com/attendrop/minter/internal/config"
	"github.com/attendrop/minter/internal/logger"
	"github.com/attendrop/minter/internal/providers/ethereum"
	"github.com/attendrop/minter/internal/reconciler"
	"github.com/attendrop/minter/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadReconcilerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "minter-reconciler",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting transaction reconciler")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Connect to the ledger. The reconciler only reads receipts, so no signing
	// keys are required.
	dialer := adapter.NewEthClientDialer()
	ethClient, err := dialer.Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Ethereum RPC", zap.Error(err), zap.String("rpc_url", cfg.Ethereum.RPCURL))
	}

	wallets, err := ethereum.NewWalletSet(nil)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create wallet set", zap.Error(err))
	}

	clock := adapter.NewClock()
	ledger, err := ethereum.NewLedger(big.NewInt(cfg.Ethereum.ChainID), cfg.Ethereum.ContractAddress, ethClient, ethClient, wallets, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create ledger", zap.Error(err))
	}
	defer ledger.Close()

	rec := reconciler.New(dataStore, ledger, clock, reconciler.Config{
		PollInterval: cfg.PollInterval,
		Workers:      cfg.Worker.PoolSize,
		QueueSize:    cfg.Worker.QueueSize,
	})

	// Cancel the run context on interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	if err := rec.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.FatalCtx(ctx, "Reconciler stopped unexpectedly", zap.Error(err))
	}

	logger.Info("Reconciler stopped")
}
