package main

import (
	"context"
	"flag"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/attendrop/minter/internal/adapter"
	"github.com/attendrop/minter/internal/api/middleware"
	"github.com/attendrop/minter/internal/api/rest"
	"github.com/attendrop/minter/internal/api/server"
	"github.com/attendrop/minter/internal/claims"
	"github.com/attendrop/minter/internal/config"
	"github.com/attendrop/minter/internal/logger"
	"github.com/attendrop/minter/internal/minter"
	"github.com/attendrop/minter/internal/providers/ethereum"
	"github.com/attendrop/minter/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "minter-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting minter API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Connect to the ledger. ENS resolution lives on mainnet; reuse the chain
	// client when no separate mainnet endpoint is configured.
	dialer := adapter.NewEthClientDialer()
	ethClient, err := dialer.Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Ethereum RPC", zap.Error(err), zap.String("rpc_url", cfg.Ethereum.RPCURL))
	}
	ensClient := ethClient
	if cfg.Ethereum.MainnetRPCURL != "" && cfg.Ethereum.MainnetRPCURL != cfg.Ethereum.RPCURL {
		ensClient, err = dialer.Dial(ctx, cfg.Ethereum.MainnetRPCURL)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to mainnet RPC", zap.Error(err), zap.String("rpc_url", cfg.Ethereum.MainnetRPCURL))
		}
	}

	// Load signing credentials
	adminKey, err := ethcrypto.HexToECDSA(strings.TrimPrefix(cfg.Signers.AdminKey, "0x"))
	if err != nil {
		logger.FatalCtx(ctx, "Failed to parse admin signing key", zap.Error(err))
	}
	adminAddress := ethcrypto.PubkeyToAddress(adminKey.PublicKey).Hex()

	wallets, err := ethereum.NewWalletSet(append([]string{cfg.Signers.AdminKey}, cfg.Signers.HelperKeys...))
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load signing keys", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Loaded signing credentials",
		zap.String("admin", adminAddress),
		zap.Int("signers", len(wallets.Addresses())),
	)

	clock := adapter.NewClock()
	ledger, err := ethereum.NewLedger(big.NewInt(cfg.Ethereum.ChainID), cfg.Ethereum.ContractAddress, ethClient, ensClient, wallets, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create ledger", zap.Error(err))
	}
	defer ledger.Close()

	// Wire the minting core
	registry := minter.NewRegistry(dataStore, ledger)
	selector := minter.NewSelector(registry, adminAddress)
	gasPolicy := minter.NewGasPolicy(dataStore)
	orchestrator := minter.NewOrchestrator(dataStore, ledger, selector, gasPolicy)

	// Wire the claim services
	verifier := claims.NewVerifier(dataStore)
	couponService := claims.NewCouponService(
		dataStore,
		ledger,
		orchestrator,
		clock,
		cfg.Claims.SecretKey,
		cfg.Claims.NotFoundDelay,
		cfg.Claims.RejectDelay,
	)

	handler := rest.NewHandler(dataStore, ledger, verifier, couponService, orchestrator, registry)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, handler)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
