package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"

	grpcctx "github.com/dtroode/auth-service/internal/api/grpc/context"
	"github.com/dtroode/auth-service/internal/api/grpc/router"
	grpcServer "github.com/dtroode/auth-service/internal/api/grpc/server"
	"github.com/dtroode/auth-service/internal/config"
	"github.com/dtroode/auth-service/internal/logger"
	"github.com/dtroode/auth-service/internal/metrics"
	"github.com/dtroode/auth-service/internal/model"
	"github.com/dtroode/auth-service/internal/oauth"
	"github.com/dtroode/auth-service/internal/password"
	"github.com/dtroode/auth-service/internal/repository/memory"
	"github.com/dtroode/auth-service/internal/repository/postgres"
	redisrepo "github.com/dtroode/auth-service/internal/repository/redis"
	"github.com/dtroode/auth-service/internal/server"
	"github.com/dtroode/auth-service/internal/service"
	"github.com/dtroode/auth-service/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

type stores struct {
	accounts model.AccountStore
	resets   model.ResetTokenStore
	cache    model.ResetCache
	tx       model.Transactor
	closers  []func() error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer func() {
		for _, closeFn := range st.closers {
			if err := closeFn(); err != nil {
				logger.Error("failed to close storage", "error", err)
			}
		}
	}()

	jwt, err := token.NewJWT(token.Config{
		AccessSecret:  cfg.JWT.AccessSecret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		AccessTTL:     cfg.JWT.AccessTTL,
		RefreshTTL:    cfg.JWT.RefreshTTL,
		Issuer:        cfg.JWT.Issuer,
	})
	if err != nil {
		logger.Fatal("failed to initialize token manager", "error", err)
	}

	argonCfg := password.DefaultConfig()
	argonCfg.Time = cfg.KDF.Time
	argonCfg.MemoryKiB = cfg.KDF.MemKiB
	argonCfg.Parallelism = cfg.KDF.Parallelism
	hasher, err := password.NewArgon2(argonCfg)
	if err != nil {
		logger.Fatal("failed to initialize password hasher", "error", err)
	}

	meterProvider, err := metrics.NewProvider()
	if err != nil {
		logger.Fatal("failed to initialize meter provider", "error", err)
	}
	otel.SetMeterProvider(meterProvider.MeterProvider())

	m, err := metrics.New(otel.Meter(metrics.ScopeName))
	if err != nil {
		logger.Fatal("failed to initialize metrics", "error", err)
	}

	var provider model.IdentityProvider
	if cfg.OAuth.Enabled() {
		p, err := oauth.New(ctx, oauth.Config{
			Issuer:       cfg.OAuth.Issuer,
			ClientID:     cfg.OAuth.ClientID,
			ClientSecret: cfg.OAuth.ClientSecret,
			RedirectURL:  cfg.OAuth.RedirectURL,
		})
		if err != nil {
			logger.Fatal("failed to initialize external identity provider", "error", err)
		}
		provider = p
		logger.Info("external login enabled", "issuer", cfg.OAuth.Issuer)
	}

	tokenService := service.NewTokenService(jwt, st.accounts, jwt.RefreshTTL(), logger)
	authService := service.NewAuth(st.accounts, hasher, tokenService, provider, m, logger)
	resetService := service.NewPasswordReset(st.accounts, st.resets, st.cache, hasher, st.tx, service.ResetConfig{
		TokenTTL:      cfg.Reset.TokenTTL,
		AttemptWindow: cfg.Reset.AttemptWindow,
		MaxAttempts:   cfg.Reset.MaxAttempts,
	}, m, logger)

	r := router.New(authService, resetService, tokenService, grpcctx.NewManager(), cfg.InternalAPISecret, logger)
	grpcServer := grpcServer.NewGRPCServer(r.Register(), fmt.Sprintf(":%s", cfg.GRPC.Port))

	var sl model.SecurityLayer
	if cfg.GRPC.EnableHTTPS {
		tlsListener, err := server.NewTLSListener(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
		if err != nil {
			logger.Fatal("failed to initialize TLS", "error", err)
		}
		sl = tlsListener
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "tls", cfg.GRPC.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(grpcServer)

	var metricsServer *http.Server
	if cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", meterProvider.Handler())
		metricsServer = &http.Server{Addr: cfg.Metrics.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("Starting metrics server on", "address", cfg.Metrics.Addr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("failed to start metrics server", "error", err)
				stop()
			}
		}()
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.GRPC.ShutdownTimeout)
	defer shutdownCancel()

	if err := grpcServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", grpcServer.Address())
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("error during metrics server shutdown", "error", err)
		}
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during meter provider shutdown", "error", err)
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func openStores(ctx context.Context, cfg *config.Config, logger *logger.Logger) (stores, error) {
	var st stores

	switch cfg.Database.Driver {
	case config.DriverMemory:
		logger.Warn("using in-memory account store, data is lost on restart")
		accounts := memory.NewAccountRepository()
		resets := memory.NewResetTokenRepository()
		st.accounts, st.resets = accounts, resets
		st.tx = memory.NewTransactor(accounts, resets)
	default:
		conn, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return stores{}, err
		}
		st.accounts = postgres.NewAccountRepository(conn.DB)
		st.resets = postgres.NewResetTokenRepository(conn.DB)
		st.tx = postgres.NewTransactor(conn.DB)
		st.closers = append(st.closers, conn.Close)
	}

	if cfg.Redis.Addr == "" {
		logger.Warn("REDIS_ADDR is empty, keeping reset state in memory")
		st.cache = memory.NewResetCache()
		return st, nil
	}

	client, err := redisrepo.NewClient(ctx, redisrepo.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		for _, closeFn := range st.closers {
			_ = closeFn()
		}
		return stores{}, err
	}
	st.cache = redisrepo.NewResetCache(client)
	st.closers = append(st.closers, client.Close)

	return st, nil
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
