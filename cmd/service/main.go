package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dropDatabas3/authrelay/internal/config"
	"github.com/dropDatabas3/authrelay/internal/http/server"
	"github.com/dropDatabas3/authrelay/internal/observability/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	var (
		cfgPath = flag.String("config", os.Getenv("CONFIG_PATH"), "ruta al YAML de configuración (opcional)")
		envFile = flag.String("env-file", os.Getenv("ENV_FILE_PATH"), "ruta al .env (default .env)")
	)
	flag.Parse()

	if err := run(*cfgPath, *envFile); err != nil {
		fmt.Fprintf(os.Stderr, "authrelay: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath, envFile string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// secretos + .env antes de leer la config
	config.LoadEnv(ctx, envFile)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.App.LogLevel,
		ServiceName: "authrelay",
		Version:     os.Getenv("SERVICE_VERSION"),
	})
	defer func() { _ = logger.Sync() }()
	log := logger.L()

	h, err := server.Build(cfg, server.Options{})
	if err != nil {
		return err
	}

	servers := []*http.Server{{
		Addr:              cfg.Server.Addr,
		Handler:           h.API,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}}
	if h.Metrics != nil {
		servers = append(servers, &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           h.Metrics,
			ReadHeaderTimeout: 5 * time.Second,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			log.Info("listening", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server %s: %w", srv.Addr, err)
			}
			return nil
		})
	}

	log.Info("authrelay ready",
		zap.String("auth0", cfg.Auth0.BaseURL()),
		zap.String("realm", cfg.Auth0.Realm),
		zap.String("env", cfg.App.Env),
	)

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(sctx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
