package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"portfolio/internal/config"
	"portfolio/internal/logger"
	"portfolio/internal/service"
	"portfolio/internal/storage/pgx"
	transport "portfolio/internal/transport/http"
	"portfolio/internal/upstream"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	st, err := pgx.NewPgxStorage(ctx, cfg.Postgres, log)
	if err != nil {
		log.Errorw("failed to init storage", "error", err)
		return
	}
	defer st.Close()

	client := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, log)

	svc := service.NewService(
		st,     // ProfileStorage
		client, // Upstream
		st,     // txManager
		log,
		cfg.Stats.Location(),
	)

	router := transport.NewHandler(
		svc, // ProfilesService
		svc, // StatsService
		svc, // ContributionsService
		svc, // ProjectsService
		log,
		cfg.Stats.PageSize,
	)

	srv := &http.Server{
		Addr:         cfg.ServerAddr(),
		Handler:      router.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Infow("HTTP server listening", "addr", srv.Addr, "upstream", cfg.Upstream.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("ListenAndServe failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Infow("signal received, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	} else {
		log.Infow("HTTP server gracefully stopped")
	}
}
