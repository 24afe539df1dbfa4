package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/raceclub/chat-service/internal/config"
	"github.com/raceclub/chat-service/internal/infra"
	"github.com/raceclub/chat-service/internal/pkg/jwt"
	"github.com/raceclub/chat-service/internal/pkg/tx"
	"github.com/raceclub/chat-service/internal/pkg/validator"
	db "github.com/raceclub/chat-service/internal/repository/postgres"
	"github.com/raceclub/chat-service/internal/rest"
	"github.com/raceclub/chat-service/internal/ws"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Live.JWTSecret)

	hub := ws.NewHub()
	liveServer := ws.NewServer(hub, jwtGenerator)

	handler := rest.New(dbRepo, hub, vldtr, jwtGenerator)
	router := rest.NewRouter(handler, liveServer.HandleWS,
		func(next http.Handler) http.Handler {
			return infra.LoggerHTTP(next, logger)
		},
		func(next http.Handler) http.Handler {
			return tx.TxMiddlewareHTTP(dbRepo)(next)
		},
	)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info(fmt.Sprintf("chat service listening on :%s", cfg.Service.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		return httpServer.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
