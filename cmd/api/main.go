package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/anbessa/iam-backend/internal/di"
)

func main() {
	a, err := di.InitializeApp()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Logger.Info("server starting", "addr", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			a.Logger.Error("failed to shutdown http server", "error", err)
		}
		if a.Observability != nil {
			if err := a.Observability.Shutdown(shutdownCtx); err != nil {
				a.Logger.Error("failed to shutdown observability", "error", err)
			}
		}
		if a.Redis != nil {
			if err := a.Redis.Close(); err != nil {
				a.Logger.Error("failed to close redis client", "error", err)
			}
		}
		if a.DB != nil {
			if sqlDB, err := a.DB.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					a.Logger.Error("failed to close database connection", "error", err)
				}
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
