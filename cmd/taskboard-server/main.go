package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sourcegraph/conc"

	server "github.com/Basantrajshakti/taskboard/internal"
	"github.com/Basantrajshakti/taskboard/internal/auth"
	"github.com/Basantrajshakti/taskboard/internal/config"
	"github.com/Basantrajshakti/taskboard/internal/eventbus"
	"github.com/Basantrajshakti/taskboard/internal/pushnotification"
	pushsubrepo "github.com/Basantrajshakti/taskboard/internal/pushsubscription/repositoryimpl"
	"github.com/Basantrajshakti/taskboard/internal/task"
	taskrepo "github.com/Basantrajshakti/taskboard/internal/task/repositoryimpl"
	"github.com/Basantrajshakti/taskboard/internal/user"
	userrepo "github.com/Basantrajshakti/taskboard/internal/user/repositoryimpl"
	"github.com/Basantrajshakti/taskboard/pkg/clog"
	"github.com/Basantrajshakti/taskboard/pkg/storage"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		slog.Error("failed to load env", "error", err)
		os.Exit(1)
	}

	// Setup logger
	level := env.SlogLevel()
	var handler slog.Handler
	if env.Env == "local" {
		handler = clog.NewTextHandler(os.Stderr, clog.WithLevel(level))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(clog.NewAttributesHandler(handler)))

	// Setup storage
	var store storage.Storage
	switch env.StorageEnv.Type {
	case "s3":
		store, err = storage.NewS3Storage(context.Background(), env.StorageEnv.S3Bucket, env.StorageEnv.S3Prefix, env.StorageEnv.S3Region)
		if err != nil {
			slog.Error("failed to create S3 storage", "error", err)
			os.Exit(1)
		}
	default:
		store, err = storage.NewLocalStorage(env.StorageEnv.BaseDir)
		if err != nil {
			slog.Error("failed to create local storage", "error", err)
			os.Exit(1)
		}
	}

	// Setup event bus
	bus := eventbus.New()

	// Setup repositories
	taskRepo := taskrepo.NewYAMLRepository(store)
	userRepo := userrepo.NewYAMLRepository(store)
	pushSubRepo := pushsubrepo.NewYAMLRepository(store)

	// Setup sessions and servers
	sessions := auth.NewSessionStore(env.SessionTTL)
	authServer := auth.NewServer(userRepo, sessions)
	taskServer := task.NewServer(taskRepo, bus)
	userServer := user.NewServer(userRepo)

	vapidEnv := config.VAPIDEnvFromEnv(env)
	pushSender := pushnotification.NewSender(vapidEnv, pushSubRepo)
	pushServer := pushnotification.NewServer(vapidEnv, pushSubRepo)
	pushDispatcher := pushnotification.NewDispatcher(bus, pushSender)

	srv := server.NewServer(env, sessions, authServer, taskServer, userServer, pushServer)

	// Graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	wg := conc.NewWaitGroup()
	wg.Go(func() {
		pushDispatcher.Start(ctx)
	})
	wg.Go(func() {
		if err := srv.ListenAndServe(ctx); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			cancel()
		}
	})

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	wg.Wait()
}
