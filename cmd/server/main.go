package main

import (
    "context"
    "errors"
    "net/http"
    "os/signal"
    "syscall"
    "time"

    "github.com/getsentry/sentry-go"
    "github.com/redis/go-redis/v9"
    "go.uber.org/zap"

    "github.com/d60-Lab/miniblog/config"
    "github.com/d60-Lab/miniblog/internal/api"
    "github.com/d60-Lab/miniblog/internal/api/handler"
    "github.com/d60-Lab/miniblog/internal/auth"
    "github.com/d60-Lab/miniblog/internal/repository"
    "github.com/d60-Lab/miniblog/internal/service"
    "github.com/d60-Lab/miniblog/pkg/database"
    "github.com/d60-Lab/miniblog/pkg/logger"
    "github.com/d60-Lab/miniblog/pkg/tracing"
)

func must[T any](v T, err error) T {
    if err != nil {
        panic(err)
    }
    return v
}

func main() {
    cfg := must(config.Load())
    if err := logger.Init(cfg.Log.Level); err != nil {
        panic(err)
    }
    defer logger.Sync()

    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()

    if cfg.Sentry.DSN != "" {
        if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
            logger.Warn("sentry init failed", zap.Error(err))
        } else {
            defer sentry.Flush(2 * time.Second)
        }
    }

    shutdownTracing := must(tracing.Init(ctx, cfg.Trace.Endpoint, "miniblog"))
    defer func() { _ = shutdownTracing(context.Background()) }()

    db := must(database.InitDB(cfg))

    // 注销表：有 redis 用 redis，否则进程内兜底
    var tokenStore auth.TokenStore
    if cfg.Redis.Addr != "" {
        client := redis.NewClient(&redis.Options{
            Addr:     cfg.Redis.Addr,
            Password: cfg.Redis.Password,
            DB:       cfg.Redis.DB,
        })
        defer client.Close()
        tokenStore = auth.NewRedisTokenStore(client)
    } else {
        tokenStore = auth.NewMemoryTokenStore()
    }

    // repositories & services
    userRepo := repository.NewUserRepository(db)
    postRepo := repository.NewPostRepository(db)
    reactRepo := repository.NewReactionRepository(db)
    authSvc := service.NewAuthService(userRepo, tokenStore, cfg.JWT.Secret, cfg.JWT.TTL)
    blogSvc := service.NewBlogService(postRepo, reactRepo)

    h := handler.New(blogSvc, authSvc)
    srv := &http.Server{
        Addr:    cfg.Server.Addr,
        Handler: api.SetupRouter(cfg, h, authSvc),
    }

    go func() {
        logger.Info("server listening", zap.String("addr", cfg.Server.Addr))
        if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            logger.Error("server failed", zap.Error(err))
            stop()
        }
    }()

    <-ctx.Done()
    logger.Info("shutting down")
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    if err := srv.Shutdown(shutdownCtx); err != nil {
        logger.Error("shutdown failed", zap.Error(err))
    }
}
