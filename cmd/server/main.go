package main

import (
    "context"
    "errors"
    "fmt"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/redis/go-redis/v9"
    "go.uber.org/zap"

    "github.com/d60-Lab/microblog/config"
    "github.com/d60-Lab/microblog/internal/api"
    "github.com/d60-Lab/microblog/internal/api/handler"
    "github.com/d60-Lab/microblog/internal/cache"
    "github.com/d60-Lab/microblog/internal/repository"
    "github.com/d60-Lab/microblog/internal/service"
    "github.com/d60-Lab/microblog/pkg/database"
    "github.com/d60-Lab/microblog/pkg/logger"
    "github.com/d60-Lab/microblog/pkg/telemetry"
)

// @title Microblog Engagement API
// @description 推文互动与时间线聚合服务
// @version 1.0
func main() {
    cfg, err := config.Load()
    if err != nil {
        fmt.Fprintf(os.Stderr, "load config: %v\n", err)
        os.Exit(1)
    }

    if err := logger.Init(cfg.Log.Level); err != nil {
        fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
        os.Exit(1)
    }
    defer logger.Sync()

    if err := telemetry.InitSentry(cfg); err != nil {
        logger.Fatal("init sentry failed", zap.Error(err))
    }
    defer telemetry.FlushSentry()

    ctx := context.Background()
    shutdownTracing, err := telemetry.InitTracing(ctx, cfg)
    if err != nil {
        logger.Fatal("init tracing failed", zap.Error(err))
    }

    db, err := database.InitDB(cfg)
    if err != nil {
        logger.Fatal("init database failed", zap.Error(err))
    }

    var stats *cache.EngagementCache
    if cfg.Redis.Enabled {
        rdb := redis.NewClient(&redis.Options{
            Addr:     cfg.Redis.Address,
            Password: cfg.Redis.Password,
            DB:       cfg.Redis.DB,
        })
        if err := rdb.Ping(ctx).Err(); err != nil {
            logger.Fatal("redis ping failed", zap.Error(err))
        }
        defer rdb.Close()
        stats = cache.NewEngagementCache(rdb, cfg.Redis.StatsTTL)
        logger.Info("redis connected", zap.String("addr", cfg.Redis.Address))
    }

    userRepo := repository.NewUserRepository(db)
    tweetRepo := repository.NewTweetRepository(db)
    engRepo := repository.NewEngagementRepository(db)
    followRepo := repository.NewFollowRepository(db)

    assembler := service.NewAssembler(tweetRepo, engRepo, userRepo)
    tweetService := service.NewTweetService(tweetRepo, userRepo, assembler)
    engagementService := service.NewEngagementService(engRepo, tweetRepo, userRepo, stats)
    timelineService := service.NewTimelineService(tweetRepo, followRepo, engRepo, userRepo, assembler)
    searchService := service.NewSearchService(tweetRepo, userRepo, assembler)
    relService := service.NewRelationshipService(followRepo, userRepo)

    var stopReconciler func(context.Context) error
    if cfg.Reconciler.Enabled {
        reconciler := service.NewCounterReconciler(db, cfg.Reconciler.Interval, cfg.Reconciler.BatchSize)
        stopReconciler = reconciler.Start()
        logger.Info("counter reconciler started",
            zap.Duration("interval", cfg.Reconciler.Interval),
            zap.Int("batch_size", cfg.Reconciler.BatchSize))
    }

    h := handler.New(tweetService, engagementService, timelineService, searchService, relService)
    router := api.NewRouter(cfg, h)

    addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
    srv := &http.Server{Addr: addr, Handler: router}

    go func() {
        logger.Info("server starting", zap.String("addr", addr))
        if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            logger.Fatal("server stopped unexpectedly", zap.Error(err))
        }
    }()

    quit := make(chan os.Signal, 1)
    signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
    <-quit
    logger.Info("shutting down")

    shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    if stopReconciler != nil {
        if err := stopReconciler(shutdownCtx); err != nil {
            logger.Error("stop reconciler failed", zap.Error(err))
        }
    }
    if err := srv.Shutdown(shutdownCtx); err != nil {
        logger.Error("server shutdown failed", zap.Error(err))
    }
    if err := shutdownTracing(shutdownCtx); err != nil {
        logger.Error("tracing shutdown failed", zap.Error(err))
    }
}
