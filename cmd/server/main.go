package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/zpredict/prediction-service/internal/artifact"
	"github.com/zpredict/prediction-service/internal/cache"
	"github.com/zpredict/prediction-service/internal/career"
	"github.com/zpredict/prediction-service/internal/config"
	"github.com/zpredict/prediction-service/internal/handler"
	"github.com/zpredict/prediction-service/internal/logger"
	"github.com/zpredict/prediction-service/internal/predictor"
	"github.com/zpredict/prediction-service/internal/repository"
	"github.com/zpredict/prediction-service/internal/router"
	"github.com/zpredict/prediction-service/internal/service"
)

func main() {
	// Load .env if present, then configuration from env
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config %v", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer zlog.Sync()

	ctx := context.Background()

	// ------------ PostgreSQL ---------------
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("failed to parse database config", zap.Error(err))
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := waitForDB(ctx, pool, zlog); err != nil {
		zlog.Fatal("database not ready", zap.Error(err))
	}
	zlog.Info("connected to PostgreSQL")

	// ------------ Run Migrations ---------------
	// for migrate-down using CLI command
	if len(os.Args) > 1 && os.Args[1] == "migrate-down" {
		if err := migrate(ctx, pool, "migrations/create_tables.down.sql"); err != nil {
			zlog.Fatal("failed to migrate down", zap.Error(err))
		}
		zlog.Info("migrations dropped")
		return
	}

	if err := migrate(ctx, pool, "migrations/create_tables.up.sql"); err != nil {
		zlog.Fatal("failed to migrate up", zap.Error(err))
	}
	zlog.Info("migrations applied")

	// ------------ Redis ---------------
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		zlog.Fatal("failed to parse redis url", zap.Error(err))
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	resultCache := cache.NewCache(redisClient, cfg.CacheTTL)
	if err := resultCache.Ping(ctx); err != nil {
		zlog.Warn("redis not reachable, result caching degraded", zap.Error(err))
	} else {
		zlog.Info("connected to Redis")
	}

	// ------------ Model loaders ---------------
	admissionStore := artifact.NewStore(cfg.ModelDir, zlog)
	admissionLoader := artifact.NewLoader(
		admissionStore.ReadBundle,
		(*artifact.Bundle).IsUsable,
		cfg.BundleTTL, cfg.LoadWaitTimeout, zlog,
	)
	careerStore := artifact.NewStore(cfg.CareerModelDir, zlog)
	careerLoader := artifact.NewLoader(
		careerStore.ReadCareerBundle,
		(*artifact.CareerBundle).IsUsable,
		cfg.BundleTTL, cfg.LoadWaitTimeout, zlog,
	)

	pred := predictor.New(admissionLoader, zlog)
	rec := career.New(careerLoader, zlog)

	// ---------------- Server --------------------
	repo := repository.NewRepository(pool)
	svc := service.NewService(repo, resultCache, pred, rec, zlog)
	h := handler.NewHandler(svc)

	zlog.Info("server running", zap.Int("port", cfg.Port))
	if err := http.ListenAndServe(cfg.Addr(), router.Setup(h)); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool, zlog *zap.Logger) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		zlog.Info("waiting for database...", zap.Int("attempt", i+1))
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("database connection timeout after 30s")
}

func migrate(ctx context.Context, pool *pgxpool.Pool, file string) error {
	sql, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	return nil
}
