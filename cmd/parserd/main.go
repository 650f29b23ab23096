package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	parserv1 "github.com/jobsarthi/notification-parser/gen/proto/parser/v1"
	"github.com/jobsarthi/notification-parser/internal/async"
	"github.com/jobsarthi/notification-parser/internal/common"
	"github.com/jobsarthi/notification-parser/internal/llm/openai"
	"github.com/jobsarthi/notification-parser/internal/pipeline"
	repo "github.com/jobsarthi/notification-parser/internal/repository"
	svc "github.com/jobsarthi/notification-parser/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	zlog, _ := zap.NewProduction()
	defer func() { _ = zlog.Sync() }()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	runs := repo.NewParseRunRepository(entc, logger)

	client := openai.NewClient(openai.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)

	controller := pipeline.NewController(client, pipeline.Config{
		MaxRetryAttempts:  cfg.Parser.MaxRetryAttempts,
		MaxTokensPerChunk: cfg.Parser.MaxTokensPerChunk,
		MaxOutputTokens:   cfg.Parser.MaxOutputTokens,
		OverlapChars:      cfg.Parser.OverlapChars,
		Model:             cfg.LLM.Model,
		Temperature:       cfg.LLM.Temperature,
		ChunkConcurrency:  cfg.Parser.ChunkConcurrency,
		RequestTimeout:    cfg.LLM.Timeout,
		MinTextLength:     cfg.Parser.MinTextLength,
	}, runs, logger)

	queue := async.NewParserQueue(controller, logger,
		async.WithWorkers(cfg.Server.Workers),
	)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	parserv1.RegisterParserServiceServer(grpcServer,
		svc.NewParserServiceServer(controller, queue, runs, zlog))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		queue.Shutdown(shutdownCtx)
		grpcServer.GracefulStop()
	}()

	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr, "model", cfg.LLM.Model)
	if err := grpcServer.Serve(lis); err != nil {
		logger.Error("serve", "error", err)
		os.Exit(1)
	}
}
