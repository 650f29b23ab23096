package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jobsarthi/notification-parser/gen/ent"
	"github.com/jobsarthi/notification-parser/internal/async"
	"github.com/jobsarthi/notification-parser/internal/common"
	"github.com/jobsarthi/notification-parser/internal/export"
	"github.com/jobsarthi/notification-parser/internal/llm/openai"
	"github.com/jobsarthi/notification-parser/internal/pipeline"
	repo "github.com/jobsarthi/notification-parser/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout.
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir     = flag.String("dir", "", "directory of .txt notification dumps to parse (required)")
		out     = flag.String("out", "", "output XLSX report path (defaults to parent directory)")
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite instead of DB_URL")
		source  = flag.String("source", "batch", "source id recorded on each run")
		workers = flag.Int("workers", 2, "concurrent parsing runs")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "parsed-jobs.xlsx")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		printError("Error: OPENAI_API_KEY env var is required\n")
		os.Exit(1)
	}

	ctx := context.Background()

	entc, err := openClient(ctx, cfg, *inmem, logger)
	if err != nil {
		printError("Error: open database: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = entc.Close() }()

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

	queue := async.NewParserQueue(controller, logger, async.WithWorkers(*workers))

	entries, err := os.ReadDir(*dir)
	if err != nil {
		printError("Error: read directory: %v\n", err)
		os.Exit(1)
	}
	queued := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".txt") {
			continue
		}
		path := filepath.Join(*dir, e.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("skipping unreadable file", "path", path, "error", err)
			continue
		}
		jobID := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		_ = queue.Enqueue(ctx, async.Job{
			Input: pipeline.Input{
				RawText:  string(raw),
				JobID:    jobID,
				SourceID: *source,
			},
			SubmittedAt: time.Now(),
		})
		queued++
	}
	if queued == 0 {
		printError("Error: no .txt files found in %s\n", *dir)
		os.Exit(1)
	}

	drainCtx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()
	queue.Shutdown(drainCtx)

	report, err := export.NewService(runs, logger).
		ExportRunsXLSX(ctx, repo.ListFilter{SourceID: *source})
	if err != nil {
		printError("Error: export report: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, report, 0o644); err != nil {
		printError("Error: write report: %v\n", err)
		os.Exit(1)
	}

	logger.Info("batch complete", "parsed", queued, "report", *out)
}

func openClient(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*ent.Client, error) {
	if inmem {
		return repo.OpenSQLite(ctx, "", logger)
	}
	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("DB_URL is required unless --inmem is set")
	}
	entc, _, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	return entc, err
}
