package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/lfaria/juriscan/internal/outcome"
	"github.com/lfaria/juriscan/internal/store"
	"github.com/lfaria/juriscan/internal/summarizer"
	"github.com/lfaria/juriscan/internal/taxonomy"
)

func main() {
	dbFlag := flag.String("db", "", "path to SQLite database file (overrides JURISCAN_DB env var)")
	workers := flag.Int("workers", 4, "concurrent documents")
	limit := flag.Int("limit", 200, "max documents per run")
	docTimeout := flag.Duration("doc-timeout", 30*time.Second, "per-document timeout")
	reprocess := flag.Bool("reprocess", false, "also rerun documents summarized by an older pipeline version")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	logger := buildLogger(*debug)
	defer func() { _ = logger.Sync() }()

	dbPath := *dbFlag
	if dbPath == "" {
		dbPath = os.Getenv("JURISCAN_DB")
	}
	if dbPath == "" {
		dbPath = "./data/juriscan.db"
	}

	st, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open store (%s): %v", dbPath, err)
	}
	defer st.Close()

	tax, err := taxonomy.New()
	if err != nil {
		log.Fatalf("taxonomy: %v", err)
	}
	eng := summarizer.New(tax, outcome.DefaultConfig())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	docs, err := st.PendingDocuments(*limit)
	if err != nil {
		log.Fatalf("pending documents: %v", err)
	}
	if *reprocess {
		stale, err := st.StaleDocuments(summarizer.PipelineVersion(), *limit)
		if err != nil {
			log.Fatalf("stale documents: %v", err)
		}
		docs = append(docs, stale...)
	}

	logger.Info("batch start",
		zap.Int("documents", len(docs)),
		zap.Int("workers", *workers),
		zap.String("pipeline_version", summarizer.PipelineVersion()))

	start := time.Now()
	var done, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)
	for _, doc := range docs {
		doc := doc
		g.Go(func() error {
			docCtx, cancel := context.WithTimeout(gctx, *docTimeout)
			defer cancel()
			if err := docCtx.Err(); err != nil {
				return err
			}

			sum := eng.Summarize(docCtx, doc)
			if err := st.PutSummary(sum); err != nil {
				failed.Add(1)
				logger.Error("store summary", zap.String("document_id", doc.ID), zap.Error(err))
				return nil
			}
			done.Add(1)
			logger.Info("document summarized",
				zap.String("document_id", doc.ID),
				zap.String("outcome", string(sum.Outcome.Outcome)),
				zap.Float64("confidence", sum.OverallConfidence),
				zap.Strings("diagnostics", sum.Diagnostics))
			return nil
		})
	}
	err = g.Wait()

	logger.Info("batch done",
		zap.Int64("summarized", done.Load()),
		zap.Int64("failed", failed.Load()),
		zap.Duration("elapsed", time.Since(start)))
	if !cleanShutdown(err) {
		logger.Fatal("batch aborted", zap.Error(err))
	}
	if failed.Load() > 0 {
		os.Exit(1)
	}
}

// cleanShutdown reports whether the batch ended by cancellation or timeout
// rather than failure. Workers wrap context errors, so unwrapping matters.
func cleanShutdown(err error) bool {
	return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func buildLogger(debug bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	return logger
}
