// Package main provides the candidate evaluation tool. It loads candidates
// produced by a search run, filters them against the configured thresholds,
// and writes the best ones as a JSON report.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/cory-johannsen/gearopt/internal/config"
	"github.com/cory-johannsen/gearopt/internal/evaluate"
	"github.com/cory-johannsen/gearopt/internal/game/candidate"
	"github.com/cory-johannsen/gearopt/internal/observability"
	"github.com/cory-johannsen/gearopt/internal/report"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (defaults and GEAROPT_* env when empty)")
	candidatesDir := flag.String("candidates", "content/candidates", "path to candidate YAML files directory")
	outPath := flag.String("out", "-", "report output path, - for stdout")
	flag.Parse()

	// Load configuration
	var (
		cfg config.Config
		err error
	)
	if *configPath == "" {
		cfg, err = config.Defaults()
	} else {
		cfg, err = config.Load(*configPath)
	}
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// Initialize logger
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	rankby, err := cfg.Evaluation.Objective()
	if err != nil {
		logger.Fatal("parsing objective", zap.Error(err))
	}

	candidates, err := candidate.LoadDir(*candidatesDir, rankby)
	if err != nil {
		logger.Fatal("loading candidates", zap.Error(err))
	}
	logger.Info("candidates loaded",
		zap.String("dir", *candidatesDir),
		zap.String("count", humanize.Comma(int64(len(candidates)))),
		zap.Stringer("rankby", rankby),
	)

	evaluator, err := evaluate.NewEvaluator(cfg.Settings, cfg.Evaluation.Workers, cfg.Evaluation.TopK, logger)
	if err != nil {
		logger.Fatal("creating evaluator", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum, err := evaluator.EvaluateAll(ctx, candidates)
	if err != nil {
		logger.Fatal("evaluating candidates", zap.Error(err))
	}

	rep := report.New(sum, rankby, time.Now())
	var out io.Writer = os.Stdout
	if *outPath != "-" {
		f, err := os.Create(*outPath)
		if err != nil {
			logger.Fatal("creating report file", zap.String("path", *outPath), zap.Error(err))
		}
		defer f.Close()
		out = f
	}
	if err := report.Write(out, rep); err != nil {
		logger.Fatal("writing report", zap.Error(err))
	}

	logger.Info("report written",
		zap.Stringer("run_id", rep.RunID),
		zap.String("evaluated", humanize.Comma(sum.Evaluated)),
		zap.String("invalid", humanize.Comma(sum.Invalid)),
		zap.Int("results", len(sum.Results)),
		zap.String("out", *outPath),
		zap.Duration("elapsed", time.Since(start)),
	)
}
