package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spektr-org/gradreport/config"
	"github.com/spektr-org/gradreport/report"
)

// ============================================================================
// GRADREPORT CLI — Graduate employment report
// ============================================================================

const version = "0.1.0"

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	configPath := flag.String("config", "", "Path to YAML config (optional)")
	outDir := flag.String("out", "", "Directory for chart PNGs (overrides output.dir)")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `gradreport — Graduate employment statistics and charts

Usage:
  gradreport
  gradreport --out charts
  gradreport --config gradreport.yaml

Reads the two survey CSVs from the working directory, prints a summary and
writes seven PNG charts.

Flags:
`)
		flag.PrintDefaults()
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("gradreport %s\n", version)
		os.Exit(0)
	}

	// ── Config ────────────────────────────────────────────────────────────
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fatalf("%v", err)
		}
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// ── Run ───────────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := report.Run(ctx, cfg, os.Stdout, report.WithLogger(logger)); err != nil {
		logger.Sync() //nolint:errcheck
		fatalf("%v", err)
	}
}

// newLogger builds a console logger on stderr tagged with a run ID.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.DisableStacktrace = true

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("run", uuid.NewString())), nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
