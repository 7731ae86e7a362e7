package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/pdfoutline/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputDir    string
		outputDir   string
		configPath  string
		workers     int
		fileTimeout time.Duration
		validate    bool
		verbose     bool
	)

	flag.StringVar(&inputDir, "input", "", "Directory containing the PDF files to analyze (default \"input\")")
	flag.StringVar(&outputDir, "output", "", "Directory for the per-file outline JSON, created if absent (default \"output\")")
	flag.StringVar(&configPath, "config", os.Getenv("PDFOUTLINE_CONFIG"), "Optional YAML/JSON config file mirroring the flags")
	flag.IntVar(&workers, "workers", 0, "Number of files processed in parallel (default 1)")
	flag.DurationVar(&fileTimeout, "timeout.file", 0, "Per-file wall clock limit (e.g. 30s); 0 disables")
	flag.BoolVar(&validate, "validate", false, "Strictly validate each PDF's structure before extraction")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		InputDir:    inputDir,
		OutputDir:   outputDir,
		Workers:     workers,
		FileTimeout: fileTimeout,
		Validate:    validate,
		Verbose:     verbose,
	}
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file")
			os.Exit(2)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyEnvToConfig(&cfg)
	app.ApplyDefaults(&cfg)

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		// Per-file failures never reach here; only a run that could not
		// start at all fails the process.
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(ctx)
}
