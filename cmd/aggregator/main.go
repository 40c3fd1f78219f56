package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"datapulse/internal/config"
	"datapulse/internal/dataprocessing"
	"datapulse/internal/infrastructure"
)

func main() {
	in := flag.String("in", "", "dataset file path (defaults to the configured input file)")
	out := flag.String("out", "", "result JSON file path (defaults to the configured output file)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if *in == "" {
		*in = cfg.Paths.InputFile
	}
	if *out == "" {
		*out = cfg.Paths.OutputFile
	}

	if err := run(context.Background(), logger, *in, *out); err != nil {
		logger.Error("Aggregation failed",
			slog.String("input_file", *in),
			slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "aggregator: %v\n", err)
		os.Exit(1)
	}
}

// run executes the whole pipeline: load, normalize, aggregate, write.
// A dataset whose value column is missing still writes a result and
// returns nil; only file-level failures propagate.
func run(ctx context.Context, logger *slog.Logger, inPath, outPath string) error {
	logger.Info("Starting dataset aggregation",
		slog.String("input_file", inPath),
		slog.String("output_file", outPath))

	ds, err := dataprocessing.ParseFile(inPath)
	if err != nil {
		return err
	}
	logger.Info("Dataset loaded",
		slog.String("source", ds.Source),
		slog.Int("record_count", len(ds.Records)))

	dataprocessing.Normalize(ds)

	agg := dataprocessing.NewAggregator(logger)
	result := agg.Aggregate(ctx, ds)

	if err := agg.WriteJSON(ctx, outPath, result); err != nil {
		return err
	}

	logger.Info("Dataset aggregation completed",
		slog.String("output_file", outPath),
		slog.Bool("ok", result.OK()))
	return nil
}
