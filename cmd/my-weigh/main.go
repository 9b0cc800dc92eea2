package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/TagorPetrosian/my-weigh/internal/config"
	"github.com/TagorPetrosian/my-weigh/internal/importer"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	inputPath := flag.String("path", "", "path to a workbook or a directory of workbooks (required)")
	dryRun := flag.Bool("dry-run", false, "parse and report counts without writing JSON or state")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("my-weigh starting", "version", Version)

	if *inputPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: my-weigh -config config.yaml -path program.xlsx [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var state *importer.StateDB
	if !*dryRun {
		state, err = importer.OpenStateDB(cfg.Import.StateDir)
		if err != nil {
			log.Error("failed to open state db", "error", err)
			os.Exit(1)
		}
		defer state.Close()
	} else {
		log.Info("DRY RUN mode — no JSON or state will be written")
	}

	imp := importer.New(state, log, cfg.Sessions.Columns, cfg.Import.OutputDir, *dryRun)
	stats, err := imp.Import(*inputPath)
	if err != nil {
		log.Error("import failed", "error", err)
		printStats(log, stats)
		os.Exit(1)
	}

	printStats(log, stats)
	if stats.WorkbooksErrored > 0 {
		log.Warn("import finished with errors", "errored", stats.WorkbooksErrored)
		os.Exit(1)
	}
	log.Info("import complete")
}

func printStats(log *slog.Logger, stats *importer.Stats) {
	log.Info("import stats",
		"workbooks_processed", stats.WorkbooksProcessed,
		"workbooks_skipped", stats.WorkbooksSkipped,
		"workbooks_errored", stats.WorkbooksErrored,
		"weeks_parsed", stats.WeeksParsed,
		"sessions_parsed", stats.SessionsParsed,
		"exercises_parsed", stats.ExercisesParsed,
		"sets_parsed", stats.SetsParsed,
	)
}
