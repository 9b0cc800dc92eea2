// Package importer converts training plan workbooks into program JSON
// documents, tracking conversion state so unchanged workbooks are skipped.
package importer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/TagorPetrosian/my-weigh/internal/ingest/plan"
	"github.com/TagorPetrosian/my-weigh/internal/workbook"
)

// Stats tracks conversion progress.
type Stats struct {
	WorkbooksProcessed int
	WorkbooksSkipped   int
	WorkbooksErrored   int

	WeeksParsed     int
	SessionsParsed  int
	ExercisesParsed int
	SetsParsed      int
}

// Importer reads .xlsx workbooks and writes one program JSON file per workbook.
type Importer struct {
	state   *StateDB
	log     *slog.Logger
	columns []string
	outDir  string
	dryRun  bool
	stats   Stats
}

// New creates a new Importer. In dry-run mode workbooks are parsed and counted
// but no JSON is written and no state is recorded.
func New(state *StateDB, log *slog.Logger, columns []string, outDir string, dryRun bool) *Importer {
	if len(columns) == 0 {
		columns = plan.DefaultSessionColumns
	}
	return &Importer{state: state, log: log, columns: columns, outDir: outDir, dryRun: dryRun}
}

// Import converts the workbook at path, or every .xlsx in it if path is a
// directory. A workbook that fails to read is counted and logged, and the run
// continues with the next one.
func (imp *Importer) Import(path string) (*Stats, error) {
	runID := uuid.New().String()

	files, err := resolveWorkbooks(path)
	if err != nil {
		return &imp.stats, err
	}
	if len(files) == 0 {
		return &imp.stats, fmt.Errorf("no .xlsx workbooks found at %s", path)
	}

	for _, file := range files {
		if err := imp.convertWorkbook(file, runID); err != nil {
			imp.stats.WorkbooksErrored++
			imp.log.Error("workbook conversion failed", "file", file, "error", err)
		}
	}

	return &imp.stats, nil
}

// resolveWorkbooks expands path into a sorted list of workbook files.
func resolveWorkbooks(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	files, err := filepath.Glob(filepath.Join(path, "*.xlsx"))
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", path, err)
	}
	sort.Strings(files)
	return files, nil
}

func (imp *Importer) convertWorkbook(file, runID string) error {
	info, err := os.Stat(file)
	if err != nil {
		return fmt.Errorf("stating %s: %w", file, err)
	}
	hash, err := HashFile(file)
	if err != nil {
		return fmt.Errorf("hashing %s: %w", file, err)
	}

	if imp.state != nil && !imp.dryRun {
		converted, err := imp.state.IsConverted(file, info.Size(), hash)
		if err != nil {
			return fmt.Errorf("checking state for %s: %w", file, err)
		}
		if converted {
			imp.stats.WorkbooksSkipped++
			imp.log.Info("skipping unchanged workbook", "file", file)
			return nil
		}
	}

	sheets, err := workbook.Read(file)
	if err != nil {
		return err
	}

	program := plan.BuildProgram(sheets, imp.columns)

	imp.stats.WeeksParsed += len(program.Weeks)
	for _, week := range program.Weeks {
		imp.stats.SessionsParsed += len(week.Sessions)
		for _, session := range week.Sessions {
			imp.stats.ExercisesParsed += len(session.Exercises)
			for _, exercise := range session.Exercises {
				imp.stats.SetsParsed += len(exercise.Sets)
			}
		}
	}

	if imp.dryRun {
		imp.stats.WorkbooksProcessed++
		imp.log.Info("parsed workbook (dry run)", "file", file, "weeks", len(program.Weeks))
		return nil
	}

	outPath := filepath.Join(imp.outDir, outputName(file))
	if err := writeProgram(outPath, program); err != nil {
		return err
	}

	if imp.state != nil {
		if err := imp.state.MarkConverted(file, info.Size(), hash, runID); err != nil {
			return fmt.Errorf("recording state for %s: %w", file, err)
		}
	}

	imp.stats.WorkbooksProcessed++
	imp.log.Info("converted workbook", "file", file, "output", outPath, "weeks", len(program.Weeks))
	return nil
}

// outputName maps program.xlsx to program.json.
func outputName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}

func writeProgram(path string, program any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	data, err := json.MarshalIndent(program, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding program: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
