// =============================================================================
// CSV to JSON Transformer - File Manager Utility
// =============================================================================
//
// File-system helpers for the conversion pipeline: directory listing for
// batch mode, output-name rewriting, existence checks, and the run summary
// log written after a batch completes.
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileExists reports whether a path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// ListFiles returns the names of the regular files directly inside dir, in
// directory order. Subdirectories are skipped; batch mode is not recursive.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

// RewriteExtension builds the output path for a batch pair: the input file's
// stem placed in outputDir with the target format as its extension.
// RewriteExtension("out", "report.csv", "json") == "out/report.json".
func RewriteExtension(outputDir, fileName, format string) string {
	stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	return filepath.Join(outputDir, stem+"."+format)
}

// =============================================================================
// RUN SUMMARY
// =============================================================================

// PairOutcome records what happened to a single file pair.
type PairOutcome struct {
	InputFile  string
	OutputFile string
	Status     string
	Detail     string
}

// RunSummary aggregates the outcome of one conversion run.
type RunSummary struct {
	RunID     string
	StartTime time.Time
	EndTime   time.Time
	Total     int
	Converted int
	Skipped   int
	Failed    int
	Pairs     []PairOutcome
}

// NewRunID returns a unique identifier for a conversion run.
func NewRunID() string {
	return uuid.New().String()
}

// WriteSummaryLog writes the run summary to a text file in dir and returns
// its path. The file name carries the run ID so that repeated runs never
// collide.
func WriteSummaryLog(summary RunSummary, dir string) (string, error) {
	summaryPath := filepath.Join(dir, fmt.Sprintf("transform_summary_%s.txt", summary.RunID))

	file, err := os.Create(summaryPath)
	if err != nil {
		return "", fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	fmt.Fprintf(writer, "CSV to JSON Transformer - Run Summary\n")
	fmt.Fprintf(writer, "Run ID:     %s\n", summary.RunID)
	fmt.Fprintf(writer, "Start Time: %s\n", summary.StartTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(writer, "End Time:   %s\n", summary.EndTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(writer, "Duration:   %s\n\n", summary.EndTime.Sub(summary.StartTime))

	fmt.Fprintf(writer, "Total pairs: %d\n", summary.Total)
	fmt.Fprintf(writer, "Converted:   %d\n", summary.Converted)
	fmt.Fprintf(writer, "Skipped:     %d\n", summary.Skipped)
	fmt.Fprintf(writer, "Failed:      %d\n\n", summary.Failed)

	for _, pair := range summary.Pairs {
		fmt.Fprintf(writer, "%s --> %s [%s]", pair.InputFile, pair.OutputFile, pair.Status)
		if pair.Detail != "" {
			fmt.Fprintf(writer, " %s", pair.Detail)
		}
		fmt.Fprintln(writer)
	}

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush summary file: %w", err)
	}
	return summaryPath, nil
}
