// =============================================================================
// CSV to JSON Transformer - Transform Command
// =============================================================================
//
// The transform command resolves the file pairs for a run and hands them to
// the conversion driver.
//
// COMMAND USAGE:
//   transformer transform INPUT OUTPUT [flags]
//
// FLAGS:
//   -b, --batch FORMAT    treat INPUT and OUTPUT as directories; convert every
//                         file in INPUT to OUTPUT with the FORMAT extension
//   -d, --delimiter CHAR  normalize this delimiter to a comma before converting
//   -o, --overwrite       allow replacing existing output files
//       --dry-run         resolve and list pairs without converting anything
//
// =============================================================================

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/twocentdev/csv-to-json-transformer/internal/pipeline"
	"github.com/twocentdev/csv-to-json-transformer/pkg/utils"
)

var (
	batchFormat string
	delimiter   string
	overwrite   bool
	dryRun      bool
)

var transformCmd = &cobra.Command{
	Use:   "transform INPUT OUTPUT",
	Short: "Convert delimited text files to JSON",
	Long: `Convert a delimited text file into a JSON document, or a whole
directory of them in batch mode.

In single mode INPUT must be an existing file and OUTPUT names the JSON
document to write. In batch mode (--batch FORMAT) INPUT and OUTPUT must be
existing directories; every file in INPUT is converted to OUTPUT with its
extension rewritten to FORMAT.

A pair whose output already exists is skipped with a warning unless
--overwrite is set, and a pair no transformer handles is skipped as well;
neither aborts the batch.`,

	Args: cobra.ExactArgs(2),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(transformCmd)

	transformCmd.Flags().StringVarP(
		&batchFormat,
		"batch",
		"b",
		"",
		"Transform every file inside INPUT to OUTPUT with this extension (e.g. json)",
	)
	transformCmd.Flags().StringVarP(
		&delimiter,
		"delimiter",
		"d",
		"",
		"Delimiter used by the input files, replaced by a comma before converting",
	)
	transformCmd.Flags().BoolVarP(
		&overwrite,
		"overwrite",
		"o",
		false,
		"Allow overwriting existing output files",
	)
	transformCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Resolve and print the file pairs without converting",
	)
}

func runTransform(input, output string) error {
	startTime := time.Now()

	driver := pipeline.New(cfg, log)
	driver.DryRun = dryRun

	requests, err := driver.Resolve(input, output, batchFormat, delimiter, overwrite)
	if err != nil {
		log.Error("could not resolve file pairs", "error", err)
		return err
	}
	if len(requests) == 0 {
		fmt.Println("No files to transform.")
		return nil
	}

	results, runErr := driver.Run(requests)

	summary := pipeline.Summarize(results, startTime, time.Now())
	printSummary(summary)

	if cfg.SummaryLog && !dryRun {
		path, err := utils.WriteSummaryLog(summary, cfg.SummaryDir)
		if err != nil {
			log.Warn("could not write summary log", "error", err)
		} else {
			log.Info("summary log written", "path", path)
		}
	}

	return runErr
}

func printSummary(summary utils.RunSummary) {
	fmt.Println("\n=== Transform Complete ===")
	fmt.Printf("Total pairs:  %d\n", summary.Total)
	fmt.Printf("Converted:    %d\n", summary.Converted)
	fmt.Printf("Skipped:      %d\n", summary.Skipped)
	fmt.Printf("Failed:       %d\n", summary.Failed)
	fmt.Printf("Time elapsed: %s\n", summary.EndTime.Sub(summary.StartTime))
}
