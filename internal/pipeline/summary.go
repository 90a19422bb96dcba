package pipeline

import (
	"time"

	"github.com/twocentdev/csv-to-json-transformer/pkg/utils"
)

// Summarize folds per-pair results into a run summary ready for printing or
// writing to the summary log.
func Summarize(results []Result, start, end time.Time) utils.RunSummary {
	summary := utils.RunSummary{
		RunID:     utils.NewRunID(),
		StartTime: start,
		EndTime:   end,
		Total:     len(results),
	}

	for _, result := range results {
		outcome := utils.PairOutcome{
			InputFile:  result.Request.InputPath,
			OutputFile: result.Request.OutputPath,
			Status:     string(result.Status),
		}
		if result.Err != nil {
			outcome.Detail = result.Err.Error()
		}
		summary.Pairs = append(summary.Pairs, outcome)

		switch {
		case result.Status == StatusConverted:
			summary.Converted++
		case result.Status == StatusFailed:
			summary.Failed++
		case result.Skipped():
			summary.Skipped++
		}
	}
	return summary
}
