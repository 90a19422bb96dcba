// =============================================================================
// CSV to JSON Transformer - Conversion Driver
// =============================================================================
//
// The driver resolves the set of (input, output) file pairs, then processes
// them strictly one after another:
//
//   1. print the "input --> output" progress line
//   2. skip the pair with a warning when the output exists and overwrite is
//      disabled, or when no transformer handles the extension pair
//   3. when a non-comma delimiter was requested, normalize into a sibling
//      temp file first and convert from there, removing the temp file on
//      every exit path
//   4. otherwise convert directly
//
// A failed conversion stops the run only when continue_on_error is disabled;
// by default it is recorded in that pair's result and the batch moves on.
//
// =============================================================================

package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/twocentdev/csv-to-json-transformer/internal/config"
	"github.com/twocentdev/csv-to-json-transformer/internal/jsonwriter"
	"github.com/twocentdev/csv-to-json-transformer/internal/transform"
	"github.com/twocentdev/csv-to-json-transformer/internal/validation"
	"github.com/twocentdev/csv-to-json-transformer/pkg/logger"
	"github.com/twocentdev/csv-to-json-transformer/pkg/utils"
)

// Request describes one conversion: a file pair, the delimiter override, and
// the overwrite policy. Requests are values and never modified after
// construction.
type Request struct {
	InputPath  string
	OutputPath string
	Delimiter  string
	Overwrite  bool
}

// Status classifies the outcome of one request.
type Status string

const (
	StatusConverted          Status = "converted"
	StatusSkippedExists      Status = "skipped_exists"
	StatusSkippedUnsupported Status = "skipped_unsupported"
	StatusFailed             Status = "failed"
	StatusDryRun             Status = "dry_run"
)

// Result is the per-pair outcome.
type Result struct {
	Request  Request
	Status   Status
	Err      error
	Duration time.Duration
}

// Skipped reports whether the pair was passed over without touching files.
func (r Result) Skipped() bool {
	return r.Status == StatusSkippedExists || r.Status == StatusSkippedUnsupported
}

// Driver runs conversions sequentially according to the configuration.
type Driver struct {
	cfg *config.Config
	log logger.Logger

	// DryRun resolves and reports pairs without reading or writing any data.
	DryRun bool
}

// New creates a Driver. log may be nil.
func New(cfg *config.Config, log logger.Logger) *Driver {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Driver{cfg: cfg, log: log}
}

// Resolve builds the list of requests for a run. With batchFormat empty,
// input and output name a single file pair and input must be an existing
// file. With batchFormat set, both arguments must be existing directories and
// every file in the input directory maps to the output directory with its
// extension rewritten to batchFormat. Resolution failures are fatal for the
// whole run.
func (d *Driver) Resolve(input, output, batchFormat, delimiter string, overwrite bool) ([]Request, error) {
	if batchFormat == "" {
		d.log.Debug("single file mode", "input", input, "output", output)
		if err := validation.File(input); err != nil {
			return nil, err
		}
		return []Request{{
			InputPath:  input,
			OutputPath: output,
			Delimiter:  delimiter,
			Overwrite:  overwrite,
		}}, nil
	}

	d.log.Debug("batch mode", "input", input, "output", output, "format", batchFormat)
	if err := validation.Directory(input); err != nil {
		return nil, err
	}
	if err := validation.Directory(output); err != nil {
		return nil, err
	}

	files, err := utils.ListFiles(input)
	if err != nil {
		return nil, err
	}

	requests := make([]Request, 0, len(files))
	for _, name := range files {
		requests = append(requests, Request{
			InputPath:  filepath.Join(input, name),
			OutputPath: utils.RewriteExtension(output, name, batchFormat),
			Delimiter:  delimiter,
			Overwrite:  overwrite,
		})
	}
	d.log.Debug("resolved batch pairs", "count", len(requests))
	return requests, nil
}

// Run processes every request in order and returns one result per request.
// The returned error is non-nil only when a conversion failed and
// continue_on_error is disabled; results up to and including the failed pair
// are still returned.
func (d *Driver) Run(requests []Request) ([]Result, error) {
	results := make([]Result, 0, len(requests))

	for _, req := range requests {
		fmt.Printf("%s --> %s\n", req.InputPath, req.OutputPath)

		result := d.runOne(req)
		results = append(results, result)

		if result.Status == StatusFailed && !d.cfg.ContinueOnError {
			return results, result.Err
		}
	}
	return results, nil
}

// runOne processes a single request to completion.
func (d *Driver) runOne(req Request) Result {
	start := time.Now()
	result := Result{Request: req}

	if !req.Overwrite {
		if err := validation.NoFile(req.OutputPath); err != nil {
			d.log.Warn("cannot overwrite existing file, skipping pair",
				"output", req.OutputPath)
			result.Status = StatusSkippedExists
			result.Duration = time.Since(start)
			return result
		}
	}

	kind := transform.SelectKind(req.InputPath, req.OutputPath)
	if kind == transform.KindUnknown {
		d.log.Warn("no transformer for this file pair, skipping",
			"input", req.InputPath, "output", req.OutputPath)
		result.Status = StatusSkippedUnsupported
		result.Duration = time.Since(start)
		return result
	}

	if d.DryRun {
		result.Status = StatusDryRun
		result.Duration = time.Since(start)
		return result
	}

	if err := d.convert(req); err != nil {
		d.log.Error("conversion failed", "input", req.InputPath, "error", err)
		result.Status = StatusFailed
		result.Err = err
	} else {
		result.Status = StatusConverted
	}
	result.Duration = time.Since(start)
	return result
}

// convert runs the csv_to_json strategy, with the delimiter normalization
// pass in front when a non-comma delimiter was requested.
func (d *Driver) convert(req Request) error {
	options := jsonwriter.GenerateOptions{Indent: d.cfg.JSONIndent}

	source := req.InputPath
	if req.Delimiter != "" && req.Delimiter != transform.DefaultDelimiter {
		tempPath := transform.TempSiblingPath(req.InputPath)
		d.log.Debug("delimiter override requested, normalizing first",
			"delimiter", req.Delimiter, "temp", tempPath)

		normalizer := transform.NewDelimiter(req.InputPath, tempPath, req.Delimiter, d.log)
		if err := normalizer.Transform(); err != nil {
			d.removeTemp(tempPath)
			return err
		}
		defer d.removeTemp(tempPath)
		source = tempPath
	}

	converter := transform.NewCSVToJSONWithOptions(source, req.OutputPath, options, d.log)
	return converter.Transform()
}

// removeTemp deletes an intermediate file unless the configuration keeps it.
func (d *Driver) removeTemp(path string) {
	if !d.cfg.CleanupTempFiles {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		d.log.Warn("failed to remove intermediate file", "path", path, "error", err)
	}
}
