package transform

import (
	"fmt"

	"github.com/twocentdev/csv-to-json-transformer/internal/csvparser"
	"github.com/twocentdev/csv-to-json-transformer/internal/jsonwriter"
	"github.com/twocentdev/csv-to-json-transformer/pkg/logger"
)

// CSVToJSONTransformer reads a comma-delimited file and writes its rows as an
// indented JSON array of objects. The document is fully materialized in
// memory before anything is written.
type CSVToJSONTransformer struct {
	filePair
	options jsonwriter.GenerateOptions
}

// NewCSVToJSON creates a transformer for the given file pair using the
// default four-space indentation. log may be nil.
func NewCSVToJSON(inputFile, outputFile string, log logger.Logger) *CSVToJSONTransformer {
	return NewCSVToJSONWithOptions(inputFile, outputFile, jsonwriter.DefaultGenerateOptions(), log)
}

// NewCSVToJSONWithOptions creates a transformer with explicit serialization
// options.
func NewCSVToJSONWithOptions(inputFile, outputFile string, options jsonwriter.GenerateOptions, log logger.Logger) *CSVToJSONTransformer {
	return &CSVToJSONTransformer{
		filePair: newFilePair(inputFile, outputFile, log),
		options:  options,
	}
}

// Transform parses the input and writes the JSON document. A header-only or
// empty input produces the empty array.
func (t *CSVToJSONTransformer) Transform() error {
	t.log.Debug("starting csv_to_json transform",
		"input", t.inputFile, "output", t.outputFile)

	data, err := csvparser.Parse(t.inputFile)
	if err != nil {
		return fmt.Errorf("csv_to_json %s: %w", t.inputFile, err)
	}
	t.log.Debug("csv parsed", "input", t.inputFile, "rows", data.RowCount())

	document, err := jsonwriter.Generate(data.Records, t.options)
	if err != nil {
		return fmt.Errorf("csv_to_json %s: %w", t.inputFile, err)
	}

	if err := jsonwriter.WriteFile(t.outputFile, document); err != nil {
		return fmt.Errorf("csv_to_json %s: %w", t.outputFile, err)
	}

	t.log.Debug("csv_to_json transform complete",
		"output", t.outputFile, "rows", data.RowCount())
	return nil
}
