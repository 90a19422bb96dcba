// =============================================================================
// CSV to JSON Transformer - Transformers
// =============================================================================
//
// The two conversion routines. Each transformer is constructed with its file
// pair plus an optional structured-event hook and performs exactly one pass
// from input to output when Transform is called.
//
// =============================================================================

package transform

import (
	"github.com/twocentdev/csv-to-json-transformer/pkg/logger"
)

// Transformer reads data in one format from its input file and serializes it
// in another format to its output file.
type Transformer interface {
	// Transform performs the conversion. The input file must exist; the
	// output file is created or truncated.
	Transform() error

	// InputFile returns the path read from.
	InputFile() string

	// OutputFile returns the path written to.
	OutputFile() string
}

var (
	_ Transformer = (*CSVToJSONTransformer)(nil)
	_ Transformer = (*DelimiterTransformer)(nil)
)

// filePair carries the paths and the event hook shared by all transformers.
type filePair struct {
	inputFile  string
	outputFile string
	log        logger.Logger
}

func newFilePair(inputFile, outputFile string, log logger.Logger) filePair {
	if log == nil {
		log = logger.Nop()
	}
	return filePair{inputFile: inputFile, outputFile: outputFile, log: log}
}

func (p filePair) InputFile() string {
	return p.inputFile
}

func (p filePair) OutputFile() string {
	return p.outputFile
}
