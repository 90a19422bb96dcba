// =============================================================================
// CSV to JSON Transformer - JSON Writer
// =============================================================================
//
// Serializes a parsed document as a pretty-printed JSON array of objects.
// The whole array is generated in memory and written in one piece; the output
// is never line-delimited JSON. Object keys follow record order because
// csvparser.Record carries its own marshaler.
//
// =============================================================================

package jsonwriter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/twocentdev/csv-to-json-transformer/internal/csvparser"
)

// GenerateOptions controls the serialized form of the document.
type GenerateOptions struct {
	// Indent is the number of spaces per indentation level.
	Indent int
}

// DefaultGenerateOptions returns the standard output shape: four-space indent.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{Indent: 4}
}

// Generate serializes records as an indented JSON array. Zero records yield
// the empty array, not null.
func Generate(records []csvparser.Record, options GenerateOptions) ([]byte, error) {
	if records == nil {
		records = []csvparser.Record{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", strings.Repeat(" ", options.Indent))

	if err := encoder.Encode(records); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	// Encode appends a newline after the closing bracket; the document ends
	// at the bracket itself.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteFile writes the serialized document to outputPath as UTF-8 without a
// byte-order mark.
func WriteFile(outputPath string, document []byte) error {
	if err := os.WriteFile(outputPath, document, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
