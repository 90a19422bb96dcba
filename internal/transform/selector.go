// =============================================================================
// CSV to JSON Transformer - Format Selector
// =============================================================================
//
// Maps a pair of file-extension suffixes to the transformer kind that handles
// it. The registry is a flat lookup table: supporting another pair is a new
// map entry plus its transformer, not a new branch chain.
//
// =============================================================================

package transform

import (
	"path/filepath"
	"strings"
)

// Kind identifies a conversion strategy.
type Kind string

const (
	// KindCSVToJSON converts a comma-delimited file into a JSON array.
	KindCSVToJSON Kind = "csv_to_json"

	// KindUnknown means no transformer handles the extension pair.
	KindUnknown Kind = "unknown"
)

// extensionPair keys the registry by lower-cased input and output suffixes.
type extensionPair struct {
	input  string
	output string
}

// registry holds every supported conversion. Only one pair ships today.
var registry = map[extensionPair]Kind{
	{input: "csv", output: "json"}: KindCSVToJSON,
}

// SelectKind inspects the extensions of both paths, case-insensitively, and
// returns the matching kind, or KindUnknown when no transformer exists for
// the combination.
func SelectKind(inputPath, outputPath string) Kind {
	pair := extensionPair{
		input:  normalizedExt(inputPath),
		output: normalizedExt(outputPath),
	}
	if kind, ok := registry[pair]; ok {
		return kind
	}
	return KindUnknown
}

// normalizedExt returns the file extension without its dot, lower-cased.
// A path with no extension normalizes to the empty string.
func normalizedExt(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
