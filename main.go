// =============================================================================
// CSV to JSON Transformer - Main Entry Point
// =============================================================================
//
// Command line tool that converts delimited text files into JSON documents.
// All command handling lives in the cmd package (Cobra); core conversion
// logic lives under internal/.
//
// USAGE:
//   transformer transform INPUT OUTPUT   - Convert one file, or a directory in batch mode
//   transformer version                  - Display the application version
//
// =============================================================================

package main

import (
	"github.com/twocentdev/csv-to-json-transformer/cmd"
)

func main() {
	cmd.Execute()
}
