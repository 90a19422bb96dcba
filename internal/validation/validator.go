// =============================================================================
// CSV to JSON Transformer - Path Validation
// =============================================================================
//
// Validation of the paths handed to the conversion pipeline. Each check
// returns an error wrapping one of the sentinel values below, so callers can
// classify failures with errors.Is:
//
//   - fatal before the run starts: ErrPathNotFound, ErrNotAFile,
//     ErrNotADirectory on the top-level arguments
//   - recoverable per pair: ErrOutputExists (overwrite disabled),
//     ErrUnsupportedConversion (no strategy for the extension pair)
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for the failure taxonomy. I/O failures during an individual
// conversion are not part of this set; they surface as plain wrapped errors.
var (
	ErrPathNotFound          = errors.New("path does not exist")
	ErrNotADirectory         = errors.New("path is not a directory")
	ErrNotAFile              = errors.New("path is not a file")
	ErrOutputExists          = errors.New("output file already exists")
	ErrUnsupportedConversion = errors.New("no transformer for this file pair")
)

// File checks that path exists and is a regular file.
func File(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", path, ErrPathNotFound)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrNotAFile)
	}
	return nil
}

// Directory checks that path exists and is a directory.
func Directory(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", path, ErrPathNotFound)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrNotADirectory)
	}
	return nil
}

// NoFile checks that path does not exist yet. Used for output paths when
// overwrite mode is disabled.
func NoFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, ErrOutputExists)
	}
	return nil
}
