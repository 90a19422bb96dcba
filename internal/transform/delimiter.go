package transform

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/twocentdev/csv-to-json-transformer/pkg/logger"
)

// DefaultDelimiter is the separator the CSV-to-JSON transformer requires.
const DefaultDelimiter = ","

// tempSuffix is appended to the input file's stem when naming the
// intermediate comma-delimited file.
const tempSuffix = "_temp"

// DelimiterTransformer rewrites a delimited text file, replacing every
// literal occurrence of its delimiter with a comma. It is a plain substring
// substitution: a delimiter character inside a quoted field is replaced too.
// That corruption is a known limitation of the normalization pass, kept
// deliberately.
type DelimiterTransformer struct {
	filePair
	delimiter string
}

// NewDelimiter creates a normalizer for the given file pair. An empty
// delimiter means comma, which makes the pass a byte-for-byte copy. log may
// be nil.
func NewDelimiter(inputFile, outputFile, delimiter string, log logger.Logger) *DelimiterTransformer {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	return &DelimiterTransformer{
		filePair:  newFilePair(inputFile, outputFile, log),
		delimiter: delimiter,
	}
}

// Delimiter returns the separator being replaced.
func (t *DelimiterTransformer) Delimiter() string {
	return t.delimiter
}

// Transform streams the input line by line, substituting the delimiter, and
// writes the result to the output file. Line order and trailing-newline
// structure are preserved exactly; nothing else about the bytes is touched.
func (t *DelimiterTransformer) Transform() error {
	t.log.Debug("starting delimiter normalization",
		"input", t.inputFile, "output", t.outputFile, "delimiter", t.delimiter)

	input, err := os.Open(t.inputFile)
	if err != nil {
		return fmt.Errorf("normalize %s: %w", t.inputFile, err)
	}
	defer input.Close()

	output, err := os.Create(t.outputFile)
	if err != nil {
		return fmt.Errorf("normalize %s: %w", t.outputFile, err)
	}
	defer output.Close()

	reader := bufio.NewReader(input)
	writer := bufio.NewWriter(output)

	for {
		line, readErr := reader.ReadString('\n')
		if line != "" {
			if _, err := writer.WriteString(strings.ReplaceAll(line, t.delimiter, DefaultDelimiter)); err != nil {
				return fmt.Errorf("normalize %s: %w", t.outputFile, err)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("normalize %s: %w", t.inputFile, readErr)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("normalize %s: %w", t.outputFile, err)
	}
	if err := output.Close(); err != nil {
		return fmt.Errorf("normalize %s: %w", t.outputFile, err)
	}

	t.log.Debug("delimiter normalization complete", "output", t.outputFile)
	return nil
}

// TempSiblingPath returns the path of the intermediate file the normalizer
// writes next to the input: the same stem with "_temp" appended, keeping the
// original extension. "data/in.csv" becomes "data/in_temp.csv".
func TempSiblingPath(inputFile string) string {
	ext := filepath.Ext(inputFile)
	stem := strings.TrimSuffix(inputFile, ext)
	return stem + tempSuffix + ext
}
