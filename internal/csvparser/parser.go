// =============================================================================
// CSV to JSON Transformer - CSV Parser
// =============================================================================
//
// Parses a strictly comma-delimited file into an ordered sequence of row
// records. The first row supplies the field names; every later row is zipped
// positionally against it:
//
//   - short rows simply omit the missing trailing keys
//   - extra values in long rows are dropped
//   - a duplicated header keeps the position of its first occurrence and the
//     value of its last occurrence
//
// Input is read as UTF-8; a leading byte-order mark is stripped. The whole
// file is materialized in memory, which is the intended shape for this tool.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
)

// utf8BOM is the UTF-8 encoded byte-order mark some exports prepend.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Data is the parsed content of one CSV file.
type Data struct {
	// Headers are the field names from the first row, in file order,
	// duplicates included.
	Headers []string

	// Records holds one ordered record per data row.
	Records []Record

	// SourceFile is the path the data was read from.
	SourceFile string
}

// RowCount returns the number of data rows (header excluded).
func (d *Data) RowCount() int {
	return len(d.Records)
}

// Parse reads a comma-delimited file and returns its records. A file with
// only a header row, or no rows at all, yields zero records and no error.
func Parse(filePath string) (*Data, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	if err := skipBOM(reader); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	csvReader := csv.NewReader(reader)
	configureReader(csvReader)

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	data := &Data{
		SourceFile: filePath,
		Records:    []Record{},
	}
	if len(allRows) == 0 {
		return data, nil
	}

	data.Headers = allRows[0]
	for _, row := range allRows[1:] {
		data.Records = append(data.Records, zipRecord(data.Headers, row))
	}
	return data, nil
}

// configureReader relaxes the reader so that ragged and loosely quoted input
// still parses, the way a dictionary reader would accept it.
func configureReader(reader *csv.Reader) {
	reader.Comma = ','
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
}

// skipBOM consumes a leading UTF-8 byte-order mark if one is present.
func skipBOM(reader *bufio.Reader) error {
	head, err := reader.Peek(len(utf8BOM))
	if err != nil {
		// Files shorter than the mark cannot carry one.
		return nil
	}
	if head[0] == utf8BOM[0] && head[1] == utf8BOM[1] && head[2] == utf8BOM[2] {
		if _, err := reader.Discard(len(utf8BOM)); err != nil {
			return err
		}
	}
	return nil
}

// zipRecord pairs one data row against the headers positionally.
func zipRecord(headers []string, row []string) Record {
	record := NewRecord()
	for i, header := range headers {
		if i >= len(row) {
			break
		}
		record.Set(header, row[i])
	}
	return record
}
