package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twocentdev/csv-to-json-transformer/internal/config"
	"github.com/twocentdev/csv-to-json-transformer/internal/transform"
	"github.com/twocentdev/csv-to-json-transformer/internal/validation"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestResolveSingle(t *testing.T) {
	dir := t.TempDir()
	inputFile := filepath.Join(dir, "in.csv")
	outputFile := filepath.Join(dir, "out.json")
	writeFile(t, inputFile, "a,b\n1,2\n")

	driver := New(nil, nil)
	requests, err := driver.Resolve(inputFile, outputFile, "", ";", true)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, Request{
		InputPath:  inputFile,
		OutputPath: outputFile,
		Delimiter:  ";",
		Overwrite:  true,
	}, requests[0])
}

func TestResolveSingleMissingInput(t *testing.T) {
	dir := t.TempDir()
	driver := New(nil, nil)

	_, err := driver.Resolve(filepath.Join(dir, "nope.csv"), filepath.Join(dir, "out.json"), "", "", false)
	assert.ErrorIs(t, err, validation.ErrPathNotFound)
}

func TestResolveBatch(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	writeFile(t, filepath.Join(inDir, "a.csv"), "h\n1\n")
	writeFile(t, filepath.Join(inDir, "b.csv"), "h\n2\n")

	driver := New(nil, nil)
	requests, err := driver.Resolve(inDir, outDir, "json", "", false)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, filepath.Join(inDir, "a.csv"), requests[0].InputPath)
	assert.Equal(t, filepath.Join(outDir, "a.json"), requests[0].OutputPath)
	assert.Equal(t, filepath.Join(outDir, "b.json"), requests[1].OutputPath)
}

func TestResolveBatchMissingDirectories(t *testing.T) {
	dir := t.TempDir()
	driver := New(nil, nil)

	_, err := driver.Resolve(filepath.Join(dir, "missing"), dir, "json", "", false)
	assert.ErrorIs(t, err, validation.ErrPathNotFound)

	inputFile := filepath.Join(dir, "in.csv")
	writeFile(t, inputFile, "h\n1\n")
	_, err = driver.Resolve(inputFile, dir, "json", "", false)
	assert.ErrorIs(t, err, validation.ErrNotADirectory)
}

func TestRunConvertsWithDelimiter(t *testing.T) {
	dir := t.TempDir()
	inputFile := filepath.Join(dir, "a.csv")
	outputFile := filepath.Join(dir, "a.json")
	writeFile(t, inputFile, "name;age\nAda;36\n")

	driver := New(nil, nil)
	results, err := driver.Run([]Request{{
		InputPath:  inputFile,
		OutputPath: outputFile,
		Delimiter:  ";",
	}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, StatusConverted, results[0].Status)

	raw, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	var parsed []map[string]string
	require.NoError(t, json.Unmarshal(raw, &parsed))
	require.Len(t, parsed, 1)
	assert.Equal(t, map[string]string{"name": "Ada", "age": "36"}, parsed[0])

	// The intermediate normalized file is removed on the way out.
	assert.NoFileExists(t, transform.TempSiblingPath(inputFile))
}

func TestRunKeepsTempWhenConfigured(t *testing.T) {
	dir := t.TempDir()
	inputFile := filepath.Join(dir, "a.csv")
	writeFile(t, inputFile, "h;x\n1;2\n")

	cfg := config.Default()
	cfg.CleanupTempFiles = false
	driver := New(cfg, nil)

	_, err := driver.Run([]Request{{
		InputPath:  inputFile,
		OutputPath: filepath.Join(dir, "a.json"),
		Delimiter:  ";",
	}})
	require.NoError(t, err)
	assert.FileExists(t, transform.TempSiblingPath(inputFile))
}

func TestRunSkipsExistingOutput(t *testing.T) {
	dir := t.TempDir()
	firstIn := filepath.Join(dir, "a.csv")
	firstOut := filepath.Join(dir, "a.json")
	secondIn := filepath.Join(dir, "b.csv")
	secondOut := filepath.Join(dir, "b.json")
	writeFile(t, firstIn, "h\n1\n")
	writeFile(t, firstOut, "untouched")
	writeFile(t, secondIn, "h\n2\n")

	driver := New(nil, nil)
	results, err := driver.Run([]Request{
		{InputPath: firstIn, OutputPath: firstOut},
		{InputPath: secondIn, OutputPath: secondOut},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, StatusSkippedExists, results[0].Status)
	assert.True(t, results[0].Skipped())
	content, err := os.ReadFile(firstOut)
	require.NoError(t, err)
	assert.Equal(t, "untouched", string(content), "skipped output must not be modified")

	// The batch continues past the skip.
	assert.Equal(t, StatusConverted, results[1].Status)
	assert.FileExists(t, secondOut)
}

func TestRunOverwriteReplacesOutput(t *testing.T) {
	dir := t.TempDir()
	inputFile := filepath.Join(dir, "a.csv")
	outputFile := filepath.Join(dir, "a.json")
	writeFile(t, inputFile, "h\n1\n")
	writeFile(t, outputFile, "old")

	driver := New(nil, nil)
	results, err := driver.Run([]Request{{
		InputPath:  inputFile,
		OutputPath: outputFile,
		Overwrite:  true,
	}})
	require.NoError(t, err)
	assert.Equal(t, StatusConverted, results[0].Status)

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.NotEqual(t, "old", string(content))
}

func TestRunSkipsUnsupportedPair(t *testing.T) {
	dir := t.TempDir()
	txtIn := filepath.Join(dir, "a.txt")
	csvIn := filepath.Join(dir, "b.csv")
	writeFile(t, txtIn, "h\n1\n")
	writeFile(t, csvIn, "h\n2\n")

	driver := New(nil, nil)
	results, err := driver.Run([]Request{
		{InputPath: txtIn, OutputPath: filepath.Join(dir, "a.json")},
		{InputPath: csvIn, OutputPath: filepath.Join(dir, "b.json")},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, StatusSkippedUnsupported, results[0].Status)
	assert.NoFileExists(t, filepath.Join(dir, "a.json"))
	assert.Equal(t, StatusConverted, results[1].Status)
}

func TestRunContinueOnErrorDefault(t *testing.T) {
	dir := t.TempDir()
	okIn := filepath.Join(dir, "b.csv")
	writeFile(t, okIn, "h\n2\n")

	driver := New(nil, nil)
	results, err := driver.Run([]Request{
		// Input vanished between resolution and processing.
		{InputPath: filepath.Join(dir, "gone.csv"), OutputPath: filepath.Join(dir, "gone.json")},
		{InputPath: okIn, OutputPath: filepath.Join(dir, "b.json")},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, StatusFailed, results[0].Status)
	assert.Error(t, results[0].Err)
	assert.Equal(t, StatusConverted, results[1].Status)
}

func TestRunStopsOnErrorWhenConfigured(t *testing.T) {
	dir := t.TempDir()
	okIn := filepath.Join(dir, "b.csv")
	writeFile(t, okIn, "h\n2\n")

	cfg := config.Default()
	cfg.ContinueOnError = false
	driver := New(cfg, nil)

	results, err := driver.Run([]Request{
		{InputPath: filepath.Join(dir, "gone.csv"), OutputPath: filepath.Join(dir, "gone.json")},
		{InputPath: okIn, OutputPath: filepath.Join(dir, "b.json")},
	})
	require.Error(t, err)
	require.Len(t, results, 1, "run stops at the first failed pair")
	assert.Equal(t, StatusFailed, results[0].Status)
	assert.NoFileExists(t, filepath.Join(dir, "b.json"))
}

func TestRunDryRun(t *testing.T) {
	dir := t.TempDir()
	inputFile := filepath.Join(dir, "a.csv")
	outputFile := filepath.Join(dir, "a.json")
	writeFile(t, inputFile, "h\n1\n")

	driver := New(nil, nil)
	driver.DryRun = true
	results, err := driver.Run([]Request{{InputPath: inputFile, OutputPath: outputFile}})
	require.NoError(t, err)
	assert.Equal(t, StatusDryRun, results[0].Status)
	assert.NoFileExists(t, outputFile)
}

func TestSummarize(t *testing.T) {
	start := time.Now().Add(-time.Second)
	end := time.Now()
	results := []Result{
		{Request: Request{InputPath: "a.csv", OutputPath: "a.json"}, Status: StatusConverted},
		{Request: Request{InputPath: "b.csv", OutputPath: "b.json"}, Status: StatusSkippedExists},
		{Request: Request{InputPath: "c.csv", OutputPath: "c.json"}, Status: StatusFailed, Err: os.ErrNotExist},
	}

	summary := Summarize(results, start, end)
	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Converted)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Pairs, 3)
	assert.Equal(t, "converted", summary.Pairs[0].Status)
	assert.NotEmpty(t, summary.Pairs[2].Detail)
}
