package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/md2html/pkg/runner"
)

// jsonSchemaVersion identifies the layout of JSONOutput.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's outcome.
type JSONFileResult struct {
	Path     string `json:"path"`
	Output   string `json:"output"`
	Lines    int    `json:"lines"`
	Bytes    int    `json:"bytes"`
	Written  bool   `json:"written"`
	BackedUp bool   `json:"backedUp,omitempty"`
	Error    string `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int `json:"filesDiscovered"`
	FilesConverted  int `json:"filesConverted"`
	FilesWritten    int `json:"filesWritten"`
	FilesUnchanged  int `json:"filesUnchanged"`
	FilesErrored    int `json:"filesErrored"`
	FilesBackedUp   int `json:"filesBackedUp"`
	LinesRead       int `json:"linesRead"`
	BytesWritten    int `json:"bytesWritten"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.FilesErrored, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	stats := result.Stats
	output.Summary = JSONSummary{
		FilesDiscovered: stats.FilesDiscovered,
		FilesConverted:  stats.FilesConverted,
		FilesWritten:    stats.FilesWritten,
		FilesUnchanged:  stats.FilesUnchanged,
		FilesErrored:    stats.FilesErrored,
		FilesBackedUp:   stats.FilesBackedUp,
		LinesRead:       stats.LinesRead,
		BytesWritten:    stats.BytesWritten,
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:   displayPath(r.opts.WorkingDir, file.Path),
			Output: displayPath(r.opts.WorkingDir, file.Output),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}

		if file.Result != nil {
			fileResult.Lines = file.Result.Lines
			if written := file.Result.Output; written != nil {
				fileResult.Output = displayPath(r.opts.WorkingDir, written.Path)
				fileResult.Bytes = written.Bytes
				fileResult.Written = written.Written
				fileResult.BackedUp = written.BackedUp
			}
		}

		output.Files = append(output.Files, fileResult)
	}

	return output
}
