package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/md2html/pkg/document"
	"github.com/yaklabco/md2html/pkg/reporter"
	"github.com/yaklabco/md2html/pkg/runner"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "summary", input: "summary", want: reporter.FormatSummary},
		{name: "unknown format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	tests := []struct {
		format reporter.Format
		want   bool
	}{
		{reporter.FormatText, true},
		{reporter.FormatJSON, true},
		{reporter.FormatSummary, true},
		{reporter.Format("sarif"), false},
		{reporter.Format(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.IsValid())
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		format  reporter.Format
		wantErr bool
	}{
		{name: "text reporter", format: reporter.FormatText},
		{name: "json reporter", format: reporter.FormatJSON},
		{name: "summary reporter", format: reporter.FormatSummary},
		{name: "empty defaults to text", format: ""},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: tt.format})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rep)
		})
	}
}

// sampleResult builds a result with one written, one unchanged, and one failed file.
func sampleResult(root string) *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path:   filepath.Join(root, "a.md"),
				Output: filepath.Join(root, "a.html"),
				Result: &document.Result{
					Input: filepath.Join(root, "a.md"),
					Lines: 3,
					Output: &document.WriteResult{
						Path:    filepath.Join(root, "a.html"),
						Written: true,
						Bytes:   20,
					},
				},
			},
			{
				Path:   filepath.Join(root, "docs", "b.md"),
				Output: filepath.Join(root, "docs", "b.html"),
				Result: &document.Result{
					Input: filepath.Join(root, "docs", "b.md"),
					Lines: 1,
					Output: &document.WriteResult{
						Path:  filepath.Join(root, "docs", "b.html"),
						Bytes: 10,
					},
				},
			},
			{
				Path:   filepath.Join(root, "c.md"),
				Output: filepath.Join(root, "c.html"),
				Error:  errors.New("permission denied"),
			},
		},
		Stats: runner.Stats{
			FilesDiscovered: 3,
			FilesConverted:  2,
			FilesWritten:    1,
			FilesUnchanged:  1,
			FilesErrored:    1,
			LinesRead:       4,
			BytesWritten:    30,
		},
	}
}

func TestTextReporter(t *testing.T) {
	root := t.TempDir()
	var buf bytes.Buffer

	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
		WorkingDir:  root,
	})

	failed, err := rep.Report(context.Background(), sampleResult(root))
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	out := buf.String()
	assert.Contains(t, out, "a.md -> a.html\n")
	assert.Contains(t, out, filepath.Join("docs", "b.md")+" -> "+filepath.Join("docs", "b.html")+" (unchanged)\n")
	assert.Contains(t, out, "c.md: error: permission denied\n")
	assert.Contains(t, out, "Converted 2 of 3 files, 1 written, 1 unchanged, 1 failed\n")
}

func TestTextReporter_Verbose(t *testing.T) {
	root := t.TempDir()
	var buf bytes.Buffer

	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
		Verbose:     true,
		WorkingDir:  root,
	})

	_, err := rep.Report(context.Background(), sampleResult(root))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Conversion failed")
}

func TestTextReporter_Empty(t *testing.T) {
	var buf bytes.Buffer

	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true})

	failed, err := rep.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Equal(t, 0, failed)
	assert.Equal(t, "No Markdown files found\n", buf.String())
}

func TestJSONReporter(t *testing.T) {
	root := t.TempDir()
	var buf bytes.Buffer

	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, WorkingDir: root})

	failed, err := rep.Report(context.Background(), sampleResult(root))
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0.0", output.Version)
	require.Len(t, output.Files, 3)

	assert.Equal(t, "a.md", output.Files[0].Path)
	assert.Equal(t, "a.html", output.Files[0].Output)
	assert.Equal(t, 3, output.Files[0].Lines)
	assert.True(t, output.Files[0].Written)

	assert.False(t, output.Files[1].Written)
	assert.Empty(t, output.Files[1].Error)

	assert.Equal(t, "permission denied", output.Files[2].Error)

	assert.Equal(t, 3, output.Summary.FilesDiscovered)
	assert.Equal(t, 2, output.Summary.FilesConverted)
	assert.Equal(t, 1, output.Summary.FilesErrored)
	assert.Equal(t, 30, output.Summary.BytesWritten)
}

func TestJSONReporter_Compact(t *testing.T) {
	var buf bytes.Buffer

	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, Compact: true})

	_, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")), "compact output is a single line")
	assert.Contains(t, buf.String(), `"files":[]`)
}

func TestSummaryReporter(t *testing.T) {
	root := t.TempDir()
	var out, errOut bytes.Buffer

	rep := reporter.NewSummaryReporter(reporter.Options{
		Writer:      &out,
		ErrorWriter: &errOut,
		Color:       "never",
		WorkingDir:  root,
	})

	failed, err := rep.Report(context.Background(), sampleResult(root))
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	assert.Equal(t, "Converted 2 of 3 files, 1 written, 1 unchanged, 1 failed\n", out.String())
	assert.Equal(t, "c.md: error: permission denied\n", errOut.String())
}
