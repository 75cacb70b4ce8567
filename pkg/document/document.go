// Package document connects the converter to the file system: it reads a
// Markdown file into lines and writes the rendered HTML back out.
package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/md2html/pkg/convert"
	"github.com/yaklabco/md2html/pkg/fsutil"
)

// HTMLExtension is appended to output paths that do not already end in it.
const HTMLExtension = ".html"

// ReadLines reads the file at path and splits it into lines.
// Line terminators (\n, \r\n or a lone \r) are removed. A trailing newline does not start
// an extra empty line, so an empty file yields no lines.
// A missing file returns an error wrapping fsutil.ErrNotFound.
func ReadLines(ctx context.Context, path string) ([]string, error) {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return SplitLines(string(content)), nil
}

// newlines folds \r\n and lone \r terminators into \n.
//
//nolint:gochecknoglobals // Read-only replacer.
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// SplitLines splits text the way ReadLines does.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(newlines.Replace(text), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// OutputPath returns path with HTMLExtension appended unless it already ends in it.
func OutputPath(path string) string {
	if strings.HasSuffix(path, HTMLExtension) {
		return path
	}
	return path + HTMLExtension
}

// WriteOptions controls how HTML is written.
type WriteOptions struct {
	// Backup copies an existing output aside before it is replaced.
	Backup fsutil.BackupConfig
}

// WriteResult describes a completed write.
type WriteResult struct {
	// Path is the final output path, after OutputPath was applied.
	Path string

	// Written is false when the target already held identical content.
	Written bool

	// BackedUp is true when the previous output was saved aside.
	BackedUp bool

	// Bytes is the size of the rendered HTML.
	Bytes int
}

// WriteHTML writes html to OutputPath(path) atomically.
func WriteHTML(ctx context.Context, path, html string, opts WriteOptions) (*WriteResult, error) {
	result := &WriteResult{
		Path:  OutputPath(path),
		Bytes: len(html),
	}

	existing, _, err := fsutil.ReadFile(ctx, result.Path)
	if err == nil && string(existing) == html {
		return result, nil
	}

	backedUp, err := fsutil.CreateBackup(ctx, result.Path, opts.Backup)
	if err != nil {
		return nil, fmt.Errorf("write html: %w", err)
	}
	result.BackedUp = backedUp

	if err := fsutil.WriteAtomic(ctx, result.Path, []byte(html), fsutil.DefaultFileMode); err != nil {
		return nil, fmt.Errorf("write html: %w", err)
	}
	result.Written = true

	return result, nil
}

// Options configures ConvertFile.
type Options struct {
	// Converter renders the lines. Nil uses a Converter without tracing.
	Converter *convert.Converter

	// Write controls how the output is written.
	Write WriteOptions
}

// Result describes one converted file.
type Result struct {
	// Input is the source path.
	Input string

	// Lines is the number of source lines read.
	Lines int

	// Output describes the written HTML.
	Output *WriteResult
}

// ConvertFile reads input, converts it, and writes the HTML to output.
func ConvertFile(ctx context.Context, input, output string, opts Options) (*Result, error) {
	conv := opts.Converter
	if conv == nil {
		conv = convert.New(convert.Options{})
	}

	lines, err := ReadLines(ctx, input)
	if err != nil {
		return nil, err
	}

	written, err := WriteHTML(ctx, output, conv.Convert(lines), opts.Write)
	if err != nil {
		return nil, err
	}

	return &Result{
		Input:  input,
		Lines:  len(lines),
		Output: written,
	}, nil
}
