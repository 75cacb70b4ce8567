package reporter

import (
	"context"
	"fmt"
	"io"

	"github.com/yaklabco/md2html/internal/ui/pretty"
	"github.com/yaklabco/md2html/pkg/runner"
)

// SummaryReporter prints only aggregate statistics. Failed files are still
// listed on ErrorWriter so they are never silently dropped.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	var stats runner.Stats
	if result != nil {
		stats = result.Stats
		if r.opts.ErrorWriter != nil {
			for _, file := range result.Files {
				if file.Error == nil {
					continue
				}
				if _, err := fmt.Fprint(r.opts.ErrorWriter, r.styles.FormatFileError(displayPath(r.opts.WorkingDir, file.Path), file.Error)); err != nil {
					return 0, fmt.Errorf("write error: %w", err)
				}
			}
		}
	}

	summary := r.styles.FormatSummaryOneLine(stats)
	if r.opts.Verbose {
		summary = r.styles.FormatSummary(stats)
	}
	if _, err := fmt.Fprint(r.out, summary); err != nil {
		return 0, fmt.Errorf("write summary: %w", err)
	}

	return stats.FilesErrored, nil
}
