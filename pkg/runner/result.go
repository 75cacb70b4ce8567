package runner

import "github.com/yaklabco/md2html/pkg/document"

// FileOutcome records what happened to one source file.
type FileOutcome struct {
	// Path is the source file that was processed.
	Path string

	// Output is the HTML path the source maps to.
	Output string

	// Result contains the conversion result. Nil when Error is set.
	Result *document.Result

	// Error is set if the file could not be converted.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesConverted is the number of files converted without error.
	FilesConverted int

	// FilesWritten is the number of converted files whose output changed on disk.
	FilesWritten int

	// FilesUnchanged is the number of converted files whose output was already current.
	FilesUnchanged int

	// FilesErrored is the number of files that could not be converted.
	FilesErrored int

	// FilesBackedUp is the number of previous outputs saved aside.
	FilesBackedUp int

	// LinesRead is the total number of source lines.
	LinesRead int

	// BytesWritten is the total size of the rendered HTML.
	BytesWritten int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file failed to convert.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil || outcome.Result == nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesConverted++
	r.Stats.LinesRead += outcome.Result.Lines

	written := outcome.Result.Output
	if written == nil {
		return
	}

	r.Stats.BytesWritten += written.Bytes
	if written.Written {
		r.Stats.FilesWritten++
	} else {
		r.Stats.FilesUnchanged++
	}
	if written.BackedUp {
		r.Stats.FilesBackedUp++
	}
}
