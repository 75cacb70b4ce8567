package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/md2html/pkg/convert"
	"github.com/yaklabco/md2html/pkg/document"
)

// ErrOutputConflict reports a source whose HTML destination is already claimed
// by an earlier source in the same run.
var ErrOutputConflict = errors.New("output path conflict")

// job pairs a source file with its HTML destination.
type job struct {
	path   string
	output string
}

// Runner converts many Markdown files concurrently.
// Each document is converted by a single goroutine; documents never share state.
type Runner struct {
	// Converter renders each document.
	Converter *convert.Converter
}

// New creates a new Runner with the given converter.
// A nil converter is replaced by one without tracing.
func New(conv *convert.Converter) *Runner {
	if conv == nil {
		conv = convert.New(convert.Options{})
	}
	return &Runner{Converter: conv}
}

// Run discovers files under opts.Paths and converts them with a worker pool.
// Outcomes are returned in sorted path order regardless of completion order.
// Per-file failures are recorded in the outcome; Run only returns an error
// when discovery fails or ctx is cancelled.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	outcomes := make(map[string]FileOutcome, len(files))
	work := planJobs(files, workDir, opts.OutDir, outcomes)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(work))

	docOpts := document.Options{Converter: r.Converter, Write: opts.Write}

	workCh := make(chan job)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, docOpts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, j := range work {
			select {
			case <-ctx.Done():
				return
			case workCh <- j:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// planJobs maps every file to its destination in sorted path order. A file
// whose destination was already claimed is not converted; its outcome is
// recorded in conflicts with ErrOutputConflict instead.
func planJobs(files []string, workDir, outDir string, conflicts map[string]FileOutcome) []job {
	work := make([]job, 0, len(files))
	claimed := make(map[string]string, len(files))

	for _, path := range files {
		output := OutputPath(path, workDir, outDir)
		if owner, taken := claimed[output]; taken {
			conflicts[path] = FileOutcome{
				Path:   path,
				Output: output,
				Error:  fmt.Errorf("%w: %s is already written from %s", ErrOutputConflict, output, owner),
			}
			continue
		}
		claimed[output] = path
		work = append(work, job{path: path, output: output})
	}

	return work
}

// worker converts files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan job,
	outCh chan<- FileOutcome,
	opts document.Options,
) {
	for j := range workCh {
		outcome := FileOutcome{
			Path:   j.path,
			Output: j.output,
		}

		res, err := document.ConvertFile(ctx, j.path, j.output, opts)
		if err != nil {
			outcome.Error = err
		} else {
			outcome.Result = res
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
