package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/yaklabco/md2html/pkg/fsutil"
)

// Exit codes for md2html.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates that one or more conversions failed.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrUsage is returned when the command line has the wrong shape.
	ErrUsage = errors.New("invalid usage")

	// ErrConfig is returned when configuration cannot be loaded or is invalid.
	ErrConfig = errors.New("failed to load configuration")

	// ErrConversionFailed is returned when at least one batch file failed.
	ErrConversionFailed = errors.New("conversion failed")
)

// codedError pins the exit code of the error it wraps.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }

func (e *codedError) Unwrap() error { return e.err }

// withExitCode makes ExitCode report code for err, whatever err wraps.
func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &codedError{code: code, err: err}
}

// ExitCode maps an error returned by a command to a process exit code.
// Single-file conversion pins its usage and I/O failures to ExitFailure;
// batch, init and configuration errors use the codes below.
func ExitCode(err error) int {
	var (
		coded   *codedError
		pathErr *fs.PathError
		linkErr *os.LinkError
	)

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &coded):
		return coded.code
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrConversionFailed):
		return ExitFailure
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.As(err, &pathErr),
		errors.As(err, &linkErr):
		return ExitIOError
	default:
		return ExitFailure
	}
}
