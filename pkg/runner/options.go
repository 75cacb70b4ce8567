// Package runner provides multi-file conversion orchestration.
package runner

import (
	"github.com/yaklabco/md2html/pkg/config"
	"github.com/yaklabco/md2html/pkg/document"
)

// Options controls multi-file conversion behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths and to
	// compute the mirrored layout under OutDir.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (with leading dot) considered
	// Markdown. Defaults to config.DefaultExtensions().
	Extensions []string

	// IncludeGlobs are doublestar patterns, relative to WorkingDir, that a file
	// must match. Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are doublestar patterns used to skip files or directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// OutDir mirrors output under this directory. Empty writes each HTML file
	// next to its source.
	OutDir string

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Write controls how each HTML file is written.
	Write document.WriteOptions
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
