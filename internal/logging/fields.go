// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldBackup     = "backup"

	// Configuration fields.
	FieldJobs   = "jobs"
	FieldOutDir = "out_dir"
	FieldFormat = "format"
	FieldFiles  = "files"

	// Statistics fields.
	FieldLines           = "lines"
	FieldBytes           = "bytes"
	FieldFilesDiscovered = "files_discovered"
	FieldFilesConverted  = "files_converted"
	FieldFilesErrored    = "files_errored"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
