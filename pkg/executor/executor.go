// Package executor runs a copy plan against the filesystem. Execution is
// incremental: a destination that already exists as a readable regular file
// is skipped, so re-running an assembly only copies what is missing.
package executor

import (
	"io"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/payload/pkg/errors"
	"github.com/arthur-debert/payload/pkg/filesystem"
	"github.com/arthur-debert/payload/pkg/logging"
	"github.com/arthur-debert/payload/pkg/types"
)

// Options contains configuration for the executor
type Options struct {
	// FS defaults to the OS filesystem.
	FS types.FS

	// DryRun logs what would be copied without touching the destination.
	DryRun bool

	// Logger defaults to a component logger on the global stream. The
	// per-file copy lines must reach CI output, so only an explicit
	// non-nil logger overrides that.
	Logger *zerolog.Logger
}

// Result summarizes a plan execution.
type Result struct {
	Copied  int
	Skipped int
}

// Executor copies plan entries between a source root and a destination root.
type Executor struct {
	fs     types.FS
	dryRun bool
	logger zerolog.Logger
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := logging.GetLogger("executor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	return &Executor{
		fs:     fs,
		dryRun: opts.DryRun,
		logger: logger,
	}
}

// Run executes the plan. Entry paths are joined with the roots; parent
// directories are created on demand. The first failure aborts the run with
// both paths in the error.
func (e *Executor) Run(plan types.CopyPlan, sourceRoot, destRoot string) (*Result, error) {
	result := &Result{}

	for _, entry := range plan {
		src := filepath.Join(sourceRoot, entry.Source)
		dst := filepath.Join(destRoot, entry.Dest)

		present, err := e.destPresent(dst)
		if err != nil {
			return nil, err
		}
		if present {
			e.logger.Debug().Str("destination", dst).Msg("Destination exists, skipping")
			result.Skipped++
			continue
		}

		if e.dryRun {
			e.logger.Info().Str("source", src).Str("destination", dst).Msg("Would copy file")
			result.Copied++
			continue
		}

		if err := e.copyFile(src, dst); err != nil {
			return nil, err
		}
		// One line per file keeps CI output greppable.
		e.logger.Info().Str("source", src).Str("destination", dst).Msg("Copied file")
		result.Copied++
	}

	return result, nil
}

// destPresent reports whether dst already exists as a readable regular
// file. Anything else (missing, directory, unreadable) means the copy must
// run and surface its own error.
func (e *Executor) destPresent(dst string) (bool, error) {
	info, err := e.fs.Stat(dst)
	if err != nil {
		return false, nil
	}
	if !info.Mode().IsRegular() {
		return false, nil
	}
	f, err := e.fs.Open(dst)
	if err != nil {
		return false, nil
	}
	_ = f.Close()
	return true, nil
}

func (e *Executor) copyFile(src, dst string) error {
	info, err := e.fs.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat source %s", src).
			WithDetail("source", src).
			WithDetail("destination", dst)
	}
	if !info.Mode().IsRegular() {
		return errors.Newf(errors.ErrFileCopy, "source %s is not a regular file", src).
			WithDetail("source", src).
			WithDetail("destination", dst)
	}

	if err := e.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory for %s", dst).
			WithDetail("source", src).
			WithDetail("destination", dst)
	}

	in, err := e.fs.Open(src)
	if err != nil {
		return copyError(err, src, dst)
	}
	defer func() { _ = in.Close() }()

	out, err := e.fs.Create(dst)
	if err != nil {
		return copyError(err, src, dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return copyError(err, src, dst)
	}
	if err := out.Close(); err != nil {
		return copyError(err, src, dst)
	}
	return nil
}

func copyError(err error, src, dst string) error {
	return errors.Wrapf(err, errors.ErrFileCopy, "copying %s to %s", src, dst).
		WithDetail("source", src).
		WithDetail("destination", dst)
}
