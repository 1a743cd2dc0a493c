// Package index adapts the fast file-index tool (pkgfile) used to resolve
// package file manifests without hitting the package database. The index is
// refreshed once per process, lazily, before first use; the readiness flag
// lives on the Indexer itself so no ambient global state is involved.
package index

import (
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/payload/pkg/errors"
	"github.com/arthur-debert/payload/pkg/logging"
	"github.com/arthur-debert/payload/pkg/pkgmgr"
)

const pkgfileBin = "pkgfile"

// Indexer wraps the pkgfile tool. Construct it once and inject it wherever
// indexed manifest resolution is wanted.
type Indexer struct {
	runner pkgmgr.Runner
	logger zerolog.Logger
	fresh  bool
}

// New creates an Indexer. The index is not refreshed until first use.
func New(runner pkgmgr.Runner) *Indexer {
	return &Indexer{
		runner: runner,
		logger: logging.GetLogger("index"),
	}
}

// Available reports whether the index tool is installed.
func Available() bool {
	_, err := exec.LookPath(pkgfileBin)
	return err == nil
}

// ensureFresh refreshes the file index exactly once per process lifetime.
func (ix *Indexer) ensureFresh() error {
	if ix.fresh {
		return nil
	}
	ix.logger.Info().Msg("Refreshing file index")
	if err := ix.runner.Run(pkgfileBin, "--update"); err != nil {
		return err
	}
	ix.fresh = true
	return nil
}

// Files returns the file paths the index records for pkg. Output lines have
// the form "<package>\t<path>"; anything else is a parse error.
func (ix *Indexer) Files(pkg string) ([]string, error) {
	if err := ix.ensureFresh(); err != nil {
		return nil, err
	}

	out, err := ix.runner.Output(pkgfileBin, "--list", pkg)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 {
			return nil, errors.Newf(errors.ErrParse,
				"unexpected %s output line: %q", pkgfileBin, line)
		}
		path := strings.TrimRight(fields[1], "\r")
		if strings.HasSuffix(path, "/") {
			continue
		}
		files = append(files, path)
	}
	ix.logger.Trace().Str("package", pkg).Int("files", len(files)).Msg("Indexed manifest resolved")
	return files, nil
}
