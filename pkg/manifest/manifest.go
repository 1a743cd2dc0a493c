// Package manifest resolves the file manifest of a package. Two
// interchangeable strategies exist: a direct package-database query and an
// indexed query through the file-index tool. Both return the same shape,
// a list of absolute file paths; the indexed strategy is preferred when the
// tool is installed because it is much faster over large closures.
package manifest

import (
	"github.com/arthur-debert/payload/pkg/errors"
	"github.com/arthur-debert/payload/pkg/index"
	"github.com/arthur-debert/payload/pkg/pkgmgr"
)

// Resolver maps a package name to the files it owns.
type Resolver interface {
	Files(pkg string) ([]string, error)
}

// Mode selects the resolution strategy.
type Mode string

const (
	// ModeAuto picks indexed when the index tool is available, direct
	// otherwise.
	ModeAuto Mode = "auto"
	// ModeDirect always queries the package database.
	ModeDirect Mode = "direct"
	// ModeIndexed always queries the file index.
	ModeIndexed Mode = "indexed"
)

// ParseMode validates a mode string from flags or configuration.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAuto, ModeDirect, ModeIndexed:
		return Mode(s), nil
	case "":
		return ModeAuto, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown resolver mode %q", s)
}

type directResolver struct {
	mgr pkgmgr.Manager
}

func (r *directResolver) Files(pkg string) ([]string, error) {
	return r.mgr.OwnedFiles(pkg)
}

// Direct returns a Resolver that queries the package database.
func Direct(mgr pkgmgr.Manager) Resolver {
	return &directResolver{mgr: mgr}
}

type indexedResolver struct {
	ix *index.Indexer
}

func (r *indexedResolver) Files(pkg string) ([]string, error) {
	return r.ix.Files(pkg)
}

// Indexed returns a Resolver backed by the file-index tool.
func Indexed(ix *index.Indexer) Resolver {
	return &indexedResolver{ix: ix}
}

// Select builds the Resolver for the requested mode. ModeIndexed fails when
// the index tool is missing; ModeAuto quietly falls back to direct.
func Select(mode Mode, mgr pkgmgr.Manager, ix *index.Indexer) (Resolver, error) {
	switch mode {
	case ModeDirect:
		return Direct(mgr), nil
	case ModeIndexed:
		if !index.Available() {
			return nil, errors.New(errors.ErrToolMissing,
				"indexed resolver requested but pkgfile is not installed")
		}
		return Indexed(ix), nil
	case ModeAuto, "":
		if index.Available() {
			return Indexed(ix), nil
		}
		return Direct(mgr), nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown resolver mode %q", mode)
}
