// Package types holds the small set of types shared across payload's
// packages: the filesystem abstraction and the copy-plan value types.
package types

import (
	"io"
	"io/fs"
)

// FS abstracts the filesystem operations payload performs so the copy
// pipeline can run against the real OS or an in-memory filesystem in tests.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (fs.File, error)
	Create(name string) (io.WriteCloser, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
}

// CopyEntry is one source→destination pair of a copy plan. Both paths are
// relative to the roots supplied when the plan is executed; the walker emits
// them as reported by the package manager, the executor joins them with the
// source and destination roots.
type CopyEntry struct {
	Source string
	Dest   string
}

// CopyPlan is the ordered, destination-deduplicated list of files to copy.
type CopyPlan []CopyEntry

// Dests returns the destination paths of the plan, in plan order.
func (p CopyPlan) Dests() []string {
	dests := make([]string, len(p))
	for i, e := range p {
		dests[i] = e.Dest
	}
	return dests
}
