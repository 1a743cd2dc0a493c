// Package testutil provides fakes and environment helpers shared by tests
// across the repository: an in-memory package manager serving a canned
// dependency graph, and helpers for seeding source trees.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/payload/pkg/errors"
	"github.com/arthur-debert/payload/pkg/types"
)

// FakeManager serves dependency and manifest queries from maps, recording
// every call. It satisfies pkgmgr.Manager and manifest.Resolver.
type FakeManager struct {
	// Deps maps package → direct dependencies.
	Deps map[string][]string

	// Manifests maps package → owned files. A package missing here fails
	// the query, mirroring an unknown package.
	Manifests map[string][]string

	// Installed records Install calls.
	Installed [][]string

	// FailInstall makes Install fail.
	FailInstall bool
}

// NewFakeManager creates an empty FakeManager.
func NewFakeManager() *FakeManager {
	return &FakeManager{
		Deps:      make(map[string][]string),
		Manifests: make(map[string][]string),
	}
}

func (f *FakeManager) Name() string { return "fake" }

func (f *FakeManager) Install(pkgs ...string) error {
	if f.FailInstall {
		return errors.New(errors.ErrSubprocess, "fake install failure")
	}
	f.Installed = append(f.Installed, pkgs)
	return nil
}

func (f *FakeManager) DirectDeps(pkg string) ([]string, error) {
	if _, ok := f.Manifests[pkg]; !ok {
		return nil, errors.Newf(errors.ErrPackageQuery, "unknown package %q", pkg)
	}
	return f.Deps[pkg], nil
}

func (f *FakeManager) TransitiveDeps(pkg string) ([]string, error) {
	if _, ok := f.Manifests[pkg]; !ok {
		return nil, errors.Newf(errors.ErrPackageQuery, "unknown package %q", pkg)
	}

	var closure []string
	seen := map[string]bool{pkg: true}
	worklist := append([]string(nil), f.Deps[pkg]...)
	for len(worklist) > 0 {
		next := worklist[0]
		worklist = worklist[1:]
		if seen[next] {
			continue
		}
		seen[next] = true
		closure = append(closure, next)
		worklist = append(worklist, f.Deps[next]...)
	}
	return closure, nil
}

func (f *FakeManager) OwnedFiles(pkg string) ([]string, error) {
	m, ok := f.Manifests[pkg]
	if !ok {
		return nil, errors.Newf(errors.ErrPackageQuery, "unknown package %q", pkg)
	}
	return m, nil
}

// Files implements manifest.Resolver on top of the canned manifests.
func (f *FakeManager) Files(pkg string) ([]string, error) {
	return f.OwnedFiles(pkg)
}

// SeedFiles writes the given path→content map under root on fs, creating
// parent directories.
func SeedFiles(t *testing.T, fs types.FS, root string, files map[string]string) {
	t.Helper()
	for path, content := range files {
		full := filepath.Join(root, path)
		require.NoError(t, fs.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, fs.WriteFile(full, []byte(content), 0644))
	}
}

// WriteProjectConfig writes a payload.toml with the given content into dir.
func WriteProjectConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t,
		os.WriteFile(filepath.Join(dir, "payload.toml"), []byte(content), 0644))
}
