// Package pkgmgr adapts the platform package manager's CLI to the four
// query shapes the assembler needs: install, direct dependencies, transitive
// dependencies, and per-package file manifests.
package pkgmgr

import (
	"os/exec"

	"github.com/arthur-debert/payload/pkg/errors"
)

// Manager is the package-manager query surface. Implementations shell out
// to platform tools; every failure is fatal to the caller (no retries).
type Manager interface {
	// Name identifies the manager for logs and error messages.
	Name() string

	// Install installs the named packages, skipping ones already present.
	Install(pkgs ...string) error

	// DirectDeps returns the depth-1 dependencies of pkg, excluding pkg
	// itself.
	DirectDeps(pkg string) ([]string, error)

	// TransitiveDeps returns the full dependency closure of pkg, excluding
	// pkg itself.
	TransitiveDeps(pkg string) ([]string, error)

	// OwnedFiles returns the absolute file paths owned by pkg, directories
	// excluded.
	OwnedFiles(pkg string) ([]string, error)
}

// Detect returns the package manager available on this host. Currently
// pacman (Arch, MSYS2) is the only supported backend.
func Detect(runner Runner) (Manager, error) {
	if _, err := exec.LookPath(pacmanBin); err == nil {
		return NewPacman(runner), nil
	}
	return nil, errors.Newf(errors.ErrToolMissing,
		"no supported package manager found (looked for %s)", pacmanBin)
}
