// Package paths provides centralized path handling for payload.
// It implements XDG Base Directory compliance for payload's own files and
// the discovery rules for the filter configuration document.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// EnvConfigDir overrides the XDG config directory for payload.
const EnvConfigDir = "PAYLOAD_CONFIG_DIR"

// AppDirName is the directory name for payload-specific files under the
// XDG base directories.
const AppDirName = "payload"

// ConfigFileNames are the file names probed, in order, when discovering a
// configuration document.
var ConfigFileNames = []string{
	".payload.toml",
	"payload.toml",
	".payload.yaml",
	"payload.yaml",
}

// Paths resolves the directories payload reads and writes.
type Paths struct {
	configDir string
}

// New creates a Paths instance, applying environment overrides over the
// XDG defaults.
func New() *Paths {
	p := &Paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = dir
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	return p
}

// ConfigDir returns the per-user configuration directory.
func (p *Paths) ConfigDir() string { return p.configDir }

// FindUserConfig returns the path of the first configuration document
// found in the per-user config directory, or an empty string.
func (p *Paths) FindUserConfig() string {
	return findConfig(p.configDir)
}

// FindProjectConfig returns the path of the first configuration document
// found in dir, or an empty string when none exists.
func FindProjectConfig(dir string) string {
	return findConfig(dir)
}

func findConfig(dir string) string {
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
