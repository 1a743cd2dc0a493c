package pkgmgr

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/payload/pkg/errors"
	"github.com/arthur-debert/payload/pkg/logging"
)

const (
	pacmanBin  = "pacman"
	pactreeBin = "pactree"
)

// Pacman implements Manager on top of pacman and pactree.
type Pacman struct {
	runner Runner
	logger zerolog.Logger
}

// NewPacman creates a pacman-backed Manager.
func NewPacman(runner Runner) *Pacman {
	return &Pacman{
		runner: runner,
		logger: logging.GetLogger("pkgmgr.pacman"),
	}
}

func (p *Pacman) Name() string { return pacmanBin }

// Install installs packages with --needed so already-present packages are
// left alone, keeping repeated CI runs cheap.
func (p *Pacman) Install(pkgs ...string) error {
	if len(pkgs) == 0 {
		return nil
	}
	args := append([]string{"-S", "--needed", "--noconfirm"}, pkgs...)
	return p.runner.Run(pacmanBin, args...)
}

func (p *Pacman) DirectDeps(pkg string) ([]string, error) {
	out, err := p.runner.Output(pactreeBin, "-l", "-d", "1", pkg)
	if err != nil {
		return nil, err
	}
	return p.parseTree(pkg, out)
}

func (p *Pacman) TransitiveDeps(pkg string) ([]string, error) {
	out, err := p.runner.Output(pactreeBin, "-l", pkg)
	if err != nil {
		return nil, err
	}
	return p.parseTree(pkg, out)
}

// parseTree reads pactree -l output: one package name per line, the queried
// package included. The queried package is dropped and duplicates collapse.
func (p *Pacman) parseTree(pkg string, out []byte) ([]string, error) {
	var deps []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(string(out), "\n") {
		name := strings.TrimSpace(line)
		if name == "" || name == pkg || seen[name] {
			continue
		}
		seen[name] = true
		deps = append(deps, name)
	}
	p.logger.Trace().Str("package", pkg).Int("deps", len(deps)).Msg("Parsed dependency listing")
	return deps, nil
}

// OwnedFiles reads pacman -Ql output: "<package> <path>" per line, where
// directories end in a slash and are dropped.
func (p *Pacman) OwnedFiles(pkg string) ([]string, error) {
	out, err := p.runner.Output(pacmanBin, "-Ql", pkg)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 2)
		if len(fields) != 2 || fields[0] != pkg {
			return nil, errors.Newf(errors.ErrParse,
				"unexpected %s -Ql output line: %q", pacmanBin, line)
		}
		path := strings.TrimRight(fields[1], "\r")
		if strings.HasSuffix(path, "/") {
			continue
		}
		files = append(files, path)
	}
	p.logger.Trace().Str("package", pkg).Int("files", len(files)).Msg("Parsed file manifest")
	return files, nil
}
