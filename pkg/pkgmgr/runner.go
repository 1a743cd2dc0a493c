package pkgmgr

import (
	"bytes"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/payload/pkg/errors"
	"github.com/arthur-debert/payload/pkg/logging"
)

// Runner executes external commands. Queries go through Output, mutating
// commands (package installation) through Run. Both are synchronous and
// blocking; a non-zero exit is always an error carrying the command
// identity. There is no retry and no timeout wrapping: a broken or hanging
// tool fails or hangs the whole run, which is the behavior installer builds
// want.
type Runner interface {
	// Output runs the command and returns its stdout.
	Output(name string, args ...string) ([]byte, error)

	// Run runs the command, forwarding its output to the user.
	Run(name string, args ...string) error
}

// execRunner is the os/exec backed Runner used in production.
type execRunner struct{}

// NewRunner creates the default subprocess runner.
func NewRunner() Runner {
	return &execRunner{}
}

func (r *execRunner) Output(name string, args ...string) ([]byte, error) {
	logging.LogCommand(name, args)

	var stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSubprocess,
			"%s failed", commandLine(name, args)).
			WithDetail("stderr", strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

func (r *execRunner) Run(name string, args ...string) error {
	logging.LogCommand(name, args)

	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrSubprocess,
			"%s failed", commandLine(name, args))
	}
	return nil
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
