package eq2svg

import (
	"io"
	"os/exec"
)

// CommandRunner abstracts external process execution to enable testing
// without real subprocesses. Run blocks until the process exits and
// returns a non-nil error for spawn failures and non-zero exits alike.
type CommandRunner interface {
	Run(name string, args ...string) error
}

// ExecRunner implements CommandRunner using os/exec, discarding the
// child's standard output and error streams.
type ExecRunner struct{}

func (ExecRunner) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...) // #nosec G204 -- tool names come from configuration
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}
