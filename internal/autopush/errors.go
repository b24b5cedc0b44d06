package autopush

import "fmt"

// Commands as reported in diagnostics
const (
	CmdAdd    = "git add ."
	CmdStatus = "git status --porcelain"
	CmdCommit = "git commit"
	CmdPush   = "git push"
)

// CommandError reports which git command failed
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("error running command: %s: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func commandError(command string, err error) error {
	return &CommandError{Command: command, Err: err}
}
