package utils

import (
	"context"
	"io"
	"os/exec"
)

// The Executor interface provides a way to run commands and pipe input to them
type Executor interface {
	Run(combined bool, cmd string, arguments ...string) ([]byte, error)
	Pipe(stdin io.Reader, combined bool, cmd string, arguments ...string) ([]byte, error)
	PipeContext(ctx context.Context, stdin io.Reader, combined bool, cmd string, arguments ...string) ([]byte, error)
}

type CommandExecutor struct {
}

func (c *CommandExecutor) Run(combined bool, cmd string, arguments ...string) ([]byte, error) {
	command := exec.Command(cmd, arguments...)
	if combined {
		return command.CombinedOutput()
	} else {
		return command.Output()
	}
}

func (c *CommandExecutor) Pipe(stdin io.Reader, combined bool, cmd string, arguments ...string) ([]byte, error) {
	command := exec.Command(cmd, arguments...)
	command.Stdin = stdin
	if combined {
		return command.CombinedOutput()
	} else {
		return command.Output()
	}
}

// PipeContext is Pipe with a context attached to the command. The process is
// killed when the context is cancelled or times out.
func (c *CommandExecutor) PipeContext(
	ctx context.Context,
	stdin io.Reader,
	combined bool,
	cmd string,
	arguments ...string,
) ([]byte, error) {
	command := exec.CommandContext(ctx, cmd, arguments...)
	command.Stdin = stdin
	if combined {
		return command.CombinedOutput()
	} else {
		return command.Output()
	}
}

var Exec Executor = &CommandExecutor{}
