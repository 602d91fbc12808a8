package util

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
	"github.com/tabulatehq/tabulate/internal/config"
)

// ProgressMsg tells the user what is being done on their behalf,
// unless --quiet suppressed it.
func ProgressMsg(msg string) {
	if !config.Quiet {
		fmt.Fprintln(os.Stderr, "-->", msg)
	}
}

func quoteCmd(cmd []string) string {
	return shellquote.Join(cmd...)
}

// RunCmdWithInput runs a command with the given string fed to its
// stdin and stdout/stderr inherited. Extra environment entries are
// appended to the current environment. Used for the pager.
func RunCmdWithInput(cmd []string, input string, extraEnv ...string) error {
	ProgressMsg(quoteCmd(cmd))
	path, err := exec.LookPath(cmd[0])
	if err != nil {
		return err
	}
	command := exec.Cmd{
		Path:   path,
		Args:   cmd,
		Env:    append(os.Environ(), extraEnv...),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	stdin, err := command.StdinPipe()
	if err != nil {
		return err
	}
	if err := command.Start(); err != nil {
		return err
	}
	if _, err := io.WriteString(stdin, input); err != nil {
		return err
	}
	if err := stdin.Close(); err != nil {
		return err
	}
	return command.Wait()
}
