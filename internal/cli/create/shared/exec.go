package shared

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// OutputMode selects whether a command's output is captured or streamed to the terminal
type OutputMode int

const (
	// Capture buffers stdout and stderr and returns them in the Result
	Capture OutputMode = iota
	// Stream forwards stdout and stderr to the runner's writers
	Stream
)

// Command describes one external process invocation
type Command struct {
	Dir   string     // Working directory, current directory when empty
	Name  string     // Executable name resolved through PATH
	Args  []string   // Arguments
	Mode  OutputMode // Capture or Stream
	Quiet bool       // Do not echo the command line or failure details
}

// String renders the command line as typed in a shell
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result holds captured output. Both fields are empty in Stream mode.
type Result struct {
	Stdout string
	Stderr string
}

// CommandError is returned when a command cannot start or exits non-zero
type CommandError struct {
	Command  Command
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s", e.Command.String())
	if e.ExitCode > 0 {
		msg += fmt.Sprintf(" (exit %d)", e.ExitCode)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Runner executes external commands. Every call blocks until the process exits.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExecRunner is the os/exec backed Runner
type ExecRunner struct {
	Out    io.Writer // Command echo and streamed stdout
	ErrOut io.Writer // Streamed stderr and failure details
	Logger zerolog.Logger
}

// NewExecRunner creates a runner writing to the process stdout/stderr
func NewExecRunner(logger zerolog.Logger) *ExecRunner {
	return &ExecRunner{
		Out:    os.Stdout,
		ErrOut: os.Stderr,
		Logger: logger,
	}
}

// Run executes cmd according to its output mode
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	if !cmd.Quiet {
		fmt.Fprintln(r.Out, Dim("$ "+cmd.String()))
	}

	r.Logger.Debug().
		Str("dir", cmd.Dir).
		Str("cmd", cmd.String()).
		Bool("stream", cmd.Mode == Stream).
		Msg("exec")

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}

	var stdout, stderr bytes.Buffer
	if cmd.Mode == Stream {
		c.Stdin = os.Stdin
		c.Stdout = r.Out
		c.Stderr = r.ErrOut
	} else {
		c.Stdout = &stdout
		c.Stderr = &stderr
	}

	err := c.Run()
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return result, nil
	}

	cmdErr := &CommandError{Command: cmd, Stderr: result.Stderr, Err: err}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		cmdErr.ExitCode = exitErr.ExitCode()
	}

	r.Logger.Debug().Err(err).Int("exit", cmdErr.ExitCode).Str("cmd", cmd.String()).Msg("exec failed")

	if !cmd.Quiet {
		fmt.Fprintln(r.ErrOut, Red("Error executing: "+cmd.String()))
		if s := strings.TrimSpace(result.Stderr); s != "" {
			fmt.Fprintln(r.ErrOut, Red(s))
		}
	}

	return result, cmdErr
}
