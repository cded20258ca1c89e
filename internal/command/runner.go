// Package command provides subprocess execution for the diagnostic checks.
//
// Commands are always specified as an argument vector and are never passed
// through a shell, so project paths and patterns cannot be shell-interpreted.
// Execution failures (binary not found, spawn errors) are captured in the
// returned Result rather than surfaced as errors: every caller receives text
// to inspect. No timeout is enforced; a hung child process hangs the run.
package command

import (
	"bytes"
	"context"
	"os/exec"
)

// Result holds the outcome of a single command invocation.
// A non-zero exit status is not a failure: the checks inspect captured text
// for expected substrings, never exit codes. Err is set only when the
// process could not be executed at all.
type Result struct {
	// Output is the captured standard output, with standard error appended
	// when the invocation requested merged streams.
	Output string

	// Err is the execution failure (binary not found, spawn error), if any.
	Err error
}

// Failed reports whether the command could not be executed.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Text returns the captured output, substituting the stringified execution
// error when the command could not run. This mirrors the report-facing
// behavior where checks treat failure text as ordinary command output.
func (r Result) Text() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return r.Output
}

// Runner abstracts command execution for testability.
type Runner interface {
	// Run executes name with args and returns the captured output.
	// When mergeStderr is true, standard error is appended to the captured
	// text; otherwise it is discarded.
	Run(ctx context.Context, mergeStderr bool, name string, args ...string) Result
}

// ExecRunner executes real commands via os/exec.
type ExecRunner struct {
	// Dir is the working directory for commands (empty = current dir).
	Dir string
}

// NewExecRunner creates a Runner that executes commands in dir.
func NewExecRunner(dir string) *ExecRunner {
	return &ExecRunner{Dir: dir}
}

// Run executes the command and captures its output.
func (r *ExecRunner) Run(ctx context.Context, mergeStderr bool, name string, args ...string) Result {
	cmd := exec.CommandContext(ctx, name, args...)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	if mergeStderr {
		cmd.Stderr = &stdout
	} else {
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	if err != nil {
		// A command that ran but exited non-zero still produced usable
		// output (tsc exits 1 on type errors, grep exits 1 on no match).
		if _, ok := err.(*exec.ExitError); !ok {
			return Result{Err: err}
		}
	}

	return Result{Output: stdout.String()}
}
