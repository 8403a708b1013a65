// Package runner invokes agents that ship a runnable CLI binary. Only a
// small subset of the catalog is runnable; the rest are editor
// integrations with no headless entry point.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// runnable is the fixed set of agent keys that can be invoked as an
// external process. Independent of the agent catalog: membership here is
// about having a scriptable binary, not about deploy capabilities.
var runnable = []string{"codex", "claude", "gemini", "opencode", "agent"}

// NotRunnableError is returned when a key is not in the runnable set.
type NotRunnableError struct {
	Key string
}

func (e *NotRunnableError) Error() string {
	return fmt.Sprintf("Agent '%s' is not runnable. Supported: %s",
		e.Key, strings.Join(runnable, ", "))
}

// Runnable returns the agent keys that can be invoked as a process.
func Runnable() []string {
	out := make([]string, len(runnable))
	copy(out, runnable)
	return out
}

// IsRunnable reports whether the key is in the runnable set. Unknown
// keys return false rather than an error.
func IsRunnable(key string) bool {
	for _, k := range runnable {
		if k == key {
			return true
		}
	}
	return false
}

// Options configures a single agent invocation.
type Options struct {
	Model  string // model variant to request; empty uses the agent default
	Yolo   bool   // skip the agent's confirmation/safety gating
	Stream bool   // ask for incremental output instead of one completed result
}

// Result holds the outcome of a completed agent process.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Success reports whether the process exited zero.
func (r *Result) Success() bool { return r.ExitCode == 0 }

// Run invokes the agent's CLI with the prompt, waits for it to finish,
// and returns the captured output. The prompt is also piped to stdin for
// agents that read it there. A non-zero exit is not an error; callers
// inspect Result.ExitCode.
func Run(ctx context.Context, agentKey, prompt string, opts Options) (*Result, error) {
	if !IsRunnable(agentKey) {
		return nil, &NotRunnableError{Key: agentKey}
	}

	argv := buildArgv(agentKey, prompt, opts)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(prompt)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("running %s: %w", agentKey, err)
		}
	}

	return &Result{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
	}, nil
}
