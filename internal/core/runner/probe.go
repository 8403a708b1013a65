package runner

import (
	"context"
	"errors"
	"os/exec"
	"sort"
	"time"
)

// Reason explains why an agent is unavailable.
type Reason string

const (
	ReasonNotRunnable        Reason = "not_runnable"
	ReasonBinaryNotFound     Reason = "binary_not_found"
	ReasonVersionCheckFailed Reason = "version_check_failed"
	ReasonTimedOut           Reason = "timed_out"
)

// Status is the probed availability of one runnable agent.
type Status struct {
	Available bool
	Reason    Reason // empty when available
}

// probeTimeout bounds each --version probe. Some agent CLIs hang when
// run without a TTY; a slow probe must not stall the whole status scan.
const probeTimeout = 1500 * time.Millisecond

// binaryCandidates maps a runnable key to the binaries that may provide
// it, tried in order. opencode ships under two names depending on how
// it was installed.
var binaryCandidates = map[string][]string{
	"codex":    {"codex"},
	"claude":   {"claude"},
	"gemini":   {"gemini"},
	"opencode": {"opencode", "opencode-desktop"},
	"agent":    {"agent"},
}

// candidates returns the binary names probed for a key. Empty for
// non-runnable keys.
func candidates(key string) []string {
	return binaryCandidates[key]
}

// probeBinary runs "<binary> --version" with output discarded and
// reports whether the binary answered successfully. The Reason
// distinguishes a missing binary from one that exists but fails the
// version check or hangs past the timeout.
func probeBinary(ctx context.Context, binary string) (bool, Reason) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, "--version")
	err := cmd.Run()
	if err == nil {
		return true, ""
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return false, ReasonTimedOut
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, ReasonVersionCheckFailed
	}
	return false, ReasonBinaryNotFound
}

// Probe checks one agent's availability: runnable, and at least one
// binary candidate answers --version.
func Probe(ctx context.Context, key string) Status {
	if !IsRunnable(key) {
		return Status{Reason: ReasonNotRunnable}
	}

	lastReason := ReasonBinaryNotFound
	for _, binary := range candidates(key) {
		ok, reason := probeBinary(ctx, binary)
		if ok {
			return Status{Available: true}
		}
		lastReason = reason
	}
	return Status{Reason: lastReason}
}

// Available reports whether the agent is runnable and its CLI is
// installed. False for non-runnable and unknown keys.
func Available(ctx context.Context, key string) bool {
	return Probe(ctx, key).Available
}

// Installed returns the runnable agents whose CLIs are installed,
// sorted by key.
func Installed(ctx context.Context) []string {
	var keys []string
	for _, key := range runnable {
		if Available(ctx, key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// StatusByKey probes every runnable agent and returns its status. The
// map has exactly one entry per runnable key.
func StatusByKey(ctx context.Context) map[string]Status {
	status := make(map[string]Status, len(runnable))
	for _, key := range runnable {
		status[key] = Probe(ctx, key)
	}
	return status
}
