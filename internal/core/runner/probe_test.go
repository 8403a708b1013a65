package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"sort"
	"testing"
)

func TestCandidates(t *testing.T) {
	cases := map[string][]string{
		"codex":    {"codex"},
		"claude":   {"claude"},
		"gemini":   {"gemini"},
		"opencode": {"opencode", "opencode-desktop"},
		"agent":    {"agent"},
	}
	for key, want := range cases {
		if got := candidates(key); !reflect.DeepEqual(got, want) {
			t.Errorf("candidates(%q) = %v, want %v", key, got, want)
		}
	}
	if got := candidates("unknown"); len(got) != 0 {
		t.Errorf("candidates(unknown) = %v, want empty", got)
	}
}

func TestProbe_NotRunnable(t *testing.T) {
	for _, key := range []string{"copilot", "cursor-agent", "unknown"} {
		s := Probe(context.Background(), key)
		if s.Available {
			t.Errorf("Probe(%q).Available = true", key)
		}
		if s.Reason != ReasonNotRunnable {
			t.Errorf("Probe(%q).Reason = %q, want %q", key, s.Reason, ReasonNotRunnable)
		}
	}
}

func TestAvailable_FalseForNonRunnable(t *testing.T) {
	if Available(context.Background(), "copilot") {
		t.Error("Available(copilot) = true")
	}
	if Available(context.Background(), "unknown") {
		t.Error("Available(unknown) = true")
	}
}

func TestStatusByKey_CoversRunnableSet(t *testing.T) {
	status := StatusByKey(context.Background())
	if len(status) != len(Runnable()) {
		t.Fatalf("got %d entries, want %d", len(status), len(Runnable()))
	}
	for _, key := range Runnable() {
		s, ok := status[key]
		if !ok {
			t.Errorf("missing status for %q", key)
			continue
		}
		if !s.Available && s.Reason == "" {
			t.Errorf("%q unavailable without a reason", key)
		}
		if s.Available && s.Reason != "" {
			t.Errorf("%q available with reason %q", key, s.Reason)
		}
	}
}

func TestInstalled_SortedSubsetOfRunnable(t *testing.T) {
	installed := Installed(context.Background())
	if !sort.StringsAreSorted(installed) {
		t.Errorf("Installed() not sorted: %v", installed)
	}
	for _, key := range installed {
		if !IsRunnable(key) {
			t.Errorf("Installed() contains non-runnable %q", key)
		}
	}
}

// fakeBinaries puts shell stubs for the named binaries on PATH, each
// exiting with the given code when invoked.
func fakeBinaries(t *testing.T, exitCodes map[string]int) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs are not portable to windows")
	}
	dir := t.TempDir()
	for name, code := range exitCodes {
		script := fmt.Sprintf("#!/bin/sh\nexit %d\n", code)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("PATH", dir)
}

func TestProbe_InstalledBinary(t *testing.T) {
	fakeBinaries(t, map[string]int{"codex": 0})

	s := Probe(context.Background(), "codex")
	if !s.Available {
		t.Fatalf("Probe(codex) = %+v, want available", s)
	}
	if s.Reason != "" {
		t.Errorf("Reason = %q, want empty", s.Reason)
	}
}

func TestProbe_VersionCheckFailed(t *testing.T) {
	fakeBinaries(t, map[string]int{"claude": 1})

	s := Probe(context.Background(), "claude")
	if s.Available {
		t.Fatal("Probe(claude) available despite failing version check")
	}
	if s.Reason != ReasonVersionCheckFailed {
		t.Errorf("Reason = %q, want %q", s.Reason, ReasonVersionCheckFailed)
	}
}

func TestProbe_BinaryNotFound(t *testing.T) {
	fakeBinaries(t, nil) // empty PATH

	s := Probe(context.Background(), "gemini")
	if s.Available {
		t.Fatal("Probe(gemini) available with empty PATH")
	}
	if s.Reason != ReasonBinaryNotFound {
		t.Errorf("Reason = %q, want %q", s.Reason, ReasonBinaryNotFound)
	}
}

func TestProbe_SecondCandidate(t *testing.T) {
	// opencode itself missing, the desktop binary present.
	fakeBinaries(t, map[string]int{"opencode-desktop": 0})

	if !Available(context.Background(), "opencode") {
		t.Error("Available(opencode) = false with opencode-desktop on PATH")
	}
}

func TestInstalled_ReflectsPath(t *testing.T) {
	fakeBinaries(t, map[string]int{"codex": 0, "gemini": 0, "claude": 1})

	got := Installed(context.Background())
	want := []string{"codex", "gemini"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Installed() = %v, want %v", got, want)
	}
}
