package deploy

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aikit-sh/aikit/internal/core/agent"
)

func TestDeployCommand(t *testing.T) {
	root := t.TempDir()
	content := "# My Command\nHello World"

	path, err := Command("claude", root, "test-command", content)
	if err != nil {
		t.Fatalf("Command: %v", err)
	}
	if path != filepath.Join(root, ".claude/commands", "test-command.md") {
		t.Errorf("path = %q", path)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(got) != content {
		t.Errorf("content = %q, want %q", got, content)
	}
}

func TestDeployCommand_Overwrite(t *testing.T) {
	root := t.TempDir()

	first, err := Command("codex", root, "review", "old")
	if err != nil {
		t.Fatalf("first deploy: %v", err)
	}
	second, err := Command("codex", root, "review", "new")
	if err != nil {
		t.Fatalf("second deploy: %v", err)
	}
	if first != second {
		t.Errorf("paths differ: %q vs %q", first, second)
	}

	got, _ := os.ReadFile(second)
	if string(got) != "new" {
		t.Errorf("content = %q, want latest write", got)
	}

	entries, err := os.ReadDir(filepath.Dir(second))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly one file, got %d", len(entries))
	}
	if entries[0].Name() != "review.prompt" {
		t.Errorf("filename = %q", entries[0].Name())
	}
}

func TestDeployCommand_Unknown(t *testing.T) {
	_, err := Command("nonexistent", t.TempDir(), "x", "y")
	var nf *agent.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDeploySubagent(t *testing.T) {
	root := t.TempDir()
	content := "# My Subagent\nConfig here."

	path, err := Subagent("claude", root, "my-agent", content)
	if err != nil {
		t.Fatalf("Subagent: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(got) != content {
		t.Errorf("content = %q", got)
	}
}

func TestDeploySubagent_Unsupported(t *testing.T) {
	root := t.TempDir()
	_, err := Subagent("qwen", root, "my-agent", "# agent")
	var ue *agent.UnsupportedError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UnsupportedError, got %v", err)
	}
	// Nothing should have been written.
	if _, statErr := os.Stat(filepath.Join(root, ".qwen")); !os.IsNotExist(statErr) {
		t.Error("expected no directories created on capability failure")
	}
}

func TestDeploySkill(t *testing.T) {
	root := t.TempDir()
	doc := "# Skill Name\n\nDescription here."
	scripts := []Script{
		{Name: "setup.sh", Data: []byte("#!/bin/sh\necho 'setup'")},
		{Name: "cleanup.sh", Data: []byte("#!/bin/sh\necho 'cleanup'")},
	}

	path, err := Skill("cursor-agent", root, "my-skill", doc, scripts)
	if err != nil {
		t.Fatalf("Skill: %v", err)
	}
	if path != filepath.Join(root, ".cursor/skills", "my-skill", "SKILL.md") {
		t.Errorf("path = %q", path)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != doc {
		t.Errorf("SKILL.md = %q", got)
	}

	for _, s := range scripts {
		data, err := os.ReadFile(filepath.Join(filepath.Dir(path), "scripts", s.Name))
		if err != nil {
			t.Fatalf("reading script %s: %v", s.Name, err)
		}
		if !bytes.Equal(data, s.Data) {
			t.Errorf("script %s content mismatch", s.Name)
		}
	}
}

func TestDeploySkill_NestedScriptPaths(t *testing.T) {
	root := t.TempDir()
	scripts := []Script{
		{Name: "lib/helpers.py", Data: []byte("def helper(): pass\n")},
	}

	path, err := Skill("claude", root, "nested", "# doc", scripts)
	if err != nil {
		t.Fatalf("Skill: %v", err)
	}
	nested := filepath.Join(filepath.Dir(path), "scripts", "lib", "helpers.py")
	if _, err := os.Stat(nested); err != nil {
		t.Errorf("nested script not written: %v", err)
	}
}

func TestDeploySkill_NoScripts(t *testing.T) {
	root := t.TempDir()
	path, err := Skill("claude", root, "bare", "# doc", nil)
	if err != nil {
		t.Fatalf("Skill: %v", err)
	}
	// No scripts/ directory should appear for an empty bundle.
	if _, err := os.Stat(filepath.Join(filepath.Dir(path), "scripts")); !os.IsNotExist(err) {
		t.Error("expected no scripts directory")
	}
}

func TestDeploySkill_Unsupported(t *testing.T) {
	_, err := Skill("qwen", t.TempDir(), "my-skill", "# skill", nil)
	var ue *agent.UnsupportedError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UnsupportedError, got %v", err)
	}
	if ue.Capability != agent.CapabilitySkill {
		t.Errorf("capability = %q", ue.Capability)
	}
}
