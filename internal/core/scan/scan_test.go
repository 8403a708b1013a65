package scan

import (
	"errors"
	"testing"

	"github.com/aikit-sh/aikit/internal/core/agent"
	"github.com/aikit-sh/aikit/internal/core/deploy"
)

const skillDoc = `---
name: go-review
description: Review Go code for common mistakes
---

# Go Review

Instructions here.
`

func TestSkills(t *testing.T) {
	root := t.TempDir()
	scripts := []deploy.Script{
		{Name: "check.sh", Data: []byte("#!/bin/sh\n")},
		{Name: "lib/rules.txt", Data: []byte("rules")},
	}
	if _, err := deploy.Skill("claude", root, "go-review", skillDoc, scripts); err != nil {
		t.Fatal(err)
	}

	skills, err := Skills(root, "claude")
	if err != nil {
		t.Fatalf("Skills: %v", err)
	}
	if len(skills) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(skills))
	}
	s := skills[0]
	if s.Name != "go-review" {
		t.Errorf("Name = %q", s.Name)
	}
	if s.Description != "Review Go code for common mistakes" {
		t.Errorf("Description = %q", s.Description)
	}
	if s.Scripts != 2 {
		t.Errorf("Scripts = %d", s.Scripts)
	}
}

func TestSkills_NoFrontmatter(t *testing.T) {
	root := t.TempDir()
	if _, err := deploy.Skill("claude", root, "plain", "# Just a doc\n", nil); err != nil {
		t.Fatal(err)
	}

	skills, err := Skills(root, "claude")
	if err != nil {
		t.Fatalf("Skills: %v", err)
	}
	if len(skills) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(skills))
	}
	// Falls back to the directory name.
	if skills[0].Name != "plain" {
		t.Errorf("Name = %q", skills[0].Name)
	}
}

func TestSkills_EmptyProject(t *testing.T) {
	skills, err := Skills(t.TempDir(), "claude")
	if err != nil {
		t.Fatalf("Skills: %v", err)
	}
	if len(skills) != 0 {
		t.Errorf("expected no skills, got %d", len(skills))
	}
}

func TestSkills_Unsupported(t *testing.T) {
	_, err := Skills(t.TempDir(), "qwen")
	var ue *agent.UnsupportedError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UnsupportedError, got %v", err)
	}
}

func TestSkills_Unknown(t *testing.T) {
	_, err := Skills(t.TempDir(), "nonexistent")
	var nf *agent.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCommands(t *testing.T) {
	root := t.TempDir()
	if _, err := deploy.Command("codex", root, "fix", "fix it"); err != nil {
		t.Fatal(err)
	}
	if _, err := deploy.Command("codex", root, "review", "review it"); err != nil {
		t.Fatal(err)
	}

	paths, err := Commands(root, "codex")
	if err != nil {
		t.Fatalf("Commands: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(paths))
	}
}

func TestCommands_Empty(t *testing.T) {
	paths, err := Commands(t.TempDir(), "claude")
	if err != nil {
		t.Fatalf("Commands: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected no commands, got %d", len(paths))
	}
}
