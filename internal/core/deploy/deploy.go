package deploy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aikit-sh/aikit/internal/core/agent"
)

// Script is one auxiliary file in a skill bundle. Name is relative to the
// skill's scripts/ directory and may contain sub-paths ("lib/helper.py").
type Script struct {
	Name string
	Data []byte
}

// Command writes a command artifact into the agent's commands directory,
// creating parents as needed, and returns the written path. An existing
// file at the target path is overwritten.
func Command(agentKey, projectRoot, name, content string) (string, error) {
	dir, err := CommandsDir(projectRoot, agentKey)
	if err != nil {
		return "", err
	}
	filename, err := agent.CommandFilename(agentKey, name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating commands directory: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing command: %w", err)
	}
	return path, nil
}

// Subagent writes a subagent artifact into the agent's agents directory
// and returns the written path. Propagates the resolver's capability
// error for agents without subagent support.
func Subagent(agentKey, projectRoot, name, content string) (string, error) {
	path, err := SubagentPath(projectRoot, agentKey, name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating agents directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing subagent: %w", err)
	}
	return path, nil
}

// Skill writes a skill bundle: SKILL.md with the main document, plus each
// script under scripts/{name}, creating intermediate directories for
// nested script names. Returns the path to SKILL.md.
//
// Deployment is not transactional: a failed script write surfaces the
// underlying error immediately and earlier writes in the same call stay
// on disk.
func Skill(agentKey, projectRoot, skillName, doc string, scripts []Script) (string, error) {
	dir, err := SkillDir(projectRoot, agentKey, skillName)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating skill directory: %w", err)
	}

	docPath := filepath.Join(dir, SkillFileName)
	if err := os.WriteFile(docPath, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", SkillFileName, err)
	}

	for _, s := range scripts {
		path := filepath.Join(dir, scriptsDirName, s.Name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", fmt.Errorf("creating scripts directory: %w", err)
		}
		if err := os.WriteFile(path, s.Data, 0o644); err != nil {
			return "", fmt.Errorf("writing script %q: %w", s.Name, err)
		}
	}

	return docPath, nil
}
