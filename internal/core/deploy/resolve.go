// Package deploy resolves where agent artifacts live on disk and writes
// them there. Resolution is pure path composition: no existence checks on
// the project root, no filesystem reads. Directory creation is deferred
// to the write path.
package deploy

import (
	"path/filepath"

	"github.com/aikit-sh/aikit/internal/core/agent"
)

// SkillFileName is the fixed main document name inside a skill directory.
const SkillFileName = "SKILL.md"

// scriptsDirName is the fixed subdirectory for auxiliary skill files.
const scriptsDirName = "scripts"

// CommandsDir returns the command directory for an agent under projectRoot.
// Every agent has one, so the only failure mode is an unknown key.
func CommandsDir(projectRoot, agentKey string) (string, error) {
	a, ok := agent.ByKey(agentKey)
	if !ok {
		return "", &agent.NotFoundError{Key: agentKey}
	}
	return filepath.Join(projectRoot, a.CommandsDir), nil
}

// SkillDir returns the directory a named skill deploys into. Fails when
// the agent is unknown or has no skills directory.
func SkillDir(projectRoot, agentKey, skillName string) (string, error) {
	a, ok := agent.ByKey(agentKey)
	if !ok {
		return "", &agent.NotFoundError{Key: agentKey}
	}
	if !a.SupportsSkills() {
		return "", &agent.UnsupportedError{Key: agentKey, Capability: agent.CapabilitySkill}
	}
	return filepath.Join(projectRoot, a.SkillsDir, skillName), nil
}

// SubagentPath returns the full file path a named subagent deploys to,
// including the per-agent filename convention. Fails when the agent is
// unknown or has no agents directory.
func SubagentPath(projectRoot, agentKey, name string) (string, error) {
	a, ok := agent.ByKey(agentKey)
	if !ok {
		return "", &agent.NotFoundError{Key: agentKey}
	}
	if !a.SupportsSubagents() {
		return "", &agent.UnsupportedError{Key: agentKey, Capability: agent.CapabilitySubagent}
	}
	filename, err := agent.SubagentFilename(agentKey, name)
	if err != nil {
		return "", err
	}
	return filepath.Join(projectRoot, a.AgentsDir, filename), nil
}
