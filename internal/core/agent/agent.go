// Package agent defines the catalog of supported AI coding agents.
//
// Each agent is described by an immutable Agent record: where its slash
// commands, skills, and subagents live relative to a project root. The
// catalog is fixed at compile time — there is no runtime registration and
// no configuration file. Presence of a directory field is the single
// source of truth for whether the agent supports that artifact kind.
package agent

import "strings"

// Capability names an artifact kind an agent may or may not support.
type Capability string

const (
	CapabilityCommand  Capability = "command"
	CapabilitySkill    Capability = "skill"
	CapabilitySubagent Capability = "subagent"
)

// Agent describes one supported AI coding agent and its filesystem
// conventions. Directory fields are project-relative fragments; an empty
// SkillsDir or AgentsDir means the agent has no skill or subagent support.
type Agent struct {
	Key         string // canonical lowercase identifier: "claude", "copilot"
	Name        string // display name: "Claude Code"
	CommandsDir string // always present — every agent supports commands
	SkillsDir   string // empty means no skill support
	AgentsDir   string // empty means no subagent support
}

// IdentityKey returns the lowercased display name, used for display-level
// equality separate from Key ("Claude Code" -> "claude code").
func (a Agent) IdentityKey() string {
	return strings.ToLower(a.Name)
}

// SupportsSkills reports whether the agent has a skills directory.
func (a Agent) SupportsSkills() bool { return a.SkillsDir != "" }

// SupportsSubagents reports whether the agent has a subagents directory.
func (a Agent) SupportsSubagents() bool { return a.AgentsDir != "" }

// Supports reports whether the agent supports the given capability.
// Commands are universal.
func (a Agent) Supports(c Capability) bool {
	switch c {
	case CapabilityCommand:
		return true
	case CapabilitySkill:
		return a.SupportsSkills()
	case CapabilitySubagent:
		return a.SupportsSubagents()
	}
	return false
}
