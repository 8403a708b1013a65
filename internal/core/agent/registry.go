package agent

import "fmt"

// NotFoundError is returned when an agent key is not in the catalog.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Agent not found: %s", e.Key)
}

// UnsupportedError is returned when a known agent lacks the requested
// capability (no skills directory, no agents directory).
type UnsupportedError struct {
	Key        string
	Capability Capability
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("Agent '%s' does not support '%s'", e.Key, e.Capability)
}

// catalog is the fixed agent table. Order is stable and is the order
// returned by All. The directory strings are load-bearing: downstream
// tools locate artifacts by these exact paths, so changing an entry is a
// compatibility break.
var catalog = []Agent{
	{Key: "claude", Name: "Claude Code", CommandsDir: ".claude/commands", SkillsDir: ".claude/skills", AgentsDir: ".claude/agents"},
	{Key: "gemini", Name: "Google Gemini", CommandsDir: ".gemini/commands", SkillsDir: ".gemini/skills", AgentsDir: ".gemini/agents"},
	{Key: "copilot", Name: "GitHub Copilot", CommandsDir: ".github/agents", AgentsDir: ".github/agents"},
	{Key: "cursor-agent", Name: "Cursor", CommandsDir: ".cursor/commands", SkillsDir: ".cursor/skills", AgentsDir: ".cursor/agents"},
	{Key: "qwen", Name: "Qwen Code", CommandsDir: ".qwen/commands"},
	{Key: "newton", Name: "Newton", CommandsDir: ".newton/commands", SkillsDir: ".newton/skills", AgentsDir: ".newton/agents"},
	{Key: "opencode", Name: "opencode", CommandsDir: ".opencode/commands"},
	{Key: "codex", Name: "Codex CLI", CommandsDir: ".codex/prompts", SkillsDir: ".codex/skills"},
	{Key: "windsurf", Name: "Windsurf", CommandsDir: ".windsurf/workflows", SkillsDir: ".windsurf/skills"},
	{Key: "kilocode", Name: "Kilo Code", CommandsDir: ".kilocode/workflows", SkillsDir: ".kilocode/skills"},
	{Key: "auggie", Name: "Auggie CLI", CommandsDir: ".augment/commands", SkillsDir: ".augment/skills", AgentsDir: ".augment/agents"},
	{Key: "roo", Name: "Roo Code", CommandsDir: ".roo/commands", SkillsDir: ".roo/skills"},
	{Key: "codebuddy", Name: "CodeBuddy CLI", CommandsDir: ".codebuddy/commands"},
	{Key: "qoder", Name: "Qoder CLI", CommandsDir: ".qoder/commands", AgentsDir: ".qoder/agents"},
	{Key: "amp", Name: "Amp", CommandsDir: ".agents/commands"},
	{Key: "shai", Name: "SHAI", CommandsDir: ".shai/commands"},
	{Key: "q", Name: "Amazon Q Developer", CommandsDir: ".amazonq/prompts"},
	{Key: "bob", Name: "IBM Bob", CommandsDir: ".bob/commands"},
}

// All returns every agent in the catalog, in declaration order.
// The returned slice is a copy; callers may modify it freely.
func All() []Agent {
	out := make([]Agent, len(catalog))
	copy(out, catalog)
	return out
}

// ByKey returns the agent with the given canonical key. Matching is
// case-sensitive and exact — no fuzzy lookup.
func ByKey(key string) (Agent, bool) {
	for _, a := range catalog {
		if a.Key == key {
			return a, true
		}
	}
	return Agent{}, false
}

// Keys returns all canonical agent keys in catalog order.
func Keys() []string {
	keys := make([]string, len(catalog))
	for i, a := range catalog {
		keys[i] = a.Key
	}
	return keys
}

// Validate returns a NotFoundError if the key is not in the catalog.
func Validate(key string) error {
	if _, ok := ByKey(key); !ok {
		return &NotFoundError{Key: key}
	}
	return nil
}
