package agent

// commandSuffix holds per-agent command filename extensions. Agents not
// listed here use ".md". The overrides mirror each tool's native command
// format and must not drift from it.
var commandSuffix = map[string]string{
	"codex":     ".prompt",
	"q":         ".prompt",
	"qwen":      ".cmd",
	"roo":       ".command",
	"codebuddy": ".command",
	"shai":      ".command",
	"bob":       ".command",
}

// CommandFilename returns the on-disk filename for a command artifact.
// Deterministic: the result depends only on the arguments, never on
// filesystem state.
func CommandFilename(key, name string) (string, error) {
	if err := Validate(key); err != nil {
		return "", err
	}
	if suffix, ok := commandSuffix[key]; ok {
		return name + suffix, nil
	}
	return name + ".md", nil
}

// SubagentFilename returns the on-disk filename for a subagent artifact.
// Copilot expects ".agent.md"; every other agent uses ".md".
func SubagentFilename(key, name string) (string, error) {
	if err := Validate(key); err != nil {
		return "", err
	}
	if key == "copilot" {
		return name + ".agent.md", nil
	}
	return name + ".md", nil
}
