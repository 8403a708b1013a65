package runner

// Per-agent argument construction. Each agent CLI has its own flag
// surface; these builders encode the exact invocation each tool expects
// and must track the upstream CLIs, not each other.

func buildArgv(agentKey, prompt string, opts Options) []string {
	switch agentKey {
	case "codex":
		return codexArgv(opts)
	case "claude":
		return claudeArgv(prompt, opts)
	case "gemini":
		return geminiArgv(prompt, opts)
	case "opencode":
		return opencodeArgv(prompt, opts)
	case "agent":
		return agentArgv(prompt, opts)
	}
	// IsRunnable gates Run; reaching here means the runnable set and
	// this switch are out of sync.
	panic("runner: no argv builder for " + agentKey)
}

// codex reads the prompt from stdin ("--" "-") and always emits JSON.
func codexArgv(opts Options) []string {
	argv := []string{"codex", "exec"}
	if opts.Model != "" {
		argv = append(argv, "-m", opts.Model)
	}
	if opts.Yolo {
		argv = append(argv, "--yolo")
	}
	return append(argv, "--json", "--", "-")
}

func claudeArgv(prompt string, opts Options) []string {
	argv := []string{"claude", "-p", prompt, "--dangerously-skip-permissions"}
	if opts.Model != "" {
		argv = append(argv, "--model", opts.Model)
	}
	format := "text"
	if opts.Stream {
		format = "stream-json"
	}
	return append(argv, "--output-format", format)
}

func geminiArgv(prompt string, opts Options) []string {
	argv := []string{"gemini", "--prompt", prompt}
	if opts.Model != "" {
		argv = append(argv, "--model", opts.Model)
	}
	return argv
}

func opencodeArgv(prompt string, opts Options) []string {
	argv := []string{"opencode", "--prompt", prompt}
	if opts.Model != "" {
		argv = append(argv, "--model", opts.Model)
	}
	if opts.Yolo {
		argv = append(argv, "--yolo")
	}
	return argv
}

func agentArgv(prompt string, opts Options) []string {
	argv := []string{"agent", "--prompt", prompt}
	if opts.Model != "" {
		argv = append(argv, "--model", opts.Model)
	}
	if opts.Yolo {
		argv = append(argv, "--yolo")
	}
	if opts.Stream {
		argv = append(argv, "--stream")
	}
	return argv
}
