package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aikit-sh/aikit/internal/core/agent"
	"github.com/aikit-sh/aikit/internal/core/config"
	"github.com/aikit-sh/aikit/internal/tui"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "aikit",
	Short: "Deploy commands, skills, and subagents to AI coding agents",
	Long: `aikit knows the filesystem conventions of 18 AI coding agents and
deploys artifacts into a project tree where each agent expects them:
slash commands, reusable skills, and subagent definitions.

It can also install template packages described by an aikit.toml
manifest and invoke agents that ship a runnable CLI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("aikit %s (commit: %s, built: %s)\n", Version, Commit, Date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads the user config, tolerating a missing manager only
// when the home directory cannot be determined.
func loadConfig() (*config.Config, error) {
	m, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	return m.Load()
}

// resolveAgentKey resolves the agent to operate on: the --agent flag,
// then the configured default, then an interactive picker.
func resolveAgentKey(cmd *cobra.Command) (string, error) {
	key, _ := cmd.Flags().GetString("agent")
	if key != "" {
		if err := agent.Validate(key); err != nil {
			return "", err
		}
		return key, nil
	}

	cfg, err := loadConfig()
	if err == nil && cfg.DefaultAgent != "" {
		if err := agent.Validate(cfg.DefaultAgent); err != nil {
			return "", fmt.Errorf("configured default agent: %w", err)
		}
		return cfg.DefaultAgent, nil
	}

	picked, err := tui.PickAgent("SELECT AGENT", agent.All())
	if err != nil {
		return "", err
	}
	return picked.Key, nil
}

// resolveRoot resolves the project root: the --root flag, then the
// configured default, then the current directory.
func resolveRoot(cmd *cobra.Command) (string, error) {
	root, _ := cmd.Flags().GetString("root")
	if root != "" {
		return root, nil
	}
	cfg, err := loadConfig()
	if err == nil && cfg.DefaultRoot != "" {
		return cfg.DefaultRoot, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return wd, nil
}
