package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aikit-sh/aikit/internal/core/config"
	"github.com/aikit-sh/aikit/internal/core/runner"
)

var runCmd = &cobra.Command{
	Use:   "run <prompt>...",
	Short: "Invoke a runnable agent with a prompt",
	Long: fmt.Sprintf(`Invoke an agent CLI with a one-shot prompt and print its output.

Only a subset of agents ship a runnable binary: %s.

Examples:
  aikit run --agent claude "explain this panic"
  aikit run --agent codex --model o3 --yolo "fix the failing test"`,
		strings.Join(runner.Runnable(), ", ")),
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt := strings.Join(args, " ")

		cfg, err := loadConfig()
		if err != nil {
			cfg = &config.Config{}
		}

		key, _ := cmd.Flags().GetString("agent")
		if key == "" {
			key = cfg.DefaultAgent
		}
		if key == "" {
			return fmt.Errorf("no agent given; use --agent with one of: %s",
				strings.Join(runner.Runnable(), ", "))
		}

		if !runner.IsRunnable(key) {
			return &runner.NotRunnableError{Key: key}
		}
		if status := runner.Probe(cmd.Context(), key); !status.Available {
			return fmt.Errorf("agent '%s' is not available (%s)", key, status.Reason)
		}

		opts := runner.Options{}
		opts.Model, _ = cmd.Flags().GetString("model")
		opts.Yolo, _ = cmd.Flags().GetBool("yolo")
		opts.Stream, _ = cmd.Flags().GetBool("stream")

		if opts.Model == "" {
			opts.Model = cfg.DefaultModel
		}

		result, err := runner.Run(cmd.Context(), key, prompt, opts)
		if err != nil {
			return err
		}

		cmd.OutOrStdout().Write(result.Stdout)
		cmd.ErrOrStderr().Write(result.Stderr)
		if !result.Success() {
			return fmt.Errorf("%s exited with status %d", key, result.ExitCode)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().String("agent", "", "runnable agent key")
	runCmd.Flags().String("model", "", "model variant to request")
	runCmd.Flags().Bool("yolo", false, "skip the agent's confirmation gating")
	runCmd.Flags().Bool("stream", false, "request incremental output")
	rootCmd.AddCommand(runCmd)
}
