package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aikit-sh/aikit/internal/core/deploy"
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy artifacts into a project tree",
	Long: `Deploy a command, skill, or subagent into the directory layout the
target agent expects under the project root.`,
}

var deployCommandCmd = &cobra.Command{
	Use:   "command <name> <file>",
	Short: "Deploy a slash command from a local file",
	Long: `Deploy a command artifact. The file's content is written verbatim to
the agent's commands directory using the agent's filename convention
(e.g. codex writes <name>.prompt, most agents <name>.md).

Examples:
  aikit deploy command review ./review.md --agent claude
  aikit deploy command fix ./fix.md --agent codex --root ~/code/app`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, file := args[0], args[1]
		key, err := resolveAgentKey(cmd)
		if err != nil {
			return err
		}
		root, err := resolveRoot(cmd)
		if err != nil {
			return err
		}

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}

		path, err := deploy.Command(key, root, name, string(content))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deployed command to %s\n", path)
		return nil
	},
}

var deploySubagentCmd = &cobra.Command{
	Use:   "subagent <name> <file>",
	Short: "Deploy a subagent definition from a local file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, file := args[0], args[1]
		key, err := resolveAgentKey(cmd)
		if err != nil {
			return err
		}
		root, err := resolveRoot(cmd)
		if err != nil {
			return err
		}

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}

		path, err := deploy.Subagent(key, root, name, string(content))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deployed subagent to %s\n", path)
		return nil
	},
}

var deploySkillCmd = &cobra.Command{
	Use:   "skill <name> <dir>",
	Short: "Deploy a skill bundle from a local directory",
	Long: `Deploy a skill bundle. The directory must contain a SKILL.md; an
optional scripts/ subtree is copied alongside it, preserving relative
sub-paths.

Example:
  aikit deploy skill go-review ./skills/go-review --agent claude`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, dir := args[0], args[1]
		key, err := resolveAgentKey(cmd)
		if err != nil {
			return err
		}
		root, err := resolveRoot(cmd)
		if err != nil {
			return err
		}

		doc, err := os.ReadFile(filepath.Join(dir, deploy.SkillFileName))
		if err != nil {
			return fmt.Errorf("reading %s: %w", deploy.SkillFileName, err)
		}

		scripts, err := readScripts(filepath.Join(dir, "scripts"))
		if err != nil {
			return err
		}

		path, err := deploy.Skill(key, root, name, string(doc), scripts)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deployed skill to %s\n", path)
		return nil
	},
}

// readScripts collects every file under dir as a skill script, keeping
// the path relative to dir. A missing dir is an empty bundle.
func readScripts(dir string) ([]deploy.Script, error) {
	var scripts []deploy.Script
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == dir {
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading script %s: %w", rel, err)
		}
		scripts = append(scripts, deploy.Script{Name: filepath.ToSlash(rel), Data: data})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return scripts, nil
}

func init() {
	for _, c := range []*cobra.Command{deployCommandCmd, deploySubagentCmd, deploySkillCmd} {
		c.Flags().String("agent", "", "agent key (see 'aikit agents')")
		c.Flags().String("root", "", "project root (default: current directory)")
		deployCmd.AddCommand(c)
	}
	rootCmd.AddCommand(deployCmd)
}
