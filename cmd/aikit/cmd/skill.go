package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/aikit-sh/aikit/internal/core/deploy"
	"github.com/aikit-sh/aikit/internal/core/scan"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Inspect deployed skills",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills deployed for an agent",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := resolveAgentKey(cmd)
		if err != nil {
			return err
		}
		root, err := resolveRoot(cmd)
		if err != nil {
			return err
		}

		skills, err := scan.Skills(root, key)
		if err != nil {
			return err
		}
		if len(skills) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No skills deployed.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tDESCRIPTION\tSCRIPTS")
		for _, s := range skills {
			fmt.Fprintf(w, "%s\t%s\t%d\n", s.Name, s.Description, s.Scripts)
		}
		return w.Flush()
	},
}

var skillPeekCmd = &cobra.Command{
	Use:   "peek <name>",
	Short: "Render a deployed skill's SKILL.md",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := resolveAgentKey(cmd)
		if err != nil {
			return err
		}
		root, err := resolveRoot(cmd)
		if err != nil {
			return err
		}

		dir, err := deploy.SkillDir(root, key, args[0])
		if err != nil {
			return err
		}
		doc, err := os.ReadFile(filepath.Join(dir, deploy.SkillFileName))
		if err != nil {
			return fmt.Errorf("reading %s: %w", deploy.SkillFileName, err)
		}

		plain, _ := cmd.Flags().GetBool("plain")
		if plain {
			fmt.Fprint(cmd.OutOrStdout(), string(doc))
			return nil
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}
		out, err := r.Render(string(doc))
		if err != nil {
			return fmt.Errorf("rendering markdown: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{skillListCmd, skillPeekCmd} {
		c.Flags().String("agent", "", "agent key (see 'aikit agents')")
		c.Flags().String("root", "", "project root (default: current directory)")
		skillCmd.AddCommand(c)
	}
	skillPeekCmd.Flags().Bool("plain", false, "print raw markdown without rendering")
	rootCmd.AddCommand(skillCmd)
}
