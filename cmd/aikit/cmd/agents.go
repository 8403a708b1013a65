package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aikit-sh/aikit/internal/core/agent"
	"github.com/aikit-sh/aikit/internal/core/runner"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List supported agents and their capabilities",
	Long: `List every supported agent with its canonical key, display name,
artifact directories, and whether it can be invoked with 'aikit run'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		check, _ := cmd.Flags().GetBool("check")

		// Probing runs each agent CLI, so only do it when asked.
		var status map[string]runner.Status
		if check {
			status = runner.StatusByKey(cmd.Context())
		}

		if asJSON {
			return printAgentsJSON(cmd, status)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		header := "KEY\tNAME\tCOMMANDS\tSKILLS\tSUBAGENTS\tRUNNABLE"
		if check {
			header += "\tAVAILABLE"
		}
		fmt.Fprintln(w, header)
		for _, a := range agent.All() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s",
				a.Key, a.Name, a.CommandsDir,
				orDash(a.SkillsDir), orDash(a.AgentsDir),
				yesNo(runner.IsRunnable(a.Key)))
			if check {
				fmt.Fprintf(w, "\t%s", availability(a.Key, status))
			}
			fmt.Fprintln(w)
		}
		return w.Flush()
	},
}

// availability formats one AVAILABLE cell. Non-runnable agents get a
// dash rather than a probe failure.
func availability(key string, status map[string]runner.Status) string {
	s, ok := status[key]
	if !ok {
		return "-"
	}
	if s.Available {
		return "yes"
	}
	return fmt.Sprintf("no (%s)", s.Reason)
}

func printAgentsJSON(cmd *cobra.Command, status map[string]runner.Status) error {
	type agentJSON struct {
		Key         string `json:"key"`
		Name        string `json:"name"`
		CommandsDir string `json:"commandsDir"`
		SkillsDir   string `json:"skillsDir,omitempty"`
		AgentsDir   string `json:"agentsDir,omitempty"`
		Runnable    bool   `json:"runnable"`
		Available   *bool  `json:"available,omitempty"`
		Reason      string `json:"reason,omitempty"`
	}
	var out []agentJSON
	for _, a := range agent.All() {
		entry := agentJSON{
			Key:         a.Key,
			Name:        a.Name,
			CommandsDir: a.CommandsDir,
			SkillsDir:   a.SkillsDir,
			AgentsDir:   a.AgentsDir,
			Runnable:    runner.IsRunnable(a.Key),
		}
		if s, ok := status[a.Key]; ok {
			avail := s.Available
			entry.Available = &avail
			entry.Reason = string(s.Reason)
		}
		out = append(out, entry)
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func init() {
	agentsCmd.Flags().Bool("json", false, "output as JSON")
	agentsCmd.Flags().Bool("check", false, "probe runnable agents for an installed CLI")
	rootCmd.AddCommand(agentsCmd)
}
