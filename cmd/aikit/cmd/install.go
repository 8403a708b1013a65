package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aikit-sh/aikit/internal/core/config"
	"github.com/aikit-sh/aikit/internal/core/manifest"
)

var installCmd = &cobra.Command{
	Use:   "install <package-dir | name@version>",
	Short: "Install a template package into the project",
	Long: `Install the artifacts of a template package described by an
aikit.toml manifest.

The argument is either a local directory containing aikit.toml, or a
name@version reference resolved against the cached packages directory
(~/.aikit/packages).

Examples:
  aikit install ./templates/starter --root ~/code/app
  aikit install starter@2.0.0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(cmd)
		if err != nil {
			return err
		}

		arg := args[0]
		var m *manifest.Manifest

		if info, statErr := os.Stat(arg); statErr == nil && info.IsDir() {
			m, err = manifest.InstallDir(arg, root)
		} else {
			name, version, ok := strings.Cut(arg, "@")
			if !ok || name == "" || version == "" {
				return fmt.Errorf("expected a package directory or name@version, got %q", arg)
			}
			var cm *config.Manager
			cm, err = config.NewManager()
			if err != nil {
				return err
			}
			m, err = manifest.Install(cm.PackagesDir(), name, version, root)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Installed %s %s (%d artifact mapping(s)) into %s\n",
			m.Package.Name, m.Package.Version, len(m.Artifacts), filepath.Clean(root))
		return nil
	},
}

func init() {
	installCmd.Flags().String("root", "", "project root (default: current directory)")
	rootCmd.AddCommand(installCmd)
}
