package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schematic-labs/schematic/internal/config"
	"github.com/schematic-labs/schematic/internal/manifest"
	"github.com/schematic-labs/schematic/internal/workspace"
	"github.com/spf13/cobra"
)

var doctorPluginsDir string

func init() {
	doctorCmd.Flags().StringVar(&doctorPluginsDir, "plugins-dir", "", "Plugins root (default: ./src/plugins, or the plugins_dir config key)")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Validate every plugin in the project",
	Long:  `Validate the manifest of every plugin under the plugins directory and report problems.`,
	RunE:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	config.Load()
	root := doctorPluginsDir
	if root == "" {
		root = config.PluginsDir()
	}

	if _, err := os.Stat(root); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "No plugins directory at %s.\n", root)
		return nil
	}

	plugins, err := workspace.Scan(root)
	if err != nil {
		return err
	}
	if len(plugins) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No plugins found.")
		return nil
	}

	out := cmd.OutOrStdout()
	broken := 0
	for _, p := range plugins {
		if p.Err != nil {
			broken++
			fmt.Fprintf(out, "  [FAIL] %s: %v\n", p.ID, p.Err)
			continue
		}
		result, err := manifest.ValidateFile(filepath.Join(p.Dir, manifest.FileName))
		if err != nil {
			return fmt.Errorf("validating %s: %w", p.ID, err)
		}
		if result.Valid {
			fmt.Fprintf(out, "  [ OK ] %s\n", p.ID)
			continue
		}
		broken++
		fmt.Fprintf(out, "  [FAIL] %s\n", p.ID)
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			fmt.Fprintf(out, "         - %s\n", msg)
		}
	}

	if broken > 0 {
		return fmt.Errorf("%d of %d plugins have manifest problems", broken, len(plugins))
	}
	fmt.Fprintf(out, "All %d plugins look healthy.\n", len(plugins))
	return nil
}
