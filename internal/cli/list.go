package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/schematic-labs/schematic/internal/config"
	"github.com/schematic-labs/schematic/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	listPluginsDir string
	listJSON       bool
)

func init() {
	listCmd.Flags().StringVar(&listPluginsDir, "plugins-dir", "", "Plugins root (default: ./src/plugins, or the plugins_dir config key)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List plugins in the project",
	Long:  `List the plugins found under the project's plugins directory.`,
	RunE:  runList,
}

// listEntry represents an installed plugin for display.
type listEntry struct {
	ID        string `json:"id"`
	Version   string `json:"version"`
	Name      string `json:"name"`
	Registers string `json:"registers"`
}

func runList(cmd *cobra.Command, args []string) error {
	config.Load()
	root := listPluginsDir
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

	var entries []listEntry
	for _, p := range plugins {
		e := listEntry{ID: p.ID, Registers: p.Summary()}
		if p.Manifest != nil {
			e.Version = p.Manifest.Version
			e.Name = p.Manifest.Name
		}
		entries = append(entries, e)
	}

	if listJSON {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling plugin list: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVERSION\tNAME\tREGISTERS")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.Version, e.Name, e.Registers)
	}
	return w.Flush()
}
