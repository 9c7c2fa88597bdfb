package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/schematic-labs/schematic/internal/config"
	"github.com/schematic-labs/schematic/internal/manifest"
	"github.com/schematic-labs/schematic/internal/registry"
	"github.com/schematic-labs/schematic/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	createTemplate  string
	createOutputDir string
)

func init() {
	createCmd.Flags().StringVar(&createTemplate, "template", string(registry.DefaultKind),
		"Template kind: "+strings.Join(registry.KindNames(), ", "))
	createCmd.Flags().StringVar(&createOutputDir, "output-dir", "",
		"Plugins root (default: ./src/plugins, or the plugins_dir config key)")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <plugin-name>",
	Short: "Scaffold a new plugin",
	Long: `Scaffold a new Schematic plugin under the project's plugins directory.

The plugin name is a lowercase kebab-case identifier and becomes the plugin
directory name. Each template kind produces a manifest, a plugin definition,
and (for UI kinds) a component file.

Examples:
  schematic create style-inspector
  schematic create validation-service --template=service`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf("plugin name is required")
		}
		if len(args) > 1 {
			return fmt.Errorf("expected one plugin name, got %d arguments", len(args))
		}
		return nil
	},
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]
	if !manifest.ValidID(name) {
		return fmt.Errorf("invalid plugin name %q: use %s", name, manifest.IDPatternHint)
	}

	kind, err := registry.ParseKind(createTemplate)
	if err != nil {
		return err
	}

	config.Load()
	outDir := createOutputDir
	if outDir == "" {
		outDir = config.PluginsDir()
	}

	result, err := scaffold.Generate(scaffold.NewRequest(name, kind, outDir))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s plugin at %s/\n", kind, result.Dir)
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(out, "\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}

	printNextSteps(out, kind)
	return nil
}

func printNextSteps(out io.Writer, kind registry.Kind) {
	d := registry.Lookup(kind)

	fmt.Fprintln(out, "\nNext steps:")
	switch {
	case d.HasUI:
		fmt.Fprintf(out, "  1. Edit components/%s.tsx to build your panel UI\n", d.Component)
		fmt.Fprintln(out, "  2. Adjust capabilities in manifest.yaml if you need more host access")
	case kind == registry.KindService:
		fmt.Fprintln(out, "  1. Implement the service surface in index.ts (createService)")
		fmt.Fprintln(out, "  2. Consumers reach it via the id in the manifest's provides block")
	default:
		fmt.Fprintln(out, "  1. Uncomment the extensions block in manifest.yaml")
		fmt.Fprintln(out, "  2. Point it at the extension point you want to contribute to")
	}
	fmt.Fprintln(out, "  3. Reload the editor to activate the plugin")
}
