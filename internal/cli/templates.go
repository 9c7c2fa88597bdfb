package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/schematic-labs/schematic/internal/registry"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Describe the available plugin templates",
	Long:  `List the built-in plugin templates: what each one is for, the capabilities it requests, and the files it produces.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TEMPLATE\tTITLE\tCAPABILITIES\tFILES")
		for _, k := range registry.Kinds() {
			d := registry.Lookup(k)
			files := "manifest.yaml, index.ts"
			if d.HasUI {
				files += ", components/" + d.Component + ".tsx"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", k, d.Title, strings.Join(d.Capabilities, ","), files)
		}
		return w.Flush()
	},
}
