package cli

import (
	"fmt"

	"github.com/schematic-labs/schematic/internal/manifest"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <manifest-path>",
	Short: "Validate a plugin manifest file",
	Long:  `Validate a single manifest.yaml against the Schematic plugin schema and semantic rules.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		result, err := manifest.ValidateFile(path)
		if err != nil {
			return err
		}

		if result.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid.\n", path)
			return nil
		}

		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", msg)
		}
		return fmt.Errorf("%s has %d validation issue(s)", path, len(result.Issues))
	},
}
