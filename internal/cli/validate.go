package cli

import (
	"fmt"

	"github.com/siteforge-labs/siteforge/internal/params"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <params-file>",
	Short: "Validate a parameter file against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		result, err := params.ValidateFile(path)
		if err != nil {
			return err
		}

		if result.Valid {
			// Schema-valid; run the full decode for format version and
			// type checks.
			if _, err := params.Load(path); err != nil {
				return err
			}
			fmt.Printf("%s is valid.\n", path)
			return nil
		}

		fmt.Printf("%s has %d issue(s):\n", path, len(result.Issues))
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			fmt.Printf("  - %s\n", msg)
		}
		return fmt.Errorf("validation failed")
	},
}
