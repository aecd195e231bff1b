package cli

import (
	"fmt"
	"os"

	"github.com/siteforge-labs/siteforge/internal/config"
	"github.com/siteforge-labs/siteforge/internal/materialize"
	"github.com/siteforge-labs/siteforge/internal/params"
	"github.com/siteforge-labs/siteforge/internal/role"
	"github.com/spf13/cobra"
)

var (
	materializeRole   string
	materializeParams string
)

func init() {
	materializeCmd.Flags().StringVar(&materializeRole, "role", "", "Service role to materialize (master, tserver, monitor, gc, tracer, client); defaults to master")
	materializeCmd.Flags().StringVar(&materializeParams, "params", "", "Path to the parameter file (defaults to the configured params setting)")
	rootCmd.AddCommand(materializeCmd)
}

var materializeCmd = &cobra.Command{
	Use:   "materialize",
	Short: "Materialize the configuration tree for a service role",
	Long: `Materialize the configuration directory, pid/log directories, site file,
environment script, host lists, and logging configuration for a service role,
as described by a parameter file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := role.Parse(materializeRole)
		if err != nil {
			return err
		}

		paramsPath := materializeParams
		if paramsPath == "" {
			config.Load()
			paramsPath = config.Get(config.KeyParamsFile)
		}
		if paramsPath == "" {
			return fmt.Errorf("no parameter file: pass --params or set the %q config key", config.KeyParamsFile)
		}

		p, err := params.Load(paramsPath)
		if err != nil {
			return err
		}

		fmt.Printf("Materializing %s configuration in %s\n", r, p.ConfDir)
		if err := materialize.New(p, os.Stdout).SetupConfDir(r); err != nil {
			return fmt.Errorf("materializing %s configuration: %w", r, err)
		}

		fmt.Println("\nConfiguration materialized successfully.")
		return nil
	},
}
