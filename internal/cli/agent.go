package cli

import (
	"fmt"
	"sort"

	"github.com/siteforge-labs/siteforge/internal/agentconfig"
	"github.com/siteforge-labs/siteforge/internal/config"
	"github.com/spf13/cobra"
)

var (
	agentOverride string
	agentRoot     string
	agentLabel    string
)

func init() {
	agentCmd.PersistentFlags().StringVar(&agentOverride, "config", "", "Agent configuration file merged over the built-in defaults")
	agentCmd.PersistentFlags().StringVar(&agentRoot, "root", "", "Agent root directory for relative path resolution")
	agentCmd.PersistentFlags().StringVar(&agentLabel, "label", "", "Agent label")

	agentCmd.AddCommand(agentGetCmd)
	agentCmd.AddCommand(agentResolveCmd)
	agentCmd.AddCommand(agentShowCmd)
	rootCmd.AddCommand(agentCmd)
}

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Inspect the node agent's configuration store",
	Long: `Read the node agent's configuration: built-in defaults, optionally merged
with an override file via --config.`,
}

// loadAgent builds an AgentConfig from the defaults, the optional override
// file, and the root/label flags (falling back to operator settings).
func loadAgent() (*agentconfig.AgentConfig, *agentconfig.Store, error) {
	store, err := agentconfig.NewStore()
	if err != nil {
		return nil, nil, err
	}
	if agentOverride != "" {
		if err := store.LoadFile(agentOverride); err != nil {
			return nil, nil, err
		}
	}

	root, label := agentRoot, agentLabel
	if root == "" || label == "" {
		config.Load()
		if root == "" {
			root = config.AgentRoot()
		}
		if label == "" {
			label = config.AgentLabel()
		}
	}

	return agentconfig.New(store, root, label), store, nil
}

var agentGetCmd = &cobra.Command{
	Use:   "get <section> <key>",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := loadAgent()
		if err != nil {
			return err
		}
		value, err := a.Get(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

var agentResolveCmd = &cobra.Command{
	Use:   "resolve <name>",
	Short: "Resolve an agent directory against the agent root",
	Long: `Resolve a path-valued key from the [agent] section. Relative values are
joined onto the agent root; absolute values pass through unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := loadAgent()
		if err != nil {
			return err
		}
		path, err := a.ResolvedPath(args[0])
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var agentShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective agent configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, store, err := loadAgent()
		if err != nil {
			return err
		}

		fmt.Printf("root:  %s\n", a.RootPath())
		fmt.Printf("label: %s\n", a.Label())

		sections := store.Sections()
		sort.Strings(sections)
		for _, section := range sections {
			fmt.Printf("\n[%s]\n", section)
			keys, err := store.Keys(section)
			if err != nil {
				return err
			}
			sort.Strings(keys)
			for _, key := range keys {
				value, err := store.Get(section, key)
				if err != nil {
					return err
				}
				fmt.Printf("%s=%s\n", key, value)
			}
		}
		return nil
	},
}
