package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	baseURL    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "cyrest",
		Short:         "cyrest drives a running visualization app's style mappings over its REST interface",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a YAML settings file")
	cmd.PersistentFlags().StringVar(&flags.baseURL, "base-url", "", "Service base URL (overrides config)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newApplyCmd(flags))
	cmd.AddCommand(newGetCmd(flags))
	cmd.AddCommand(newDeleteCmd(flags))
	cmd.AddCommand(newSetCmd(flags))
	cmd.AddCommand(newWatchCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
