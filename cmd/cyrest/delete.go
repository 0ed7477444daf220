package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(flags *rootFlags) *cobra.Command {
	var styleName string

	cmd := &cobra.Command{
		Use:   "delete PROPERTY",
		Short: "Remove a style's mapping for a visual property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}

			removed, err := app.applier.Delete(cmd.Context(), styleName, args[0])
			if err != nil {
				return err
			}
			if removed {
				fmt.Fprintf(cmd.OutOrStdout(), "deleted mapping for %s in style %q\n", args[0], styleName)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "style %q has no mapping for %s\n", styleName, args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&styleName, "style", "s", "default", "Style name")

	return cmd
}
