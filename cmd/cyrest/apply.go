package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-cytoscape/cyrest/internal/config"
	"github.com/go-cytoscape/cyrest/internal/mapping"
)

func newApplyCmd(flags *rootFlags) *cobra.Command {
	var specPath string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Build a mapping from a YAML spec and apply it to a style",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}

			spec, err := config.LoadMappingSpec(specPath)
			if err != nil {
				return err
			}
			req, err := spec.Request()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			doc, err := mapping.Build(ctx, app.svc, req)
			if err != nil {
				return err
			}
			if err := app.applier.Apply(ctx, spec.StyleName(), doc); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "applied %s mapping of %s to %s in style %q\n",
				doc.Kind, doc.Column, doc.Property, spec.StyleName())
			return nil
		},
	}

	cmd.Flags().StringVarP(&specPath, "file", "f", "", "Path to the mapping spec YAML file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
