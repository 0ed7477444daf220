package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/go-cytoscape/cyrest/internal/mapping"
	"github.com/go-cytoscape/cyrest/internal/props"
)

// setFlags are the flags shared by the property-specific set subcommands.
type setFlags struct {
	styleName    string
	column       string
	columnValues []string
	kind         string
	network      int64
}

func (f *setFlags) register(cmd *cobra.Command, defaultKind string) {
	cmd.Flags().StringVarP(&f.styleName, "style", "s", "default", "Style name")
	cmd.Flags().StringVarP(&f.column, "column", "c", "", "Table column to map values from")
	cmd.Flags().StringSliceVar(&f.columnValues, "column-values", nil, "Column values paired with the property values")
	cmd.Flags().StringVarP(&f.kind, "kind", "k", defaultKind, "Mapping kind: continuous, discrete or passthrough")
	cmd.Flags().Int64Var(&f.network, "network", 0, "Network SUID (0 means the current network)")
	_ = cmd.MarkFlagRequired("column")
}

func (f *setFlags) parsedKind() (mapping.Kind, error) {
	return mapping.ParseKind(f.kind)
}

// columnValuesAny converts flag values to numbers where possible, keeping
// the rest as strings for discrete keys.
func (f *setFlags) columnValuesAny() []any {
	values := make([]any, len(f.columnValues))
	for i, v := range f.columnValues {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			values[i] = n
		} else {
			values[i] = v
		}
	}
	return values
}

func newSetCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Map a table column to a specific visual property",
	}

	cmd.AddCommand(newSetNodeColorCmd(flags))
	cmd.AddCommand(newSetNodeOpacityCmd(flags))

	return cmd
}

func newSetNodeColorCmd(flags *rootFlags) *cobra.Command {
	sf := &setFlags{}
	var colors []string
	var defaultColor string

	cmd := &cobra.Command{
		Use:   "node-color",
		Short: "Map a column to node fill colors",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}
			kind, err := sf.parsedKind()
			if err != nil {
				return err
			}

			err = app.mapper.NodeColor(cmd.Context(), props.ColorMapping{
				Column:       sf.column,
				ColumnValues: sf.columnValuesAny(),
				Colors:       colors,
				Kind:         kind,
				Default:      defaultColor,
				Style:        sf.styleName,
				Network:      sf.network,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "mapped %s to node fill color in style %q\n", sf.column, sf.styleName)
			return nil
		},
	}

	sf.register(cmd, "continuous")
	cmd.Flags().StringSliceVar(&colors, "colors", nil, "Hex colors (#RRGGBB) paired with the column values")
	cmd.Flags().StringVar(&defaultColor, "default", "", "Style-wide default color")

	return cmd
}

func newSetNodeOpacityCmd(flags *rootFlags) *cobra.Command {
	sf := &setFlags{}
	var opacities []int
	var defaultOpacity int

	cmd := &cobra.Command{
		Use:   "node-opacity",
		Short: "Map a column to node fill opacity",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}
			kind, err := sf.parsedKind()
			if err != nil {
				return err
			}

			req := props.OpacityMapping{
				Column:       sf.column,
				ColumnValues: sf.columnValuesAny(),
				Opacities:    opacities,
				Kind:         kind,
				Style:        sf.styleName,
				Network:      sf.network,
			}
			if cmd.Flags().Changed("default") {
				req.Default = &defaultOpacity
			}

			if err := app.mapper.NodeFillOpacity(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "mapped %s to node opacity in style %q\n", sf.column, sf.styleName)
			return nil
		},
	}

	sf.register(cmd, "continuous")
	cmd.Flags().IntSliceVar(&opacities, "opacities", nil, "Opacity values in [0, 255] paired with the column values")
	cmd.Flags().IntVar(&defaultOpacity, "default", 0, "Style-wide default opacity")

	return cmd
}
