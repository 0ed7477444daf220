package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/go-cytoscape/cyrest/internal/mapping"
)

var (
	getHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	getKindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

func newGetCmd(flags *rootFlags) *cobra.Command {
	var styleName string

	cmd := &cobra.Command{
		Use:   "get [PROPERTY]",
		Short: "Print a style's mapping for one visual property, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var docs []mapping.Document
			if len(args) == 1 {
				doc, err := app.applier.Get(ctx, styleName, args[0])
				if err != nil {
					return err
				}
				docs = []mapping.Document{*doc}
			} else {
				docs, err = app.applier.GetAll(ctx, styleName)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				fmt.Fprint(out, renderMappingTable(docs))
				return nil
			}

			var payload any = docs
			if len(args) == 1 {
				payload = docs[0]
			}
			encoded, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(encoded))
			return nil
		},
	}

	cmd.Flags().StringVarP(&styleName, "style", "s", "default", "Style name")

	return cmd
}

func renderMappingTable(docs []mapping.Document) string {
	var b strings.Builder
	b.WriteString(getHeaderStyle.Render(fmt.Sprintf("%-32s %-12s %s", "PROPERTY", "KIND", "COLUMN")))
	b.WriteString("\n")
	for _, doc := range docs {
		column := fmt.Sprintf("%s (%s)", doc.Column, doc.ColumnType)
		switch doc.Kind {
		case mapping.Continuous:
			column = fmt.Sprintf("%s, %d waypoints", column, len(doc.Points))
		case mapping.Discrete:
			column = fmt.Sprintf("%s, %d pairs", column, len(doc.Map))
		}
		b.WriteString(fmt.Sprintf("%-32s %s %s\n",
			doc.Property, getKindStyle.Render(fmt.Sprintf("%-12s", string(doc.Kind))), column))
	}
	return b.String()
}
