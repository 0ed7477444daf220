package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/go-cytoscape/cyrest/internal/tui/watch"
)

func newWatchCmd(flags *rootFlags) *cobra.Command {
	var styleName string
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live view of a style's mappings, refreshed on an interval",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}

			model := watch.NewModel(app.applier, styleName, interval, app.settings.RequestTimeout.Std())
			program := tea.NewProgram(model)
			_, err = program.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&styleName, "style", "s", "default", "Style name")
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "Refresh interval")

	return cmd
}
