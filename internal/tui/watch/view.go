package watch

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-cytoscape/cyrest/internal/mapping"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	kindStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// View renders the current mapping table.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Style %q", m.styleName)))
	b.WriteString("\n\n")

	switch {
	case !m.loaded:
		b.WriteString(m.spinner.View())
		b.WriteString(" fetching mappings...\n")
	case m.err != nil:
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	case len(m.mappings) == 0:
		b.WriteString(dimStyle.Render("no mappings"))
		b.WriteString("\n")
	default:
		b.WriteString(headerStyle.Render(fmt.Sprintf("%-32s %-12s %s", "PROPERTY", "KIND", "COLUMN")))
		b.WriteString("\n")
		for _, doc := range m.mappings {
			b.WriteString(fmt.Sprintf("%-32s %-12s %s\n",
				doc.Property, kindStyle.Render(fmt.Sprintf("%-12s", string(doc.Kind))), describeColumn(doc)))
		}
	}

	if m.loaded {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("updated %s • refresh %s • q to quit",
			m.fetched.Format("15:04:05"), m.interval)))
		b.WriteString("\n")
	}
	return b.String()
}

func describeColumn(doc mapping.Document) string {
	desc := fmt.Sprintf("%s (%s)", doc.Column, doc.ColumnType)
	switch doc.Kind {
	case mapping.Continuous:
		return fmt.Sprintf("%s, %d waypoints", desc, len(doc.Points))
	case mapping.Discrete:
		return fmt.Sprintf("%s, %d pairs", desc, len(doc.Map))
	}
	return desc
}
