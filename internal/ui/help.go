package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent renders the full help text for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Docpane Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Move between entries")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("ctrl+d/u"), descStyle.Render("Page down/up")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("g/G"), descStyle.Render("Go to top/bottom")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("tab"), descStyle.Render("Switch focus between panes")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Documents"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("enter"), descStyle.Render("Open document source in pager")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("r"), descStyle.Render("Reload documents from disk")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("n"), descStyle.Render("Toggle entry numbering")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Appearance"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("t"), descStyle.Render("Toggle light/dark theme")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("?"), descStyle.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}
