package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"docpane/internal/domain"
	"docpane/internal/notice"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Entries        []domain.Entry
	Labels         []string // index-aligned with Entries
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	Loading        bool
	Panicked       bool
	PanicMessage   string
	StatusMessage  string
	ShowNumbers    bool
	ContentView    string // pre-rendered content pane
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

// SetStyles swaps the style set, used when the color mode changes so
// every subsequent render resolves against the new mode
func (r *Renderer) SetStyles(styles *Styles) {
	r.styles = styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	// Title with loading indicator and theme name
	logo := r.styles.Title.Render("docpane")

	rightContent := r.styles.Dim.Render(r.styles.mode.String())
	if state.Loading {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		rightContent = fmt.Sprintf("%s  %s", r.styles.Dim.Render(spinner[frame]+" Loading"), rightContent)
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	availableWidth := termWidth - 4 // Account for main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)

	if paddingWidth > 0 {
		content.WriteString(fmt.Sprintf("%s%s%s", logo, strings.Repeat(" ", paddingWidth), rightContent))
	} else {
		content.WriteString(fmt.Sprintf("%s  %s", logo, rightContent))
	}
	content.WriteString("\n")

	// Panicked banner, gated purely on the flag
	if notice.Visible(state.Panicked) {
		msg := state.PanicMessage
		if msg == "" {
			msg = notice.DefaultMessage
		}
		banner := r.styles.Banner.Width(availableWidth - 2).Render(msg)
		content.WriteString(banner)
		content.WriteString("\n")
	}

	// Two panes side by side
	navWidth := navPaneWidth(termWidth)
	nav := r.renderNavList(state, navWidth)
	contentWidth := ContentWidth(termWidth)
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		r.styles.NavPane.Width(navWidth).Render(nav),
		r.styles.ContentPane.Width(contentWidth).Render(state.ContentView),
	)
	content.WriteString(body)

	// Status line
	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
	}

	content.WriteString("\n")
	content.WriteString(r.styles.Help.Render("j/k navigate · enter page source · t theme · r reload · ? help · q quit"))

	return r.styles.Main.MaxHeight(state.Height).Render(content.String())
}

// renderNavList renders the navigation pane rows inside the viewport
func (r *Renderer) renderNavList(state ViewState, width int) string {
	if len(state.Entries) == 0 {
		if state.Loading {
			return r.styles.Dim.Render("Looking for documents...")
		}
		return r.styles.Dim.Render("No documents found. Press r to reload.")
	}

	var lines []string
	end := state.ViewportOffset + state.ViewportHeight
	if end > len(state.Entries) {
		end = len(state.Entries)
	}
	start := state.ViewportOffset
	if start < 0 {
		start = 0
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderNavRow(state, i, width))
	}

	if start > 0 {
		lines[0] = r.styles.Dim.Render("↑ (more above)")
	}
	if end < len(state.Entries) && len(lines) > 0 {
		lines[len(lines)-1] = r.styles.Dim.Render("↓ (more below)")
	}

	return strings.Join(lines, "\n")
}

// renderNavRow renders one entry row with its computed label
func (r *Renderer) renderNavRow(state ViewState, index, width int) string {
	entry := state.Entries[index]

	label := ""
	if state.ShowNumbers && index < len(state.Labels) {
		label = state.Labels[index]
	}

	text := truncate(label+entry.Title, width-2)

	switch {
	case entry.Kind == domain.KindSection:
		return r.styles.SectionDivider.Render("── " + text)
	case state.Panicked && index == state.SelectedIndex:
		return r.styles.NavLinkPanicked.Render("> " + text)
	case index == state.SelectedIndex:
		return r.styles.NavLinkActive.Render("> " + text)
	case state.Panicked:
		return r.styles.NavLinkPanicked.Render("  " + text)
	default:
		return r.styles.NavLink.Render("  " + text)
	}
}

// ContentWidth returns the width of the content pane for a given
// terminal width, mirroring the layout math used by Render
func ContentWidth(termWidth int) int {
	if termWidth <= 0 {
		termWidth = 80
	}
	width := termWidth - 4 - navPaneWidth(termWidth) - 4
	if width < 10 {
		width = 10
	}
	return width
}

func navPaneWidth(termWidth int) int {
	width := termWidth / 3
	if width < 24 {
		width = 24
	}
	if width > 48 {
		width = 48
	}
	return width
}

func truncate(s string, max int) string {
	if max <= 1 || lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max-1 {
		return s
	}
	return string(runes[:max-1]) + "…"
}
