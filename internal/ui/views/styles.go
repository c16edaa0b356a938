package views

import (
	"github.com/charmbracelet/lipgloss"

	"docpane/internal/theme"
)

// Styles contains all the style definitions for the UI, derived from
// the theme resolver for one mode. The whole set is rebuilt on every
// mode change so no stale style survives a theme switch.
type Styles struct {
	Title           lipgloss.Style
	NavLink         lipgloss.Style
	NavLinkActive   lipgloss.Style
	NavLinkPanicked lipgloss.Style
	SectionDivider  lipgloss.Style
	Banner          lipgloss.Style
	Dim             lipgloss.Style
	Status          lipgloss.Style
	Help            lipgloss.Style
	NavPane         lipgloss.Style
	ContentPane     lipgloss.Style
	Main            lipgloss.Style

	resolver *theme.Resolver
	mode     theme.Mode
}

// NewStyles derives the full style set for one mode
func NewStyles(resolver *theme.Resolver, mode theme.Mode) *Styles {
	navLink := FromVisual(resolver.Resolve(mode, theme.NavLink))
	divider := resolver.Resolve(mode, theme.SectionDivider)
	banner := resolver.Resolve(mode, theme.NoticeBanner)

	return &Styles{
		Title: FromVisual(resolver.Resolve(mode, theme.NavLinkActive)).
			Bold(true).
			MarginBottom(1),
		NavLink: navLink,
		NavLinkActive: FromVisual(resolver.Resolve(mode, theme.NavLinkActive)).
			Bold(true),
		NavLinkPanicked: FromVisual(resolver.Resolve(mode, theme.NavLinkPanicked)),
		SectionDivider: FromVisual(divider).
			Italic(true),
		Banner: FromVisual(banner).
			Bold(true).
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(banner.Border)).
			Padding(0, 2),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: FromVisual(divider).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		NavPane: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color(divider.Border)).
			PaddingRight(1),
		ContentPane: lipgloss.NewStyle().
			PaddingLeft(2),
		Main: lipgloss.NewStyle().
			Padding(1, 2),

		resolver: resolver,
		mode:     mode,
	}
}

// Mode returns the mode the styles were derived for
func (s *Styles) Mode() theme.Mode {
	return s.mode
}

// Code returns the style for a code-token role under the active mode
func (s *Styles) Code(role theme.Role) lipgloss.Style {
	return FromVisual(s.resolver.Resolve(s.mode, role))
}

// FromVisual converts a resolved VisualStyle into a lipgloss style.
// Empty fields leave the terminal default in place.
func FromVisual(vs theme.VisualStyle) lipgloss.Style {
	style := lipgloss.NewStyle()
	if vs.Foreground != "" {
		style = style.Foreground(lipgloss.Color(vs.Foreground))
	}
	if vs.Background != "" {
		style = style.Background(lipgloss.Color(vs.Background))
	}
	if vs.Border != "" {
		style = style.BorderForeground(lipgloss.Color(vs.Border))
	}
	return style
}
