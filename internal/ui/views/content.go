package views

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"

	"docpane/internal/domain"
	"docpane/internal/theme"
)

// RenderEntryContent builds the content pane text for one entry: the
// numbered heading, the prose body and every code snippet highlighted
// through the theme resolver.
func (r *Renderer) RenderEntryContent(entry domain.Entry, label string, width int) string {
	var b strings.Builder

	heading := strings.TrimSpace(label + entry.Title)
	if heading != "" {
		b.WriteString(r.styles.Title.Render(heading))
		b.WriteString("\n")
	}

	if entry.Body != "" {
		b.WriteString(r.styles.Code(theme.CodeText).Render(wrap(entry.Body, width)))
		b.WriteString("\n")
	}

	for _, snippet := range entry.Snippets {
		b.WriteString("\n")
		if snippet.Language != "" {
			b.WriteString(r.styles.Dim.Render("· " + snippet.Language))
			b.WriteString("\n")
		}
		b.WriteString(r.renderSnippet(snippet))
		b.WriteString("\n")
	}

	if entry.Path != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render(entry.Path))
	}

	return b.String()
}

// renderSnippet highlights one code block token by token. Every token
// type maps onto a code role, so the output is styled entirely by the
// (mode, role) table.
func (r *Renderer) renderSnippet(snippet domain.Snippet) string {
	lexer := lexers.Get(snippet.Language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, snippet.Source)
	if err != nil {
		// Unhighlighted source beats no source
		return snippet.Source
	}

	var b strings.Builder
	for token := iterator(); token != chroma.EOF; token = iterator() {
		style := r.styles.Code(theme.CodeRole(token.Type))
		b.WriteString(renderToken(style, token.Value))
	}
	return b.String()
}

// renderToken styles a token value line by line so multi-line tokens
// (strings, comments) do not confuse terminal width handling.
func renderToken(style lipgloss.Style, value string) string {
	if !strings.Contains(value, "\n") {
		return style.Render(value)
	}
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// wrap does greedy word wrapping at width columns
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	var out []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			if len(line)+1+len(word) > width {
				out = append(out, line)
				line = word
				continue
			}
			line += " " + word
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
