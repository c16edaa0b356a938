package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docpane/internal/domain"
	"docpane/internal/numbering"
	"docpane/internal/theme"
)

func testRenderer(t *testing.T, mode theme.Mode) *Renderer {
	t.Helper()
	resolver, err := theme.NewResolver()
	require.NoError(t, err)
	return NewRenderer(NewStyles(resolver, mode))
}

func testEntries() []domain.Entry {
	return []domain.Entry{
		{NavEntry: domain.NavEntry{Kind: domain.KindExample, Title: "Counters"}},
		{NavEntry: domain.NavEntry{Kind: domain.KindSubexample, Title: "Simple counter"}},
		{NavEntry: domain.NavEntry{Kind: domain.KindSection, Title: "Appendix"}},
	}
}

func navEntries(entries []domain.Entry) []domain.NavEntry {
	nav := make([]domain.NavEntry, len(entries))
	for i, e := range entries {
		nav[i] = e.NavEntry
	}
	return nav
}

func testState(entries []domain.Entry) ViewState {
	return ViewState{
		Width:          100,
		Height:         30,
		Entries:        entries,
		Labels:         numbering.Labels(navEntries(entries)),
		ViewportHeight: 20,
		ShowNumbers:    true,
	}
}

func TestRenderShowsNumberedEntries(t *testing.T) {
	r := testRenderer(t, theme.Dark)
	out := r.Render(testState(testEntries()))

	assert.Contains(t, out, "1. Counters")
	assert.Contains(t, out, "1.1 Simple counter")
	assert.Contains(t, out, "Appendix")
}

func TestRenderHidesNumbersWhenDisabled(t *testing.T) {
	r := testRenderer(t, theme.Dark)
	state := testState(testEntries())
	state.ShowNumbers = false
	out := r.Render(state)

	assert.NotContains(t, out, "1. Counters")
	assert.Contains(t, out, "Counters")
}

func TestRenderBannerGatedOnPanicked(t *testing.T) {
	r := testRenderer(t, theme.Dark)
	state := testState(testEntries())

	calm := r.Render(state)
	assert.NotContains(t, calm, "unrecoverable")

	state.Panicked = true
	panicked := r.Render(state)
	assert.Contains(t, panicked, "unrecoverable")

	// Fully reversible: clearing the flag removes the banner again
	state.Panicked = false
	cleared := r.Render(state)
	assert.NotContains(t, cleared, "unrecoverable")
}

func TestRenderBannerCustomMessage(t *testing.T) {
	r := testRenderer(t, theme.Dark)
	state := testState(testEntries())
	state.Panicked = true
	state.PanicMessage = "docs directory vanished"

	out := r.Render(state)
	assert.Contains(t, out, "docs directory vanished")
}

func TestRenderEmptyList(t *testing.T) {
	r := testRenderer(t, theme.Dark)
	out := r.Render(testState(nil))
	assert.Contains(t, out, "No documents found")
}

func TestRenderModeNameInTitle(t *testing.T) {
	dark := testRenderer(t, theme.Dark).Render(testState(testEntries()))
	assert.Contains(t, dark, "dark")

	light := testRenderer(t, theme.Light).Render(testState(testEntries()))
	assert.Contains(t, light, "light")
}

func TestRenderEntryContent(t *testing.T) {
	r := testRenderer(t, theme.Light)
	entry := domain.Entry{
		NavEntry: domain.NavEntry{Kind: domain.KindExample, Title: "Hello"},
		Path:     "docs/hello.md",
		Body:     "Prints a greeting.",
		Snippets: []domain.Snippet{
			{Language: "go", Source: "fmt.Println(\"hi\")\n"},
		},
	}

	out := r.RenderEntryContent(entry, "1. ", 60)
	assert.Contains(t, out, "1. Hello")
	assert.Contains(t, out, "Prints a greeting.")
	assert.Contains(t, out, "Println")
	assert.Contains(t, out, "docs/hello.md")
}

func TestWrap(t *testing.T) {
	wrapped := wrap("one two three four five", 9)
	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), 9)
	}
	assert.Equal(t, "one two three four five", strings.ReplaceAll(wrapped, "\n", " "))
}
