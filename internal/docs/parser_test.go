package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docpane/internal/domain"
)

func TestParseFileHeadingKinds(t *testing.T) {
	src := []byte(`# Counters

Intro prose.

## Simple counter

Body of the simple counter.

### Notes

Fine print.

## Derived counter

# Forms
`)

	entries := ParseFile("docs/counters.md", src)
	require.Len(t, entries, 5)

	assert.Equal(t, domain.KindExample, entries[0].Kind)
	assert.Equal(t, "Counters", entries[0].Title)
	assert.Equal(t, "Intro prose.", entries[0].Body)

	assert.Equal(t, domain.KindSubexample, entries[1].Kind)
	assert.Equal(t, "Simple counter", entries[1].Title)
	assert.Equal(t, "Body of the simple counter.", entries[1].Body)

	assert.Equal(t, domain.KindSection, entries[2].Kind)
	assert.Equal(t, "Notes", entries[2].Title)

	assert.Equal(t, domain.KindSubexample, entries[3].Kind)
	assert.Equal(t, domain.KindExample, entries[4].Kind)
}

func TestParseFileSnippets(t *testing.T) {
	src := []byte("# Hello\n\nGreeting example.\n\n```go\nfmt.Println(\"hi\")\n```\n\nMore prose.\n\n```\nplain block\n```\n")

	entries := ParseFile("docs/hello.md", src)
	require.Len(t, entries, 1)

	entry := entries[0]
	require.Len(t, entry.Snippets, 2)
	assert.Equal(t, "go", entry.Snippets[0].Language)
	assert.Equal(t, "fmt.Println(\"hi\")\n", entry.Snippets[0].Source)
	assert.Equal(t, "", entry.Snippets[1].Language)
	assert.Equal(t, "plain block\n", entry.Snippets[1].Source)
	assert.Contains(t, entry.Body, "Greeting example.")
	assert.Contains(t, entry.Body, "More prose.")
}

func TestParseFileNoHeadings(t *testing.T) {
	src := []byte("Just some notes, no structure.\n")

	entries := ParseFile("docs/notes.md", src)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.KindPlain, entries[0].Kind)
	assert.Equal(t, "notes", entries[0].Title)
	assert.Equal(t, "Just some notes, no structure.", entries[0].Body)
}

func TestParseFileSubexampleBeforeExample(t *testing.T) {
	// An H2 before any H1 is accepted; the numbering engine labels it
	// 0.1, structural validation is not the parser's job either
	src := []byte("## Orphan\n\n# First real example\n")

	entries := ParseFile("docs/odd.md", src)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.KindSubexample, entries[0].Kind)
	assert.Equal(t, domain.KindExample, entries[1].Kind)
}

func TestParseFileEmpty(t *testing.T) {
	entries := ParseFile("docs/empty.md", nil)
	assert.Empty(t, entries)
}
