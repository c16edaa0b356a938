package docs

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"docpane/internal/domain"
)

// ParseFile turns one markdown document into navigation entries.
// Heading levels map onto entry kinds: H1 is an example, H2 a
// sub-example, H3 and deeper a section divider. Prose and fenced code
// between headings attach to the entry above them. A document without
// headings yields a single plain entry titled by its filename.
func ParseFile(path string, src []byte) []domain.Entry {
	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var entries []domain.Entry
	var body bytes.Buffer

	current := -1 // index into entries; -1 until the first heading

	ensureEntry := func() {
		if current >= 0 {
			return
		}
		entries = append(entries, domain.Entry{
			NavEntry: domain.NavEntry{
				Kind:  domain.KindPlain,
				Title: docTitle(path),
			},
			Path: path,
		})
		current = len(entries) - 1
	}

	flushBody := func() {
		t := strings.TrimSpace(body.String())
		body.Reset()
		if t == "" {
			return
		}
		ensureEntry()
		if entries[current].Body != "" {
			entries[current].Body += "\n\n" + t
		} else {
			entries[current].Body = t
		}
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			flushBody()
			entries = append(entries, domain.Entry{
				NavEntry: domain.NavEntry{
					Kind:  kindForLevel(node.Level),
					Title: string(node.Text(src)),
				},
				Path: path,
			})
			current = len(entries) - 1

		case *ast.FencedCodeBlock:
			flushBody()
			ensureEntry()
			entries[current].Snippets = append(entries[current].Snippets, domain.Snippet{
				Language: string(node.Language(src)),
				Source:   blockSource(node, src),
			})

		default:
			t := blockText(n, src)
			if t != "" {
				if body.Len() > 0 {
					body.WriteString("\n\n")
				}
				body.WriteString(t)
			}
		}
	}
	flushBody()

	return entries
}

func kindForLevel(level int) domain.EntryKind {
	switch level {
	case 1:
		return domain.KindExample
	case 2:
		return domain.KindSubexample
	default:
		return domain.KindSection
	}
}

func docTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// blockSource returns the raw lines of a block node.
func blockSource(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(src))
	}
	return buf.String()
}

// blockText gets the text content of a goldmark AST node.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.FirstChild() == nil {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(blockText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
