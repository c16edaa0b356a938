package domain

// EntryKind classifies a navigation entry
type EntryKind int

const (
	KindPlain EntryKind = iota
	KindExample
	KindSubexample
	KindSection
)

// String returns a human-readable name for the kind
func (k EntryKind) String() string {
	switch k {
	case KindExample:
		return "example"
	case KindSubexample:
		return "subexample"
	case KindSection:
		return "section"
	default:
		return "plain"
	}
}

// NavEntry represents one row in the navigation pane
type NavEntry struct {
	Kind      EntryKind
	Title     string
	IsCurrent bool // true when this entry is the selected page
}

// Snippet represents a fenced code block extracted from a document
type Snippet struct {
	Language string // fence info string, "" for unmarked blocks
	Source   string
}

// Entry is a navigation entry together with the content it links to
type Entry struct {
	NavEntry
	Path     string // source file the entry came from
	Body     string // raw markdown prose for the content pane
	Snippets []Snippet
}
