package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDocsLoaded      EventType = "DocsLoaded"
	EventDocSelected     EventType = "DocSelected"
	EventLoadStarted     EventType = "LoadStarted"
	EventReloadRequested EventType = "ReloadRequested"
	EventThemeChanged    EventType = "ThemeChanged"
	EventPanicRaised     EventType = "PanicRaised"
	EventPanicCleared    EventType = "PanicCleared"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventConfigChanged   EventType = "ConfigChanged"
	EventError           EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// LoadStartedEvent is emitted when document loading begins
type LoadStartedEvent struct {
	Dir string
}

func (e LoadStartedEvent) Type() EventType { return EventLoadStarted }

// DocsLoadedEvent is emitted when the navigation list has been re-derived
type DocsLoadedEvent struct {
	Dir     string
	Entries []Entry
}

func (e DocsLoadedEvent) Type() EventType { return EventDocsLoaded }

// DocSelectedEvent is emitted when the current entry changes
type DocSelectedEvent struct {
	Index int
}

func (e DocSelectedEvent) Type() EventType { return EventDocSelected }

// ReloadRequestedEvent is emitted to request a fresh walk of the docs dir
type ReloadRequestedEvent struct {
	Dir string
}

func (e ReloadRequestedEvent) Type() EventType { return EventReloadRequested }

// ThemeChangedEvent is emitted when the resolved color mode changes
type ThemeChangedEvent struct {
	Mode string // "light" or "dark"
}

func (e ThemeChangedEvent) Type() EventType { return EventThemeChanged }

// PanicRaisedEvent flips the panicked flag on
type PanicRaisedEvent struct {
	Message string
}

func (e PanicRaisedEvent) Type() EventType { return EventPanicRaised }

// PanicClearedEvent flips the panicked flag off
type PanicClearedEvent struct{}

func (e PanicClearedEvent) Type() EventType { return EventPanicCleared }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	DocsDir string
	Theme   string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when configuration needs to be
// saved. It carries a full snapshot of the savable settings so
// subscribers never reach back into UI-owned state.
type ConfigChangedEvent struct {
	Theme        string
	DocsDir      string
	ShowNumbers  bool
	RememberLast bool
	LastIndex    int
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
