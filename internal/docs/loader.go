package docs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"docpane/internal/domain"
	"docpane/internal/eventbus"
)

// LoaderService walks a directory for markdown documents and derives
// the navigation entry sequence from them
type LoaderService interface {
	StartLoad(ctx context.Context, dir string) error
	Load(dir string) ([]domain.Entry, error)
}

// loaderService is the concrete implementation
type loaderService struct {
	bus       eventbus.EventBus
	log       zerolog.Logger
	mu        sync.Mutex
	isLoading bool
}

// NewLoaderService creates a new loader service
func NewLoaderService(bus eventbus.EventBus, log zerolog.Logger) LoaderService {
	ls := &loaderService{
		bus: bus,
		log: log,
	}

	// Subscribe to reload requests
	bus.Subscribe(eventbus.EventReloadRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ReloadRequestedEvent); ok {
			go ls.StartLoad(context.Background(), event.Dir)
		}
	})

	return ls
}

// StartLoad walks dir in the background and publishes the result:
// DocsLoadedEvent on success, ErrorEvent on failure. A successful
// load also clears the panicked state; a failed one raises it.
func (ls *loaderService) StartLoad(ctx context.Context, dir string) error {
	ls.mu.Lock()
	if ls.isLoading {
		ls.mu.Unlock()
		return fmt.Errorf("load already in progress")
	}
	ls.isLoading = true
	ls.mu.Unlock()

	ls.bus.Publish(eventbus.LoadStartedEvent{Dir: dir})

	go func() {
		defer func() {
			ls.mu.Lock()
			ls.isLoading = false
			ls.mu.Unlock()
		}()

		if err := ctx.Err(); err != nil {
			return
		}

		entries, err := ls.Load(dir)
		if err != nil {
			ls.log.Error().Err(err).Str("dir", dir).Msg("document load failed")
			ls.bus.Publish(eventbus.ErrorEvent{Message: "failed to load documents", Err: err})
			ls.bus.Publish(eventbus.PanicRaisedEvent{Message: err.Error()})
			return
		}

		ls.log.Info().Str("dir", dir).Int("entries", len(entries)).Msg("documents loaded")
		ls.bus.Publish(eventbus.DocsLoadedEvent{Dir: dir, Entries: entries})
		ls.bus.Publish(eventbus.PanicClearedEvent{})
	}()

	return nil
}

// Load synchronously walks dir and parses every markdown file, in
// lexical path order so the derived entry sequence is stable.
func (ls *loaderService) Load(dir string) ([]domain.Entry, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Skip hidden directories, but never the walk root itself
			// so a dot-named docs dir stays loadable
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, fmt.Errorf("no markdown documents under %s", dir)
	}

	var entries []domain.Entry
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		entries = append(entries, ParseFile(path, src)...)
	}
	return entries, nil
}
