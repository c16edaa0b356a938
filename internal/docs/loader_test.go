package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docpane/internal/domain"
	"docpane/internal/eventbus"
)

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func newTestLoader() *loaderService {
	bus := eventbus.New(zerolog.Nop())
	return NewLoaderService(bus, zerolog.Nop()).(*loaderService)
}

func TestLoadWalksInLexicalOrder(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "20-second.md", "# Second\n")
	writeDoc(t, dir, "10-first.md", "# First\n\n## Detail\n")

	entries, err := newTestLoader().Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "First", entries[0].Title)
	assert.Equal(t, domain.KindExample, entries[0].Kind)
	assert.Equal(t, "Detail", entries[1].Title)
	assert.Equal(t, domain.KindSubexample, entries[1].Kind)
	assert.Equal(t, "Second", entries[2].Title)
}

func TestLoadSkipsHiddenDirsAndOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "a.md", "# Visible\n")
	writeDoc(t, dir, "readme.txt", "not markdown")
	hidden := filepath.Join(dir, ".cache")
	require.NoError(t, os.Mkdir(hidden, 0o755))
	writeDoc(t, hidden, "b.md", "# Hidden\n")

	entries, err := newTestLoader().Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Visible", entries[0].Title)
}

func TestLoadDotNamedRootDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".docs")
	require.NoError(t, os.Mkdir(dir, 0o755))
	writeDoc(t, dir, "a.md", "# Reachable\n")
	hidden := filepath.Join(dir, ".cache")
	require.NoError(t, os.Mkdir(hidden, 0o755))
	writeDoc(t, hidden, "b.md", "# Still hidden\n")

	entries, err := newTestLoader().Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Reachable", entries[0].Title)
}

func TestLoadEmptyDirIsAnError(t *testing.T) {
	_, err := newTestLoader().Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoadMissingDirIsAnError(t *testing.T) {
	_, err := newTestLoader().Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoadIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "a.md", "# One\n\n## Two\n")
	writeDoc(t, dir, "b.md", "## Stray\n")

	loader := newTestLoader()
	first, err := loader.Load(dir)
	require.NoError(t, err)
	second, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
