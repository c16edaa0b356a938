package navigation

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"docpane/internal/eventbus"
)

func newService(maxIndex int) *Service {
	s := NewService(eventbus.New(zerolog.Nop()))
	s.SetQueryFunction(func() int { return maxIndex })
	return s
}

func TestNavigateUpDownClamps(t *testing.T) {
	s := newService(2)

	s.Navigate(DirectionUp)
	assert.Equal(t, 0, s.Cursor(), "cannot move above the first entry")

	s.Navigate(DirectionDown)
	s.Navigate(DirectionDown)
	s.Navigate(DirectionDown)
	assert.Equal(t, 2, s.Cursor(), "cannot move past the last entry")
}

func TestHomeAndEnd(t *testing.T) {
	s := newService(9)

	s.Navigate(DirectionEnd)
	assert.Equal(t, 9, s.Cursor())

	s.Navigate(DirectionHome)
	assert.Equal(t, 0, s.Cursor())
	assert.Equal(t, 0, s.ViewportOffset())
}

func TestMoveToIndexClamps(t *testing.T) {
	s := newService(5)

	s.MoveToIndex(3)
	assert.Equal(t, 3, s.Cursor())

	s.MoveToIndex(100)
	assert.Equal(t, 5, s.Cursor())

	s.MoveToIndex(-4)
	assert.Equal(t, 0, s.Cursor())
}

func TestViewportFollowsCursor(t *testing.T) {
	s := newService(50)
	s.SetViewportHeight(16) // effective height 10

	for i := 0; i < 15; i++ {
		s.Navigate(DirectionDown)
	}
	assert.Equal(t, 15, s.Cursor())
	assert.Equal(t, 6, s.ViewportOffset(), "viewport must scroll to keep the cursor visible")

	s.Navigate(DirectionHome)
	assert.Equal(t, 0, s.ViewportOffset())
}

func TestPageDownMovesByViewport(t *testing.T) {
	s := newService(100)
	s.SetViewportHeight(26) // effective height 20

	s.Navigate(DirectionPageDown)
	assert.Equal(t, 19, s.Cursor())

	s.Navigate(DirectionPageUp)
	assert.Equal(t, 0, s.Cursor())
}
