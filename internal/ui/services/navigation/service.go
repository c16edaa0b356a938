package navigation

import (
	"docpane/internal/eventbus"
)

// Service owns the navigation cursor and the nav pane viewport
type Service struct {
	state   *State
	bus     eventbus.EventBus
	queryFn func() int // returns the max entry index
}

// NewService creates a new navigation service
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		state: &State{
			Cursor:         0,
			ViewportOffset: 0,
			ViewportHeight: 20, // Default, will be updated
			MaxIndex:       0,
		},
		bus: bus,
	}
}

// SetQueryFunction sets the function used to query the max index
func (s *Service) SetQueryFunction(fn func() int) {
	s.queryFn = fn
}

// Cursor returns the current cursor position
func (s *Service) Cursor() int {
	return s.state.Cursor
}

// ViewportOffset returns the current viewport offset
func (s *Service) ViewportOffset() int {
	return s.state.ViewportOffset
}

// ViewportHeight returns the current viewport height
func (s *Service) ViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates the viewport height
func (s *Service) SetViewportHeight(height int) {
	// Reserve space for the title, banner and status rows
	effectiveHeight := height - 6
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}
	s.state.ViewportHeight = effectiveHeight
	s.ensureVisible()
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	oldCursor := s.state.Cursor

	switch direction {
	case DirectionUp:
		s.moveUp()
	case DirectionDown:
		s.moveDown()
	case DirectionPageUp:
		s.pageUp()
	case DirectionPageDown:
		s.pageDown()
	case DirectionHome:
		s.moveToStart()
	case DirectionEnd:
		s.moveToEnd()
	}

	if oldCursor != s.state.Cursor {
		s.bus.Publish(eventbus.DocSelectedEvent{Index: s.state.Cursor})
	}
}

// MoveToIndex moves the cursor to a specific index
func (s *Service) MoveToIndex(index int) {
	s.refreshMaxIndex()

	oldCursor := s.state.Cursor
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()

	if oldCursor != s.state.Cursor {
		s.bus.Publish(eventbus.DocSelectedEvent{Index: s.state.Cursor})
	}
}

// Internal navigation methods
func (s *Service) moveUp() {
	if s.state.Cursor > 0 {
		s.state.Cursor--
		s.ensureVisible()
	}
}

func (s *Service) moveDown() {
	s.refreshMaxIndex()
	if s.state.Cursor < s.state.MaxIndex {
		s.state.Cursor++
		s.ensureVisible()
	}
}

func (s *Service) pageUp() {
	pageSize := s.state.ViewportHeight - 1
	target := s.state.Cursor - pageSize
	s.state.Cursor = s.clampIndex(target)

	s.state.ViewportOffset -= pageSize
	if s.state.ViewportOffset < 0 {
		s.state.ViewportOffset = 0
	}
	s.ensureVisible()
}

func (s *Service) pageDown() {
	s.refreshMaxIndex()

	pageSize := s.state.ViewportHeight - 1
	target := s.state.Cursor + pageSize
	s.state.Cursor = s.clampIndex(target)
	s.ensureVisible()
}

func (s *Service) moveToStart() {
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
}

func (s *Service) moveToEnd() {
	s.refreshMaxIndex()
	s.state.Cursor = s.state.MaxIndex
	s.ensureVisible()
}

// Helper methods
func (s *Service) refreshMaxIndex() {
	if s.queryFn != nil {
		s.state.MaxIndex = s.queryFn()
	}
}

func (s *Service) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	s.refreshMaxIndex()
	if index > s.state.MaxIndex {
		return s.state.MaxIndex
	}
	return index
}

func (s *Service) ensureVisible() {
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
}
