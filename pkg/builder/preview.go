package builder

import "sync"

// IntroIndex is the synthetic active index meaning "the intro overlay", used
// before any section has focus.
const IntroIndex = -1

// Synchronizer tracks which section the editor is working on and translates
// focus changes and content refreshes into preview commands. Replacing the
// preview markup destroys scroll position and highlights, so a refresh
// reapplies the current state right after the content swap.
type Synchronizer struct {
	mu     sync.Mutex
	active int
}

// NewSynchronizer starts with the intro active.
func NewSynchronizer() *Synchronizer {
	return &Synchronizer{active: IntroIndex}
}

// ActiveIndex returns the current focus: IntroIndex or a 0-based section
// index.
func (s *Synchronizer) ActiveIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// SetActiveSection moves focus. A redundant transition produces no commands.
// Focusing the intro shows the overlay and returns to the top; focusing a
// section dismisses the overlay, scrolls to it smoothly and highlights it.
func (s *Synchronizer) SetActiveSection(index int) []Command {
	if index < IntroIndex {
		index = IntroIndex
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if index == s.active {
		return nil
	}
	s.active = index

	if index == IntroIndex {
		return []Command{
			ShowOverlay(),
			ScrollToTop(),
			ClearHighlights(),
		}
	}
	return []Command{
		HideOverlay(),
		ScrollToSection(index, true),
		ClearHighlights(),
		HighlightSection(index),
	}
}

// Refresh replaces the preview markup and reapplies the active focus. The
// replacement always comes first; scroll and highlight state only exist on
// the new content. The reapplied scroll jumps instead of animating so a
// keystroke-driven refresh does not glide around the document.
func (s *Synchronizer) Refresh(html string) []Command {
	s.mu.Lock()
	defer s.mu.Unlock()

	commands := []Command{ReplaceContent(html)}
	if s.active == IntroIndex {
		return append(commands, ShowOverlay(), ScrollToTop())
	}
	return append(commands,
		HideOverlay(),
		ScrollToSection(s.active, false),
		HighlightSection(s.active),
	)
}

// SectionRemoved clamps focus after a structural deletion so the active index
// never points past the new section count. Remaining must be at least 1; the
// delete guard keeps the last section around.
func (s *Synchronizer) SectionRemoved(remaining int) []Command {
	s.mu.Lock()
	active := s.active
	s.mu.Unlock()

	if active == IntroIndex || active < remaining {
		return nil
	}
	return s.SetActiveSection(remaining - 1)
}
