// Package builder drives the visual card builder: it owns the working config,
// binds form input to field mutations, and keeps a live preview in sync by
// emitting explicit commands the host UI executes.
package builder

// CommandKind enumerates the preview operations a host can be asked to run.
type CommandKind string

const (
	// KindReplaceContent swaps the preview markup wholesale.
	KindReplaceContent CommandKind = "replace-content"
	// KindScrollToTop returns the preview viewport to the intro.
	KindScrollToTop CommandKind = "scroll-to-top"
	// KindScrollToSection brings one section into view.
	KindScrollToSection CommandKind = "scroll-to-section"
	// KindHighlightSection marks one section as the active editing target.
	KindHighlightSection CommandKind = "highlight-section"
	// KindClearHighlights removes every active-section marker.
	KindClearHighlights CommandKind = "clear-highlights"
	// KindShowOverlay restores the intro overlay.
	KindShowOverlay CommandKind = "show-overlay"
	// KindHideOverlay dismisses the intro overlay.
	KindHideOverlay CommandKind = "hide-overlay"
	// KindNotice surfaces a message to the person editing.
	KindNotice CommandKind = "notice"
)

// Command is one instruction for the preview host. Commands are plain data
// so they serialize cleanly over a wire transport.
type Command struct {
	Kind         CommandKind `json:"kind"`
	HTML         string      `json:"html,omitempty"`
	SectionIndex int         `json:"sectionIndex"`
	Smooth       bool        `json:"smooth,omitempty"`
	Message      string      `json:"message,omitempty"`
}

// ReplaceContent swaps the preview column's markup.
func ReplaceContent(html string) Command {
	return Command{Kind: KindReplaceContent, HTML: html}
}

// ScrollToTop returns the preview to the top of the document.
func ScrollToTop() Command {
	return Command{Kind: KindScrollToTop}
}

// ScrollToSection scrolls the preview to the 0-based section index.
func ScrollToSection(index int, smooth bool) Command {
	return Command{Kind: KindScrollToSection, SectionIndex: index, Smooth: smooth}
}

// HighlightSection marks the 0-based section index as active.
func HighlightSection(index int) Command {
	return Command{Kind: KindHighlightSection, SectionIndex: index}
}

// ClearHighlights removes all active-section markers.
func ClearHighlights() Command {
	return Command{Kind: KindClearHighlights}
}

// ShowOverlay restores the intro overlay over the preview.
func ShowOverlay() Command {
	return Command{Kind: KindShowOverlay}
}

// HideOverlay dismisses the intro overlay.
func HideOverlay() Command {
	return Command{Kind: KindHideOverlay}
}

// Notice surfaces a transient message in the builder UI.
func Notice(message string) Command {
	return Command{Kind: KindNotice, Message: message}
}
