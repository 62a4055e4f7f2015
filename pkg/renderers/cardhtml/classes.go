package cardhtml

// MarkupClass is a typed identifier for the semantic CSS classes the card
// renderer emits. Hosts reconcile preview state against these, so they are
// part of the renderer's contract, not styling trivia.
type MarkupClass string

const (
	ClassSection        MarkupClass = "card-section"
	ClassSectionContent MarkupClass = "section-content"
	ClassSectionTitle   MarkupClass = "section-title"
	ClassSectionBody    MarkupClass = "section-body"
	ClassSectionImage   MarkupClass = "section-image"
	ClassScrapbook      MarkupClass = "scrapbook"
	ClassPhotoWrapper   MarkupClass = "photo-wrapper"
	ClassScrapbookPhoto MarkupClass = "scrapbook-photo"
	ClassCatStage       MarkupClass = "cat-stage"
	ClassCatContainer   MarkupClass = "cat-container"
	ClassCat            MarkupClass = "cat"
	ClassCatVisible     MarkupClass = "is-visible"
	ClassCatActive      MarkupClass = "cat-active"
	ClassIntroOverlay   MarkupClass = "intro-overlay"
	ClassIntroHidden    MarkupClass = "hidden"
	ClassScrollHint     MarkupClass = "scroll-hint"
	ClassBuilderActive  MarkupClass = "builder-active"
)

// IntroOverlayID is the element id hosts use to show or hide the overlay.
const IntroOverlayID = "intro-overlay"

// SectionAttr is the data attribute carrying the 1-based section number.
const SectionAttr = "data-section"

// CatTriggerAttr marks the element whose visibility gates the cat animation.
const CatTriggerAttr = "data-cat-trigger"
