package card

// Layout identifies the scrapbook arrangement used for a section's images.
type Layout string

const (
	LayoutSingle     Layout = "single"
	LayoutStack      Layout = "stack"
	LayoutGrid       Layout = "grid"
	LayoutTrio       Layout = "trio"
	LayoutTallLeft   Layout = "tall-left"
	LayoutTallRight  Layout = "tall-right"
	LayoutHeroTop    Layout = "hero-top"
	LayoutHeroBottom Layout = "hero-bottom"
)

// Animation identifies the decorative cat animation attached to a section.
// AnimationNone disables the cat stage entirely.
type Animation string

const (
	AnimationWalkAcross      Animation = "walk-across"
	AnimationWalkAcrossRight Animation = "walk-across-right"
	AnimationPeekCorner      Animation = "peek-corner"
	AnimationPeekCenter      Animation = "peek-center"
	AnimationSleepCorner     Animation = "sleep-corner"
	AnimationSleepCenter     Animation = "sleep-center"
	AnimationPopUp           Animation = "pop-up"
	AnimationPopUpCenter     Animation = "pop-up-center"
	AnimationCenterMiddle    Animation = "center-middle"
	AnimationBothCats        Animation = "both-cats"
	AnimationNone            Animation = "none"
)

// Rotation is a presentational tilt marker applied to a single photo.
type Rotation string

const (
	RotationCW1  Rotation = "cw-1"
	RotationCW2  Rotation = "cw-2"
	RotationCCW1 Rotation = "ccw-1"
	RotationCCW2 Rotation = "ccw-2"
)

// Span marks a photo as receiving a spanning visual treatment. A span can be
// authored explicitly on the image or granted automatically by the layout
// resolver; the two sources are additive.
type Span string

const (
	SpanTall Span = "tall"
	SpanHero Span = "hero"
)

// Intro describes the gating splash overlay shown before the card content.
// Empty strings stand for unset optional values throughout the model.
type Intro struct {
	Year      string `json:"year" yaml:"year"`
	Title     string `json:"title" yaml:"title"`
	From      string `json:"from" yaml:"from"`
	TapPrompt string `json:"tapPrompt" yaml:"tapPrompt"`
	Image     string `json:"image,omitempty" yaml:"image,omitempty"`
	// Ornament holds optional inline SVG decoration. It is sanitized before
	// rendering; authored markup outside the allowed SVG subset is stripped.
	Ornament string `json:"ornament,omitempty" yaml:"ornament,omitempty"`
}

// Audio configures the looping background track. An empty Src means silent.
type Audio struct {
	Src    string  `json:"src,omitempty" yaml:"src,omitempty"`
	Volume float64 `json:"volume" yaml:"volume"`
}

// Image is a single photo inside a section's scrapbook collection.
type Image struct {
	Src      string   `json:"src" yaml:"src"`
	Alt      string   `json:"alt" yaml:"alt"`
	Rotation Rotation `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Span     Span     `json:"span,omitempty" yaml:"span,omitempty"`
}

// Section is one scrollable unit of the card.
//
// CatImage is derived from CatAnimation through the animation preset table on
// every render or preview pass; direct edits to it do not survive.
type Section struct {
	ID           string    `json:"id" yaml:"id"`
	Title        string    `json:"title,omitempty" yaml:"title,omitempty"`
	Body         string    `json:"body,omitempty" yaml:"body,omitempty"`
	Layout       Layout    `json:"layout" yaml:"layout"`
	CatAnimation Animation `json:"catAnimation" yaml:"catAnimation"`
	CatImage     string    `json:"catImage,omitempty" yaml:"catImage,omitempty"`
	Images       []Image   `json:"images" yaml:"images"`
}

// Config is the full declarative description of one card instance. It
// exclusively owns its sections, and each section exclusively owns its
// images; deep copies (Clone) are used whenever a config crosses an ownership
// boundary such as import or load.
type Config struct {
	Intro    Intro     `json:"intro" yaml:"intro"`
	Audio    Audio     `json:"audio" yaml:"audio"`
	Sections []Section `json:"sections" yaml:"sections"`
}
