package card

// LayoutPreset describes a layout choice offered by the builder UI.
type LayoutPreset struct {
	ID          Layout `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// AnimationPreset pairs a cat animation with the sprite it requires. The
// CatImage column is the lookup table behind Section.CatImage derivation.
type AnimationPreset struct {
	ID       Animation `json:"id"`
	Label    string    `json:"label"`
	CatImage string    `json:"catImage,omitempty"`
}

// RotationPreset describes a tilt choice offered by the builder UI. The empty
// ID stands for no rotation.
type RotationPreset struct {
	ID    Rotation `json:"id,omitempty"`
	Label string   `json:"label"`
}

var layoutPresets = []LayoutPreset{
	{ID: LayoutSingle, Label: "Single", Description: "One centered image"},
	{ID: LayoutStack, Label: "Stack", Description: "2 landscape images stacked"},
	{ID: LayoutGrid, Label: "Grid", Description: "2x2 grid of 4 images"},
	{ID: LayoutTrio, Label: "Trio", Description: "1 on top, 2 below (pyramid)"},
	{ID: LayoutTallLeft, Label: "Tall Left", Description: "Portrait left, 2 stacked right"},
	{ID: LayoutTallRight, Label: "Tall Right", Description: "2 stacked left, portrait right"},
	{ID: LayoutHeroTop, Label: "Hero Top", Description: "Wide image top, 2 small below"},
	{ID: LayoutHeroBottom, Label: "Hero Bottom", Description: "2 small top, wide image below"},
}

var animationPresets = []AnimationPreset{
	{ID: AnimationWalkAcross, Label: "Walk Left to Right", CatImage: "/assets/cats/cat_00.png"},
	{ID: AnimationWalkAcrossRight, Label: "Walk Right to Left", CatImage: "/assets/cats/cat_00.png"},
	{ID: AnimationPeekCorner, Label: "Peek from Corner", CatImage: "/assets/cats/cat_03.png"},
	{ID: AnimationPeekCenter, Label: "Peek from Center", CatImage: "/assets/cats/cat_03.png"},
	{ID: AnimationSleepCorner, Label: "Sleep in Corner", CatImage: "/assets/cats/cat_02.png"},
	{ID: AnimationSleepCenter, Label: "Sleep in Center", CatImage: "/assets/cats/cat_02.png"},
	{ID: AnimationPopUp, Label: "Pop Up (Corner)", CatImage: "/assets/cats/cat_01.png"},
	{ID: AnimationPopUpCenter, Label: "Pop Up (Center)", CatImage: "/assets/cats/cat_01.png"},
	{ID: AnimationCenterMiddle, Label: "Center of Card", CatImage: "/assets/cats/cat_03.png"},
	{ID: AnimationBothCats, Label: "Both Cats", CatImage: "/assets/cats/cat_04.png"},
	{ID: AnimationNone, Label: "No Cat"},
}

var rotationPresets = []RotationPreset{
	{Label: "None"},
	{ID: RotationCW1, Label: "Slight Right"},
	{ID: RotationCW2, Label: "More Right"},
	{ID: RotationCCW1, Label: "Slight Left"},
	{ID: RotationCCW2, Label: "More Left"},
}

// Layouts returns the layout presets offered to builders.
func Layouts() []LayoutPreset {
	out := make([]LayoutPreset, len(layoutPresets))
	copy(out, layoutPresets)
	return out
}

// CatAnimations returns the animation presets, including the disabling
// "none" entry.
func CatAnimations() []AnimationPreset {
	out := make([]AnimationPreset, len(animationPresets))
	copy(out, animationPresets)
	return out
}

// Rotations returns the tilt presets offered to builders.
func Rotations() []RotationPreset {
	out := make([]RotationPreset, len(rotationPresets))
	copy(out, rotationPresets)
	return out
}

// KnownLayout reports whether id is one of the enumerated layouts.
// Unrecognized layouts are not an error; they degrade to neutral rendering.
func KnownLayout(id Layout) bool {
	for _, preset := range layoutPresets {
		if preset.ID == id {
			return true
		}
	}
	return false
}

// CatImageFor resolves the sprite for an animation id. The second return is
// false for unknown ids, letting callers leave the current value untouched.
func CatImageFor(id Animation) (string, bool) {
	for _, preset := range animationPresets {
		if preset.ID == id {
			return preset.CatImage, true
		}
	}
	return "", false
}

// DeriveCatImages recomputes every section's CatImage from its CatAnimation.
// Renderers and the preview loop call this on each pass, so authored CatImage
// values never stick. Unknown animation ids leave the field as-is.
func DeriveCatImages(cfg *Config) {
	if cfg == nil {
		return
	}
	for i := range cfg.Sections {
		if sprite, ok := CatImageFor(cfg.Sections[i].CatAnimation); ok {
			cfg.Sections[i].CatImage = sprite
		}
	}
}
