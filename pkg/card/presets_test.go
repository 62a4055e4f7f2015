package card

import "testing"

func TestDeriveCatImagesOverwritesAuthoredValues(t *testing.T) {
	cfg := Config{
		Intro: Intro{Title: "hi"},
		Sections: []Section{
			{ID: "a", CatAnimation: AnimationPeekCorner, CatImage: "/totally/wrong.png"},
			{ID: "b", CatAnimation: AnimationNone, CatImage: "/stale.png"},
		},
	}

	DeriveCatImages(&cfg)

	want, ok := CatImageFor(AnimationPeekCorner)
	if !ok {
		t.Fatalf("peek-corner should be a known animation")
	}
	if cfg.Sections[0].CatImage != want {
		t.Fatalf("expected derived sprite %q, got %q", want, cfg.Sections[0].CatImage)
	}
	if cfg.Sections[1].CatImage != "" {
		t.Fatalf("animation none should clear the sprite, got %q", cfg.Sections[1].CatImage)
	}
}

func TestDeriveCatImagesLeavesUnknownAnimationsAlone(t *testing.T) {
	cfg := Config{
		Intro:    Intro{Title: "hi"},
		Sections: []Section{{ID: "a", CatAnimation: "moonwalk", CatImage: "/custom.png"}},
	}

	DeriveCatImages(&cfg)

	if cfg.Sections[0].CatImage != "/custom.png" {
		t.Fatalf("unknown animation must not touch the sprite, got %q", cfg.Sections[0].CatImage)
	}
}

func TestPresetAccessorsReturnCopies(t *testing.T) {
	layouts := Layouts()
	layouts[0].Label = "mutated"
	if Layouts()[0].Label == "mutated" {
		t.Fatalf("Layouts must return a copy")
	}

	animations := CatAnimations()
	animations[0].CatImage = "mutated"
	if CatAnimations()[0].CatImage == "mutated" {
		t.Fatalf("CatAnimations must return a copy")
	}
}

func TestKnownLayout(t *testing.T) {
	if !KnownLayout(LayoutHeroBottom) {
		t.Fatalf("hero-bottom should be known")
	}
	if KnownLayout("diagonal") {
		t.Fatalf("made-up layout should not be known")
	}
}
