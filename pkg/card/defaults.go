package card

// Default returns the starter config the builder opens with. It exercises a
// few different layouts so the preview has something to show before the first
// edit.
func Default() Config {
	return Config{
		Intro: Intro{
			Year:      "2025",
			Title:     "Happy Holidays!",
			From:      "from the two of us",
			TapPrompt: "tap to enter",
			Image:     "/data/images/intro.jpg",
		},
		Audio: Audio{
			Src:    "/assets/audio/lullaby.mp3",
			Volume: 0.4,
		},
		Sections: []Section{
			{
				ID:           "opening",
				Title:        "How was our year?",
				Body:         "Scroll down to find out!",
				Layout:       LayoutTallLeft,
				CatAnimation: AnimationWalkAcross,
				Images: []Image{
					{Src: "/data/images/section-0-img-0.jpg", Alt: "The two of us", Span: SpanTall},
					{Src: "/data/images/section-0-img-1.jpg", Alt: "Cats on the chair", Rotation: RotationCW1},
					{Src: "/data/images/section-0-img-2.jpg", Alt: "Cats cuddling", Rotation: RotationCCW1},
				},
			},
			{
				ID:           "friends",
				Title:        "We saw some faces",
				Layout:       LayoutHeroTop,
				CatAnimation: AnimationPeekCorner,
				Images: []Image{
					{Src: "/data/images/section-1-img-0.jpg", Alt: "Friends gathering", Rotation: RotationCCW1, Span: SpanHero},
					{Src: "/data/images/section-1-img-1.jpg", Alt: "Birthday dinner", Rotation: RotationCW2},
					{Src: "/data/images/section-1-img-2.jpg", Alt: "Out on the town", Rotation: RotationCCW2},
				},
			},
			{
				ID:           "finale",
				Title:        "Here's to next year!",
				Layout:       LayoutHeroBottom,
				CatAnimation: AnimationBothCats,
				Images: []Image{
					{Src: "/data/images/section-2-img-0.jpg", Alt: ""},
					{Src: "/data/images/section-2-img-1.jpg", Alt: ""},
					{Src: "/data/images/section-2-img-2.jpg", Alt: ""},
				},
			},
		},
	}
}
