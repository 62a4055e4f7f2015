package cardhtml

import (
	"github.com/goliatone/go-cardgen/pkg/card"
	"github.com/goliatone/go-cardgen/pkg/render"
)

// View models are lowered through their JSON encoding before they reach the
// template engine, so templates address fields by these json tags.

type cardView struct {
	Intro    introView     `json:"intro"`
	Sections []sectionView `json:"sections"`
}

type introView struct {
	Year      string `json:"year"`
	Title     string `json:"title"`
	From      string `json:"from"`
	TapPrompt string `json:"tapPrompt"`
	Image     string `json:"image"`
	// Ornament is already sanitized; the template emits it verbatim.
	Ornament string `json:"ornament"`
}

type sectionView struct {
	ID             string      `json:"id"`
	Number         int         `json:"number"`
	HeadingTag     string      `json:"headingTag"`
	CatAnimation   string      `json:"catAnimation"`
	CatImage       string      `json:"catImage"`
	ShowCat        bool        `json:"showCat"`
	TriggerVisible bool        `json:"triggerVisible"`
	Title          string      `json:"title"`
	Body           string      `json:"body"`
	ShowScrollHint bool        `json:"showScrollHint"`
	Mode           string      `json:"mode"`
	Single         *photoView  `json:"single"`
	LayoutClass    string      `json:"layoutClass"`
	Photos         []photoView `json:"photos"`
}

type photoView struct {
	Src          string `json:"src"`
	Alt          string `json:"alt"`
	WrapperClass string `json:"wrapperClass"`
	Class        string `json:"class"`
}

const (
	modeNone      = "none"
	modeSingle    = "single"
	modeScrapbook = "scrapbook"
)

// buildView lowers a config into the template view model. The config is
// cloned first and cat sprites are re-derived on the clone, so the derived
// field invariant holds on every pass without mutating the caller's copy.
func buildView(cfg card.Config, options render.Options) cardView {
	derived := cfg.Clone()
	card.DeriveCatImages(&derived)

	tapPrompt := derived.Intro.TapPrompt
	if tapPrompt == "" {
		tapPrompt = "tap to enter"
	}

	view := cardView{
		Intro: introView{
			Year:      derived.Intro.Year,
			Title:     derived.Intro.Title,
			From:      derived.Intro.From,
			TapPrompt: tapPrompt,
			Image:     derived.Intro.Image,
			Ornament:  sanitizeOrnament(derived.Intro.Ornament),
		},
		Sections: make([]sectionView, 0, len(derived.Sections)),
	}

	for i, section := range derived.Sections {
		view.Sections = append(view.Sections, buildSectionView(section, i, options))
	}
	return view
}

func buildSectionView(section card.Section, index int, options render.Options) sectionView {
	headingTag := "h2"
	if index == 0 {
		headingTag = "h1"
	}

	animation := section.CatAnimation
	if animation == "" {
		animation = card.AnimationNone
	}

	view := sectionView{
		ID:             section.ID,
		Number:         index + 1,
		HeadingTag:     headingTag,
		CatAnimation:   string(animation),
		CatImage:       section.CatImage,
		ShowCat:        animation != card.AnimationNone && section.CatImage != "",
		TriggerVisible: options.MarkTriggersVisible,
		Title:          section.Title,
		Body:           section.Body,
		ShowScrollHint: index == 0,
		Mode:           modeNone,
	}

	if len(section.Images) == 0 {
		return view
	}

	// A single image, or the single layout, renders one full-width image and
	// ignores the layout spanning rules entirely.
	if len(section.Images) == 1 || section.Layout == card.LayoutSingle {
		img := section.Images[0]
		view.Mode = modeSingle
		view.Single = &photoView{Src: img.Src, Alt: img.Alt}
		return view
	}

	view.Mode = modeScrapbook
	view.LayoutClass = layoutClass(section.Layout)
	view.Photos = make([]photoView, 0, len(section.Images))
	for i, img := range section.Images {
		view.Photos = append(view.Photos, photoView{
			Src:          img.Src,
			Alt:          img.Alt,
			WrapperClass: wrapperClasses(section.Layout, i, img),
			Class:        photoClasses(img),
		})
	}
	return view
}
