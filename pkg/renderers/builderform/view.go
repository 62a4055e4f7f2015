package builderform

import (
	"fmt"

	"github.com/goliatone/go-cardgen/pkg/card"
)

// View models are lowered through their JSON encoding before they reach the
// template engine. Every control's name attribute is a field path the binder
// understands, so the form and the config mutation layer share one address
// space.

type formView struct {
	Intro            introFormView     `json:"intro"`
	Audio            audioFormView     `json:"audio"`
	Sections         []sectionFormView `json:"sections"`
	CanDeleteSection bool              `json:"canDeleteSection"`
}

type introFormView struct {
	Year      string `json:"year"`
	Title     string `json:"title"`
	From      string `json:"from"`
	TapPrompt string `json:"tapPrompt"`
	Image     string `json:"image"`
}

type audioFormView struct {
	Src    string `json:"src"`
	Volume string `json:"volume"`
}

type sectionFormView struct {
	Prefix           string          `json:"prefix"`
	Index            int             `json:"index"`
	Number           int             `json:"number"`
	Title            string          `json:"title"`
	Body             string          `json:"body"`
	LayoutOptions    []optionView    `json:"layoutOptions"`
	AnimationOptions []optionView    `json:"animationOptions"`
	Images           []imageFormView `json:"images"`
}

type imageFormView struct {
	Prefix          string       `json:"prefix"`
	Index           int          `json:"index"`
	Src             string       `json:"src"`
	Alt             string       `json:"alt"`
	RotationOptions []optionView `json:"rotationOptions"`
	TallChecked     bool         `json:"tallChecked"`
	HeroChecked     bool         `json:"heroChecked"`
}

type optionView struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

func buildFormView(cfg card.Config) formView {
	view := formView{
		Intro: introFormView{
			Year:      cfg.Intro.Year,
			Title:     cfg.Intro.Title,
			From:      cfg.Intro.From,
			TapPrompt: cfg.Intro.TapPrompt,
			Image:     cfg.Intro.Image,
		},
		Audio: audioFormView{
			Src:    cfg.Audio.Src,
			Volume: formatVolume(cfg.Audio.Volume),
		},
		Sections:         make([]sectionFormView, 0, len(cfg.Sections)),
		CanDeleteSection: len(cfg.Sections) > 1,
	}

	for i, section := range cfg.Sections {
		view.Sections = append(view.Sections, buildSectionFormView(section, i))
	}
	return view
}

func buildSectionFormView(section card.Section, index int) sectionFormView {
	prefix := fmt.Sprintf("sections.%d", index)

	view := sectionFormView{
		Prefix:           prefix,
		Index:            index,
		Number:           index + 1,
		Title:            section.Title,
		Body:             section.Body,
		LayoutOptions:    layoutOptions(section.Layout),
		AnimationOptions: animationOptions(section.CatAnimation),
		Images:           make([]imageFormView, 0, len(section.Images)),
	}

	for j, img := range section.Images {
		view.Images = append(view.Images, imageFormView{
			Prefix:          fmt.Sprintf("%s.images.%d", prefix, j),
			Index:           j,
			Src:             img.Src,
			Alt:             img.Alt,
			RotationOptions: rotationOptions(img.Rotation),
			TallChecked:     img.Span == card.SpanTall,
			HeroChecked:     img.Span == card.SpanHero,
		})
	}
	return view
}

func layoutOptions(current card.Layout) []optionView {
	presets := card.Layouts()
	out := make([]optionView, 0, len(presets))
	for _, preset := range presets {
		out = append(out, optionView{
			Value:    string(preset.ID),
			Label:    preset.Label,
			Selected: preset.ID == current,
		})
	}
	return out
}

func animationOptions(current card.Animation) []optionView {
	if current == "" {
		current = card.AnimationNone
	}
	presets := card.CatAnimations()
	out := make([]optionView, 0, len(presets))
	for _, preset := range presets {
		out = append(out, optionView{
			Value:    string(preset.ID),
			Label:    preset.Label,
			Selected: preset.ID == current,
		})
	}
	return out
}

func rotationOptions(current card.Rotation) []optionView {
	presets := card.Rotations()
	out := make([]optionView, 0, len(presets))
	for _, preset := range presets {
		out = append(out, optionView{
			Value:    string(preset.ID),
			Label:    preset.Label,
			Selected: preset.ID == current,
		})
	}
	return out
}

func formatVolume(volume float64) string {
	if volume == 0 {
		return ""
	}
	return fmt.Sprintf("%g", volume)
}
