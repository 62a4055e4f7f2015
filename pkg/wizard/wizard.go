// Package wizard walks a person through authoring a card config at the
// terminal, as an alternative to the browser builder.
package wizard

import (
	"context"
	"fmt"

	"github.com/goliatone/go-cardgen/pkg/card"
)

// Wizard collects a complete card config through interactive prompts.
type Wizard struct {
	driver PromptDriver
}

// New builds a wizard over the given prompt driver. A nil driver gets the
// terminal-backed default.
func New(driver PromptDriver) *Wizard {
	if driver == nil {
		driver = NewSurveyDriver()
	}
	return &Wizard{driver: driver}
}

// Run collects intro, audio and at least one section, returning a config
// that passes validation.
func (w *Wizard) Run(ctx context.Context) (card.Config, error) {
	var cfg card.Config

	if err := w.collectIntro(ctx, &cfg); err != nil {
		return card.Config{}, err
	}
	if err := w.collectAudio(ctx, &cfg); err != nil {
		return card.Config{}, err
	}

	for {
		section, err := w.collectSection(ctx, len(cfg.Sections))
		if err != nil {
			return card.Config{}, err
		}
		cfg.Sections = append(cfg.Sections, section)

		more, err := w.driver.Confirm(ctx, ConfirmConfig{
			Message: "Add another section?",
			Default: false,
		})
		if err != nil {
			return card.Config{}, err
		}
		if !more {
			break
		}
	}

	if err := cfg.Validate(); err != nil {
		return card.Config{}, err
	}
	return cfg, nil
}

func (w *Wizard) collectIntro(ctx context.Context, cfg *card.Config) error {
	if err := w.driver.Info(ctx, "Card intro"); err != nil {
		return err
	}

	var err error
	if cfg.Intro.Year, err = w.driver.Input(ctx, InputConfig{Message: "Year"}); err != nil {
		return err
	}
	if cfg.Intro.Title, err = w.driver.Input(ctx, InputConfig{Message: "Title", Default: "Happy Holidays"}); err != nil {
		return err
	}
	if cfg.Intro.From, err = w.driver.Input(ctx, InputConfig{Message: "From"}); err != nil {
		return err
	}
	cfg.Intro.TapPrompt, err = w.driver.Input(ctx, InputConfig{
		Message: "Tap prompt",
		Help:    "Shown on the intro overlay; leave empty for the default.",
	})
	return err
}

func (w *Wizard) collectAudio(ctx context.Context, cfg *card.Config) error {
	wantAudio, err := w.driver.Confirm(ctx, ConfirmConfig{Message: "Add background music?"})
	if err != nil {
		return err
	}
	if !wantAudio {
		return nil
	}

	if cfg.Audio.Src, err = w.driver.Input(ctx, InputConfig{Message: "Audio URL"}); err != nil {
		return err
	}
	cfg.Audio.Volume = 0.4
	return nil
}

func (w *Wizard) collectSection(ctx context.Context, index int) (card.Section, error) {
	if err := w.driver.Info(ctx, fmt.Sprintf("Section %d", index+1)); err != nil {
		return card.Section{}, err
	}

	section := card.Section{ID: card.NewSectionID()}

	var err error
	if section.Title, err = w.driver.Input(ctx, InputConfig{Message: "Section title"}); err != nil {
		return card.Section{}, err
	}
	if section.Body, err = w.driver.TextArea(ctx, TextAreaConfig{Message: "Section text"}); err != nil {
		return card.Section{}, err
	}

	layouts := card.Layouts()
	choice, err := w.driver.Select(ctx, SelectConfig{
		Message: "Image layout",
		Options: layoutLabels(layouts),
	})
	if err != nil {
		return card.Section{}, err
	}
	section.Layout = layouts[choice].ID

	animations := card.CatAnimations()
	choice, err = w.driver.Select(ctx, SelectConfig{
		Message:      "Cat animation",
		Options:      animationLabels(animations),
		DefaultIndex: len(animations) - 1,
	})
	if err != nil {
		return card.Section{}, err
	}
	section.CatAnimation = animations[choice].ID

	section.Images, err = w.collectImages(ctx)
	if err != nil {
		return card.Section{}, err
	}
	return section, nil
}

func (w *Wizard) collectImages(ctx context.Context) ([]card.Image, error) {
	images := []card.Image{}
	for {
		more, err := w.driver.Confirm(ctx, ConfirmConfig{Message: "Add an image?"})
		if err != nil {
			return nil, err
		}
		if !more {
			return images, nil
		}

		var img card.Image
		if img.Src, err = w.driver.Input(ctx, InputConfig{Message: "Image URL"}); err != nil {
			return nil, err
		}
		if img.Alt, err = w.driver.Input(ctx, InputConfig{Message: "Alt text"}); err != nil {
			return nil, err
		}

		rotations := card.Rotations()
		choice, err := w.driver.Select(ctx, SelectConfig{
			Message: "Rotation",
			Options: rotationLabels(rotations),
		})
		if err != nil {
			return nil, err
		}
		img.Rotation = rotations[choice].ID

		images = append(images, img)
	}
}

func layoutLabels(presets []card.LayoutPreset) []string {
	out := make([]string, len(presets))
	for i, preset := range presets {
		out[i] = preset.Label
	}
	return out
}

func animationLabels(presets []card.AnimationPreset) []string {
	out := make([]string, len(presets))
	for i, preset := range presets {
		out[i] = preset.Label
	}
	return out
}

func rotationLabels(presets []card.RotationPreset) []string {
	out := make([]string, len(presets))
	for i, preset := range presets {
		out[i] = preset.Label
	}
	return out
}
