package card

import (
	"fmt"

	"github.com/google/uuid"
)

// NewSectionID generates a fresh opaque section identifier.
func NewSectionID() string {
	return "section-" + uuid.NewString()
}

// AddSection appends a section with builder defaults and returns its index.
func (c *Config) AddSection() int {
	c.Sections = append(c.Sections, Section{
		ID:           NewSectionID(),
		Title:        "New Section",
		Layout:       LayoutTallLeft,
		CatAnimation: AnimationNone,
		Images:       []Image{},
	})
	return len(c.Sections) - 1
}

// DeleteSection removes the section at index, preserving the order of the
// rest. Deleting the sole remaining section returns ErrLastSection and leaves
// the config untouched.
func (c *Config) DeleteSection(index int) error {
	if index < 0 || index >= len(c.Sections) {
		return fmt.Errorf("card: section index %d out of range", index)
	}
	if len(c.Sections) <= 1 {
		return ErrLastSection
	}
	c.Sections = append(c.Sections[:index], c.Sections[index+1:]...)
	return nil
}

// AddImage appends an empty image to the section's collection and returns the
// new image index.
func (c *Config) AddImage(sectionIndex int) (int, error) {
	if sectionIndex < 0 || sectionIndex >= len(c.Sections) {
		return 0, fmt.Errorf("card: section index %d out of range", sectionIndex)
	}
	section := &c.Sections[sectionIndex]
	section.Images = append(section.Images, Image{})
	return len(section.Images) - 1, nil
}

// DeleteImage removes one image from a section's collection.
func (c *Config) DeleteImage(sectionIndex, imageIndex int) error {
	if sectionIndex < 0 || sectionIndex >= len(c.Sections) {
		return fmt.Errorf("card: section index %d out of range", sectionIndex)
	}
	section := &c.Sections[sectionIndex]
	if imageIndex < 0 || imageIndex >= len(section.Images) {
		return fmt.Errorf("card: image index %d out of range in section %d", imageIndex, sectionIndex)
	}
	section.Images = append(section.Images[:imageIndex], section.Images[imageIndex+1:]...)
	return nil
}
