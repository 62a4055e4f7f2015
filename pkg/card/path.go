package card

import (
	"fmt"
	"strconv"
	"strings"
)

// pathSegment is one step of a dotted field address: either an object key or
// an array index. Numeric segments are interpreted as indices, mirroring the
// builder form's naming scheme ("sections.0.images.2.span").
type pathSegment struct {
	key     string
	index   int
	isIndex bool
}

func splitPath(path string) ([]pathSegment, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("card: field path is required")
	}
	parts := strings.Split(path, ".")
	segments := make([]pathSegment, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("card: field path %q has an empty segment", path)
		}
		if index, err := strconv.Atoi(part); err == nil {
			if index < 0 {
				return nil, fmt.Errorf("card: field path %q has a negative index", path)
			}
			segments = append(segments, pathSegment{index: index, isIndex: true})
			continue
		}
		segments = append(segments, pathSegment{key: part})
	}
	return segments, nil
}

// SetField assigns a raw string value into the config tree at a dotted path.
// Empty values clear the field. Indexing one past the end of the sections or
// images list appends a zero element; anything further out of range is an
// error rather than a sparse assignment.
func (c *Config) SetField(path, value string) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}
	head := segments[0]
	if head.isIndex {
		return fmt.Errorf("card: field path %q cannot start with an index", path)
	}

	switch head.key {
	case "intro":
		return c.Intro.setField(path, segments[1:], value)
	case "audio":
		return c.Audio.setField(path, segments[1:], value)
	case "sections":
		return c.setSectionField(path, segments[1:], value)
	default:
		return fmt.Errorf("card: unknown field path %q", path)
	}
}

func (i *Intro) setField(path string, rest []pathSegment, value string) error {
	if len(rest) != 1 || rest[0].isIndex {
		return fmt.Errorf("card: unknown field path %q", path)
	}
	switch rest[0].key {
	case "year":
		i.Year = value
	case "title":
		i.Title = value
	case "from":
		i.From = value
	case "tapPrompt":
		i.TapPrompt = value
	case "image":
		i.Image = value
	case "ornament":
		i.Ornament = value
	default:
		return fmt.Errorf("card: unknown field path %q", path)
	}
	return nil
}

func (a *Audio) setField(path string, rest []pathSegment, value string) error {
	if len(rest) != 1 || rest[0].isIndex {
		return fmt.Errorf("card: unknown field path %q", path)
	}
	switch rest[0].key {
	case "src":
		a.Src = value
	case "volume":
		if value == "" {
			a.Volume = 0
			return nil
		}
		volume, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("card: field %q wants a number: %w", path, err)
		}
		a.Volume = volume
	default:
		return fmt.Errorf("card: unknown field path %q", path)
	}
	return nil
}

func (c *Config) setSectionField(path string, rest []pathSegment, value string) error {
	if len(rest) < 2 || !rest[0].isIndex {
		return fmt.Errorf("card: unknown field path %q", path)
	}
	index := rest[0].index
	if index == len(c.Sections) {
		c.Sections = append(c.Sections, Section{ID: NewSectionID(), Images: []Image{}})
	}
	if index >= len(c.Sections) {
		return fmt.Errorf("card: section index %d out of range in path %q", index, path)
	}
	return c.Sections[index].setField(path, rest[1:], value)
}

func (s *Section) setField(path string, rest []pathSegment, value string) error {
	if rest[0].isIndex {
		return fmt.Errorf("card: unknown field path %q", path)
	}
	if rest[0].key == "images" {
		return s.setImageField(path, rest[1:], value)
	}
	if len(rest) != 1 {
		return fmt.Errorf("card: unknown field path %q", path)
	}
	switch rest[0].key {
	case "id":
		s.ID = value
	case "title":
		s.Title = value
	case "body":
		s.Body = value
	case "layout":
		s.Layout = Layout(value)
	case "catAnimation":
		s.CatAnimation = Animation(value)
	case "catImage":
		// Accepted but transient: derivation overwrites it on the next pass.
		s.CatImage = value
	default:
		return fmt.Errorf("card: unknown field path %q", path)
	}
	return nil
}

func (s *Section) setImageField(path string, rest []pathSegment, value string) error {
	if len(rest) != 2 || !rest[0].isIndex || rest[1].isIndex {
		return fmt.Errorf("card: unknown field path %q", path)
	}
	index := rest[0].index
	if index == len(s.Images) {
		s.Images = append(s.Images, Image{})
	}
	if index >= len(s.Images) {
		return fmt.Errorf("card: image index %d out of range in path %q", index, path)
	}
	image := &s.Images[index]
	switch rest[1].key {
	case "src":
		image.Src = value
	case "alt":
		image.Alt = value
	case "rotation":
		image.Rotation = Rotation(value)
	case "span":
		image.Span = Span(value)
	default:
		return fmt.Errorf("card: unknown field path %q", path)
	}
	return nil
}
