package card

// Clone returns a deep copy of the config. Import and load paths always
// adopt a clone so nested slices from a previous document can never leak into
// the new working copy.
func (c Config) Clone() Config {
	out := c
	out.Sections = make([]Section, len(c.Sections))
	for i, section := range c.Sections {
		out.Sections[i] = section.Clone()
	}
	return out
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	out := s
	out.Images = make([]Image, len(s.Images))
	copy(out.Images, s.Images)
	return out
}
