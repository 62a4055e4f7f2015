package card

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Export serializes the config as pretty-printed JSON, the standalone
// document format offered for download and accepted back by Import.
func Export(cfg Config) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("card: export config: %w", err)
	}
	return append(data, '\n'), nil
}

// envelope distinguishes a missing intro block from an empty one while
// decoding untrusted documents.
type envelope struct {
	Intro    *Intro          `json:"intro" yaml:"intro"`
	Audio    *Audio          `json:"audio" yaml:"audio"`
	Sections json.RawMessage `json:"sections" yaml:"-"`
}

// Import parses a user-supplied document as a config. JSON is tried first,
// then YAML. The structural invariants are enforced before anything is
// adopted: a malformed document never produces a partially-filled config.
func Import(data []byte) (Config, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Config{}, fmt.Errorf("card: import: empty document")
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return importJSON(trimmed)
	}
	return importYAML(trimmed)
}

func importJSON(data []byte) (Config, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Config{}, fmt.Errorf("card: import: parse document: %w", err)
	}
	if env.Intro == nil {
		return Config{}, ErrMissingIntro
	}

	var sections []Section
	if len(env.Sections) > 0 {
		if err := json.Unmarshal(env.Sections, &sections); err != nil {
			return Config{}, fmt.Errorf("%w: sections is not a sequence", ErrNoSections)
		}
	}
	if len(sections) == 0 {
		return Config{}, ErrNoSections
	}

	cfg := Config{Intro: *env.Intro, Sections: sections}
	if env.Audio != nil {
		cfg.Audio = *env.Audio
	}
	return cfg.Clone(), nil
}

func importYAML(data []byte) (Config, error) {
	var doc struct {
		Intro    *Intro    `yaml:"intro"`
		Audio    *Audio    `yaml:"audio"`
		Sections []Section `yaml:"sections"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("card: import: parse document: %w", err)
	}
	if doc.Intro == nil {
		return Config{}, ErrMissingIntro
	}
	if len(doc.Sections) == 0 {
		return Config{}, ErrNoSections
	}
	cfg := Config{Intro: *doc.Intro, Sections: doc.Sections}
	if doc.Audio != nil {
		cfg.Audio = *doc.Audio
	}
	return cfg.Clone(), nil
}
