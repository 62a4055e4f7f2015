package card

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// FragmentPrefix marks a legacy share link carrying the whole config in the
// document-location fragment.
const FragmentPrefix = "#config="

// InlineMediaBudget is the total number of inline data-URL bytes a config may
// carry and still be encoded into a fragment. Uploaded media blows well past
// any practical URL length, so EncodeFragment refuses it.
const InlineMediaBudget = 32 << 10

// ErrFragmentTooLarge is returned when a config carries too much embedded
// media to fit a link. The wrapping error includes the measured size.
var ErrFragmentTooLarge = fmt.Errorf("card: config carries too much inline media for a share fragment")

// InlineMediaSize measures the bytes of data-URL payloads embedded in the
// config (image sources and the audio track).
func InlineMediaSize(cfg Config) int {
	total := dataURLSize(cfg.Intro.Image)
	total += dataURLSize(cfg.Audio.Src)
	for _, section := range cfg.Sections {
		for _, image := range section.Images {
			total += dataURLSize(image.Src)
		}
	}
	return total
}

func dataURLSize(src string) int {
	if strings.HasPrefix(src, "data:") {
		return len(src)
	}
	return 0
}

// EncodeFragment packs the config into the reversible text encoding used by
// legacy share links: base64 over a URL-escaped JSON document. Spaces are
// percent-encoded rather than "+"; legacy consumers decode with percent rules
// only. Configs whose inline media exceeds InlineMediaBudget are refused.
func EncodeFragment(cfg Config) (string, error) {
	if size := InlineMediaSize(cfg); size > InlineMediaBudget {
		return "", fmt.Errorf("%w: %d bytes of inline media (budget %d)", ErrFragmentTooLarge, size, InlineMediaBudget)
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("card: encode fragment: %w", err)
	}
	escaped := strings.ReplaceAll(url.QueryEscape(string(data)), "+", "%20")
	encoded := base64.StdEncoding.EncodeToString([]byte(escaped))
	return FragmentPrefix + encoded, nil
}

// DecodeFragment reverses EncodeFragment. It accepts values with or without
// the "#config=" prefix and validates the result before returning it.
func DecodeFragment(fragment string) (Config, error) {
	encoded := strings.TrimPrefix(fragment, FragmentPrefix)
	encoded = strings.TrimPrefix(encoded, "config=")
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Config{}, fmt.Errorf("card: decode fragment: %w", err)
	}
	unescaped, err := url.QueryUnescape(string(raw))
	if err != nil {
		return Config{}, fmt.Errorf("card: decode fragment: %w", err)
	}
	return Import([]byte(unescaped))
}
