// Package media prepares user-supplied assets for embedding in a card
// config: images are downscaled and re-encoded into compact data URLs, audio
// is sniffed and size-checked.
package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
)

const (
	// MaxImageDim caps either image dimension; larger photos are scaled to
	// fit so an embedded card stays shareable.
	MaxImageDim = 1200
	// JPEGQuality is the re-encode quality for prepared images.
	JPEGQuality = 80
	// MaxAudioBytes caps the size of an embedded audio track.
	MaxAudioBytes = 5 << 20
)

var (
	// ErrNotImage means the payload does not look like a supported image.
	ErrNotImage = errors.New("media: not a supported image")
	// ErrNotAudio means the payload does not look like an audio file.
	ErrNotAudio = errors.New("media: not a supported audio file")
	// ErrAudioTooLarge means the audio track exceeds MaxAudioBytes.
	ErrAudioTooLarge = errors.New("media: audio file too large")
)

// PrepareImage turns a raw uploaded image into a data URL suitable for a
// config's image src. Images larger than MaxImageDim on either side are
// scaled down proportionally; everything is re-encoded as JPEG, which also
// strips metadata.
func PrepareImage(data []byte) (string, error) {
	kind, err := filetype.Match(data)
	if err != nil || !filetype.IsImage(data) {
		return "", fmt.Errorf("%w (detected %q)", ErrNotImage, kindLabel(kind.Extension))
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("media: decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxImageDim || bounds.Dy() > MaxImageDim {
		img = imaging.Fit(img, MaxImageDim, MaxImageDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return "", fmt.Errorf("media: encode image: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// PrepareAudio validates an uploaded audio file and returns it as a data URL
// for the config's audio src. Audio is embedded as-is; there is no
// transcoding, only the size ceiling.
func PrepareAudio(data []byte) (string, error) {
	kind, err := filetype.Match(data)
	if err != nil || !filetype.IsAudio(data) {
		return "", fmt.Errorf("%w (detected %q)", ErrNotAudio, kindLabel(kind.Extension))
	}
	if len(data) > MaxAudioBytes {
		return "", fmt.Errorf("%w: %.1f MB (limit %d MB)",
			ErrAudioTooLarge, float64(len(data))/(1<<20), MaxAudioBytes/(1<<20))
	}
	return "data:" + kind.MIME.Value + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func kindLabel(ext string) string {
	if ext == "" {
		return "unknown"
	}
	return ext
}
