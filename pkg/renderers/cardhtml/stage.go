package cardhtml

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-cardgen/pkg/card"
)

// AudioDriver prepares a playable audio resource. The host UI layer supplies
// an implementation bound to its actual audio machinery.
type AudioDriver interface {
	// Prepare readies a looping track at the given volume without starting
	// playback.
	Prepare(src string, volume float64) (AudioHandle, error)
}

// AudioHandle controls one prepared track.
type AudioHandle interface {
	Play() error
	Stop()
}

// StageOption configures a Stage.
type StageOption func(*Stage)

// WithStageLogger routes audio-start failures and lifecycle notes to the
// given logger. The default is a no-op logger.
func WithStageLogger(logger *zap.Logger) StageOption {
	return func(s *Stage) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Stage owns the side-effecting resources of a rendered card: the background
// audio and the per-section visibility triggers. It is the attach/detach half
// of the renderer contract; the markup half stays pure.
type Stage struct {
	mu sync.Mutex

	audioSrc     string
	volume       float64
	sectionCount int

	audio     AudioHandle
	attached  bool
	entered   bool
	triggered map[int]bool

	logger *zap.Logger
}

// NewStage builds a stage for one rendered config.
func NewStage(cfg card.Config, options ...StageOption) *Stage {
	stage := &Stage{
		audioSrc:     cfg.Audio.Src,
		volume:       cfg.Audio.Volume,
		sectionCount: len(cfg.Sections),
		triggered:    make(map[int]bool),
		logger:       zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(stage)
		}
	}
	return stage
}

// Attach binds the stage to a concrete container. When the config carries an
// audio source the driver prepares it, paused; playback only starts on the
// first activation gesture. Attaching an already-attached stage is a no-op.
func (s *Stage) Attach(driver AudioDriver) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return nil
	}
	if s.audioSrc != "" && driver != nil {
		handle, err := driver.Prepare(s.audioSrc, s.volume)
		if err != nil {
			return fmt.Errorf("cardhtml: prepare audio: %w", err)
		}
		s.audio = handle
	}
	s.attached = true
	return nil
}

// Activate handles the entry gesture on the intro overlay. The first call
// starts audio playback (start failures are logged, never surfaced), and
// reports true so the host hides the overlay and marks the document entered.
// Subsequent calls are no-ops.
func (s *Stage) Activate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entered {
		return false
	}
	s.entered = true

	if s.audio != nil {
		if err := s.audio.Play(); err != nil {
			s.logger.Warn("audio play failed", zap.Error(err))
		}
	}
	return true
}

// Entered reports whether the entry gesture has happened.
func (s *Stage) Entered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entered
}

// SectionVisible records that a section crossed the centered visibility
// threshold. It reports true only the first time for each section; the
// trigger is one-directional and never reverses when the section leaves
// view. Out-of-range indexes are ignored.
func (s *Stage) SectionVisible(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= s.sectionCount {
		return false
	}
	if s.triggered[index] {
		return false
	}
	s.triggered[index] = true
	return true
}

// Detach releases the audio resource and forgets trigger state. It is safe
// to call without a prior Attach and safe to call repeatedly.
func (s *Stage) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.audio != nil {
		s.audio.Stop()
		s.audio = nil
	}
	s.attached = false
	s.entered = false
	s.triggered = make(map[int]bool)
}
