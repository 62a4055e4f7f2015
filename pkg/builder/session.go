package builder

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-cardgen/pkg/card"
	"github.com/goliatone/go-cardgen/pkg/render"
	"github.com/goliatone/go-cardgen/pkg/renderers/cardhtml"
)

// ShareLimit is the largest config document the share flow will send to the
// persistence service. Beyond this the server would refuse it anyway, so the
// session fails fast with guidance.
const ShareLimit = 9 << 20

var (
	// ErrShareInFlight means a share request is already running; the session
	// refuses to start a second one for the same card.
	ErrShareInFlight = errors.New("builder: share already in progress")
	// ErrNoShareClient means the session was built without a share client.
	ErrNoShareClient = errors.New("builder: no share client configured")
	// ErrShareTooLarge means the card exceeds ShareLimit.
	ErrShareTooLarge = errors.New("builder: card is too large to share")
)

// ShareClient persists a config and returns its short id. The store package
// provides the HTTP implementation.
type ShareClient interface {
	Save(ctx context.Context, cfg card.Config) (string, error)
}

// CommandSink receives preview commands as the session emits them. The
// websocket stream implements this; tests use an in-memory collector.
type CommandSink interface {
	Send(commands ...Command) error
}

// Session owns one editing session: the working config, the debounced form
// binder, and the preview synchronizer. All mutations go through the session
// so the preview never drifts from the config.
type Session struct {
	renderer render.Renderer
	options  render.Options
	sync     *Synchronizer
	binder   *Binder
	logger   *zap.Logger
	share    ShareClient
	sink     CommandSink

	// mu guards the working config; the debounce timer applies batches from
	// its own goroutine.
	mu      sync.Mutex
	cfg     card.Config
	sharing chan struct{}
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger routes session diagnostics to the given logger.
func WithLogger(logger *zap.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithShareClient wires the persistence client used by Share.
func WithShareClient(client ShareClient) SessionOption {
	return func(s *Session) {
		s.share = client
	}
}

// WithRenderer replaces the preview renderer.
func WithRenderer(renderer render.Renderer) SessionOption {
	return func(s *Session) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}

// WithRenderOptions replaces the options handed to the preview renderer.
func WithRenderOptions(options render.Options) SessionOption {
	return func(s *Session) {
		s.options = options
	}
}

// WithCommandSink streams every emitted command batch to sink in addition to
// returning it.
func WithCommandSink(sink CommandSink) SessionOption {
	return func(s *Session) {
		s.sink = sink
	}
}

// WithDebounceOption tunes the input debounce window.
func WithDebounceOption(opt BinderOption) SessionOption {
	return func(s *Session) {
		opt(s.binder)
	}
}

// NewSession starts an editing session over cfg. The config is cloned; the
// caller's copy is never mutated. With no explicit renderer the built-in card
// renderer is used with trigger marks forced visible, since a builder preview
// has no scroll-driven animation.
func NewSession(cfg card.Config, options ...SessionOption) (*Session, error) {
	s := &Session{
		options: render.Options{MarkTriggersVisible: true},
		sync:    NewSynchronizer(),
		logger:  zap.NewNop(),
		cfg:     cfg.Clone(),
		sharing: make(chan struct{}, 1),
	}
	s.binder = NewBinder(nil)
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}

	if s.renderer == nil {
		renderer, err := cardhtml.New()
		if err != nil {
			return nil, fmt.Errorf("builder: default renderer: %w", err)
		}
		s.renderer = renderer
	}

	s.binder.apply = s.applyBatch
	return s, nil
}

// Config returns a deep copy of the working config.
func (s *Session) Config() card.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Clone()
}

// HandleInput feeds one form event into the debounced binder. The mutation
// and the preview refresh happen after the quiet period; call Flush to force
// them through.
func (s *Session) HandleInput(in Input) {
	s.binder.Handle(in)
}

// Flush applies any pending debounced input immediately.
func (s *Session) Flush() {
	s.binder.Flush()
}

func (s *Session) applyBatch(batch []Input) {
	s.mu.Lock()
	for _, in := range batch {
		if err := s.cfg.SetField(in.Path, in.Value); err != nil {
			s.logger.Warn("ignoring input for unknown field",
				zap.String("path", in.Path), zap.Error(err))
		}
	}
	commands := s.refresh(context.Background())
	s.mu.Unlock()
	s.emit(commands)
}

// SetField applies one field mutation immediately and refreshes the preview.
func (s *Session) SetField(ctx context.Context, path, value string) ([]Command, error) {
	s.binder.Flush()
	s.mu.Lock()
	if err := s.cfg.SetField(path, value); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	commands := s.refresh(ctx)
	s.mu.Unlock()
	return s.emit(commands), nil
}

// SetActiveSection moves editing focus; IntroIndex focuses the intro.
func (s *Session) SetActiveSection(index int) []Command {
	return s.emit(s.sync.SetActiveSection(index))
}

// AddSection appends a section with builder defaults, focuses it and
// refreshes the preview. Returns the new section's index.
func (s *Session) AddSection(ctx context.Context) (int, []Command) {
	s.binder.Flush()
	s.mu.Lock()
	index := s.cfg.AddSection()
	commands := s.refresh(ctx)
	s.mu.Unlock()
	commands = append(commands, s.sync.SetActiveSection(index)...)
	return index, s.emit(commands)
}

// DeleteSection removes one section. Removing the last section is refused
// with a notice instead of an error; the card must keep at least one.
func (s *Session) DeleteSection(ctx context.Context, index int) []Command {
	s.binder.Flush()
	s.mu.Lock()
	if err := s.cfg.DeleteSection(index); err != nil {
		s.mu.Unlock()
		if errors.Is(err, card.ErrLastSection) {
			s.logger.Warn("refusing to delete the last section")
			return s.emit([]Command{Notice("A card needs at least one section.")})
		}
		s.logger.Warn("delete section failed", zap.Int("index", index), zap.Error(err))
		return s.emit([]Command{Notice("That section no longer exists.")})
	}
	commands := s.sync.SectionRemoved(len(s.cfg.Sections))
	commands = append(commands, s.refresh(ctx)...)
	s.mu.Unlock()
	return s.emit(commands)
}

// AddImage appends an empty image slot to a section and refreshes.
func (s *Session) AddImage(ctx context.Context, sectionIndex int) (int, []Command, error) {
	s.binder.Flush()
	s.mu.Lock()
	index, err := s.cfg.AddImage(sectionIndex)
	if err != nil {
		s.mu.Unlock()
		return 0, nil, err
	}
	commands := s.refresh(ctx)
	s.mu.Unlock()
	return index, s.emit(commands), nil
}

// DeleteImage removes one image from a section and refreshes.
func (s *Session) DeleteImage(ctx context.Context, sectionIndex, imageIndex int) ([]Command, error) {
	s.binder.Flush()
	s.mu.Lock()
	if err := s.cfg.DeleteImage(sectionIndex, imageIndex); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	commands := s.refresh(ctx)
	s.mu.Unlock()
	return s.emit(commands), nil
}

// Refresh re-renders the preview without mutating anything.
func (s *Session) Refresh(ctx context.Context) []Command {
	s.binder.Flush()
	s.mu.Lock()
	commands := s.refresh(ctx)
	s.mu.Unlock()
	return s.emit(commands)
}

// Export serializes the working config as a standalone JSON document.
func (s *Session) Export() ([]byte, error) {
	s.binder.Flush()
	s.mu.Lock()
	defer s.mu.Unlock()
	return card.Export(s.cfg)
}

// Import replaces the working config with a user-supplied document. On any
// parse or validation failure the current config stays untouched. A
// successful import returns focus to the intro.
func (s *Session) Import(ctx context.Context, data []byte) ([]Command, error) {
	s.binder.Stop()
	cfg, err := card.Import(data)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.cfg = cfg
	commands := s.sync.SetActiveSection(IntroIndex)
	commands = append(commands, s.refresh(ctx)...)
	s.mu.Unlock()
	return s.emit(commands), nil
}

// LoadFragment replaces the working config from a legacy share fragment.
func (s *Session) LoadFragment(ctx context.Context, fragment string) ([]Command, error) {
	cfg, err := card.DecodeFragment(fragment)
	if err != nil {
		return nil, err
	}
	data, err := card.Export(cfg)
	if err != nil {
		return nil, err
	}
	return s.Import(ctx, data)
}

// Share persists the card and returns its short id. Only one share runs at a
// time; concurrent calls get ErrShareInFlight. Cards beyond ShareLimit are
// refused before any network traffic.
func (s *Session) Share(ctx context.Context) (string, error) {
	if s.share == nil {
		return "", ErrNoShareClient
	}

	select {
	case s.sharing <- struct{}{}:
	default:
		return "", ErrShareInFlight
	}
	defer func() { <-s.sharing }()

	s.binder.Flush()
	s.mu.Lock()
	cfg := s.cfg.Clone()
	s.mu.Unlock()

	data, err := card.Export(cfg)
	if err != nil {
		return "", err
	}
	if len(data) > ShareLimit {
		s.logger.Warn("card too large to share", zap.Int("bytes", len(data)))
		return "", fmt.Errorf("%w: %d bytes", ErrShareTooLarge, len(data))
	}

	id, err := s.share.Save(ctx, cfg)
	if err != nil {
		return "", fmt.Errorf("builder: share card: %w", err)
	}
	s.logger.Info("card shared", zap.String("id", id))
	return id, nil
}

// Close tears the session down, dropping any pending input.
func (s *Session) Close() {
	s.binder.Stop()
}

// refresh re-renders the preview from the working config. Callers hold s.mu.
func (s *Session) refresh(ctx context.Context) []Command {
	html, err := s.renderer.Render(ctx, s.cfg, s.options)
	if err != nil {
		s.logger.Error("preview render failed", zap.Error(err))
		return []Command{Notice("Preview could not be updated.")}
	}
	return s.sync.Refresh(string(html))
}

func (s *Session) emit(commands []Command) []Command {
	if s.sink != nil && len(commands) > 0 {
		if err := s.sink.Send(commands...); err != nil {
			s.logger.Warn("command sink rejected batch", zap.Error(err))
		}
	}
	return commands
}
