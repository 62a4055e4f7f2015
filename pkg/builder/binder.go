package builder

import (
	"sync"
	"time"
)

// DefaultDebounce is how long the binder waits after the last input event
// before applying the batch. Matches a comfortable typing cadence.
const DefaultDebounce = 300 * time.Millisecond

// InputKind distinguishes how a control reports its value.
type InputKind string

const (
	InputText     InputKind = "text"
	InputCheckbox InputKind = "checkbox"
)

// Input is one change event from a builder form control. Path is the field
// path carried in the control's name attribute.
type Input struct {
	Path    string
	Value   string
	Kind    InputKind
	Checked bool
}

// normalized resolves the value a control contributes. An unchecked checkbox
// clears its field, so toggling "tall" off removes the span rather than
// leaving a stale value.
func (in Input) normalized() string {
	if in.Kind == InputCheckbox && !in.Checked {
		return ""
	}
	return in.Value
}

// Binder coalesces rapid input events and applies them as one batch after a
// quiet period. Later events for the same path win; distinct paths keep their
// arrival order.
type Binder struct {
	mu      sync.Mutex
	delay   time.Duration
	apply   func([]Input)
	timer   *time.Timer
	order   []string
	pending map[string]Input
}

// BinderOption configures a Binder.
type BinderOption func(*Binder)

// WithDebounce overrides the quiet period. Zero or negative keeps the
// default.
func WithDebounce(delay time.Duration) BinderOption {
	return func(b *Binder) {
		if delay > 0 {
			b.delay = delay
		}
	}
}

// NewBinder builds a binder delivering coalesced batches to apply.
func NewBinder(apply func([]Input), options ...BinderOption) *Binder {
	b := &Binder{
		delay:   DefaultDebounce,
		apply:   apply,
		pending: make(map[string]Input),
	}
	for _, opt := range options {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Handle records one input event and (re)arms the debounce timer.
func (b *Binder) Handle(in Input) {
	b.mu.Lock()
	defer b.mu.Unlock()

	in.Value = in.normalized()
	if _, seen := b.pending[in.Path]; !seen {
		b.order = append(b.order, in.Path)
	}
	b.pending[in.Path] = in

	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.delay, b.Flush)
}

// Flush applies whatever is pending immediately. Safe to call with nothing
// pending; structural operations call it so a queued rename lands before a
// section moves.
func (b *Binder) Flush() {
	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	if len(b.pending) == 0 {
		b.mu.Unlock()
		return
	}
	batch := make([]Input, 0, len(b.pending))
	for _, path := range b.order {
		batch = append(batch, b.pending[path])
	}
	b.order = nil
	b.pending = make(map[string]Input)
	apply := b.apply
	b.mu.Unlock()

	if apply != nil {
		apply(batch)
	}
}

// Stop cancels any armed timer and drops pending input.
func (b *Binder) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.order = nil
	b.pending = make(map[string]Input)
}
