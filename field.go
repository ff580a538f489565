package numedit

import (
	"fmt"
	"math"

	"github.com/TsubasaBE/go-numedit/numfmt"
)

// Field owns the edit state of one numeric input field.  It is not safe for
// concurrent use: the host delivers edits one at a time, as UI toolkits do on
// their event thread.
//
// Each event kind has a single subscriber slot; registering a new callback
// replaces the previous one.
type Field struct {
	cfg   numfmt.Config
	state EditState
	text  string

	defaultText  string
	defaultValue float64
	hasDefault   bool

	onChanged func(value float64)
	onCleared func()
}

// Option configures a Field at construction.
type Option func(*Field)

// WithDefaultValue sets the value [Field.Clear] restores; see
// [Field.SetDefaultNumericValue].
func WithDefaultValue(v float64) Option {
	return func(f *Field) { f.SetDefaultNumericValue(v) }
}

// WithOnValueChanged registers the value-changed callback.
func WithOnValueChanged(fn func(value float64)) Option {
	return func(f *Field) { f.onChanged = fn }
}

// WithOnValueCleared registers the value-cleared callback.
func WithOnValueCleared(fn func()) Option {
	return func(f *Field) { f.onCleared = fn }
}

// New returns an empty Field formatting with cfg.  cfg is copied; it is
// validated here so the edit path never has to.
func New(cfg numfmt.Config, opts ...Option) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("numedit: %w", err)
	}
	f := &Field{cfg: cfg}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// OnTextChanged processes one keystroke-driven change.  proposed is the full
// field text after the keystroke.  The host displays Result.Text and moves
// the caret to Result.Caret.
//
// Accept fires the value-changed callback with the parsed value (NaN when
// the formatted text holds no digits); Clear fires the value-cleared
// callback; Revert fires nothing.
func (f *Field) OnTextChanged(proposed string) Result {
	res, next := Process(f.state, proposed, f.cfg)
	f.state = next
	f.text = res.Text

	switch res.Action {
	case ActionAccept:
		if f.onChanged != nil {
			f.onChanged(res.Value)
		}
	case ActionClear:
		if f.onCleared != nil {
			f.onCleared()
		}
	}
	return res
}

// Clear resets the field and returns the text the host must write: the
// default text when a default value is set, "" otherwise.  With a default
// the value-changed callback fires with the default value; without one the
// value-cleared callback fires.
func (f *Field) Clear() string {
	if f.hasDefault {
		f.text = f.defaultText
		f.state = EditState{PreviousAcceptedText: f.defaultText}
		if f.onChanged != nil {
			f.onChanged(f.NumericValue())
		}
		return f.text
	}
	f.text = ""
	f.state = EditState{}
	if f.onCleared != nil {
		f.onCleared()
	}
	return ""
}

// SetDefaultNumericValue renders v with [numfmt.FormatValue], makes it the
// field text and the text [Field.Clear] restores, and returns it.  No
// callback fires.  A NaN or infinite v removes the default.
func (f *Field) SetDefaultNumericValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		f.hasDefault, f.defaultText, f.defaultValue = false, "", 0
		return f.text
	}
	f.hasDefault = true
	f.defaultValue = v
	f.defaultText = numfmt.FormatValue(v, f.cfg)
	f.text = f.defaultText
	f.state = EditState{PreviousAcceptedText: f.defaultText}
	return f.text
}

// DefaultNumericValue returns the default value and whether one is set.
func (f *Field) DefaultNumericValue() (float64, bool) {
	return f.defaultValue, f.hasDefault
}

// NumericValue parses the current text.  It returns NaN when the text does
// not represent a number, including the empty text.
func (f *Field) NumericValue() float64 {
	return numfmt.Parse(f.text, f.cfg)
}

// NumericValueOrDefault is NumericValue with 0 in place of NaN.
func (f *Field) NumericValueOrDefault() float64 {
	v := f.NumericValue()
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// OnValueChanged replaces the value-changed callback.  nil unregisters it.
func (f *Field) OnValueChanged(fn func(value float64)) { f.onChanged = fn }

// OnValueCleared replaces the value-cleared callback.  nil unregisters it.
func (f *Field) OnValueCleared(fn func()) { f.onCleared = fn }

// Text returns the text the field currently displays.
func (f *Field) Text() string { return f.text }

// State returns the current edit state.
func (f *Field) State() EditState { return f.state }

// Config returns the field's formatting configuration.
func (f *Field) Config() numfmt.Config { return f.cfg }

// Accepts reports whether a typed rune can ever be part of the field text.
// Hosts use it as a key filter and drop other keys before they reach the
// text.
func (f *Field) Accepts(r rune) bool { return f.cfg.Accepts(r) }
