// Package numedit is the core of a locale-aware numeric text field.  It
// intercepts every keystroke-driven change of the field's text, validates the
// proposed text, reformats accepted text with grouping separators and reports
// the numeric value it represents.  No cgo and no UI toolkit are required: the
// host widget passes raw text in and writes the returned text back.
//
// # Quick start
//
//	cfg := numfmt.DefaultConfig()
//	cfg.MaxDigitsBeforeDecimal = 9
//
//	f, err := numedit.New(cfg)
//	if err != nil { ... }
//	f.OnValueChanged(func(v float64) { fmt.Println("value", v) })
//	f.OnValueCleared(func() { fmt.Println("cleared") })
//
//	res := f.OnTextChanged("1234")   // res.Action == ActionAccept, res.Text == "1,234"
//	res  = f.OnTextChanged("1,234..") // res.Action == ActionRevert, res.Text == "1,234"
//
// Every Result carries the text the host must display and the caret index at
// its end.  [Binding] wraps a [Field] and a host [TextWriter] and suppresses
// the edit event the host fires when the corrected text is written back.
//
// # Pure core
//
// [Process] is the same pipeline as a free function over an explicit
// [EditState], for hosts that keep state themselves:
//
//	res, state := numedit.Process(state, proposed, cfg)
//
// # Configuration
//
// Separators, digit limits and the currency affix live in [numfmt.Config].
// Package locale resolves locale defaults, package styles applies
// spreadsheet-style format codes ("#,##0.00 [$€-407]") and package config
// loads host attributes from TOML or YAML.
package numedit

import (
	"fmt"
	"math"

	"github.com/rivo/uniseg"

	"github.com/TsubasaBE/go-numedit/edit"
	"github.com/TsubasaBE/go-numedit/numfmt"
)

// Version is the current version of the go-numedit library.
const Version = "1.0.0"

// EditState is the only state that survives between edits: the text the
// validator last accepted (after formatting).
type EditState struct {
	PreviousAcceptedText string
}

// Action tells the host what to do with its text after one edit.
type Action int

const (
	// ActionAccept: display Result.Text (the formatted proposal).
	ActionAccept Action = iota
	// ActionRevert: display Result.Text (the last accepted text).
	ActionRevert
	// ActionClear: the field is empty; display Result.Text ("").
	ActionClear
)

func (a Action) String() string {
	switch a {
	case ActionAccept:
		return "accept"
	case ActionRevert:
		return "revert"
	case ActionClear:
		return "clear"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Result is the outcome of one processed edit.
type Result struct {
	Action Action
	// Text is the string the host must display.
	Text string
	// Caret is the caret index at the end of Text, in grapheme clusters.
	Caret int
	// Value is the number Text represents: NaN on Clear or when Text does not
	// parse.  It is meaningful for ActionAccept only.
	Value float64
	// Rule names the validation rule behind a Revert or Clear.
	Rule edit.Rule
}

// Process runs one edit cycle: validate proposed against the last accepted
// text, then either revert, clear or format.  It returns the host action and
// the next state.  cfg must satisfy [numfmt.Config.Validate].
func Process(state EditState, proposed string, cfg numfmt.Config) (Result, EditState) {
	d := edit.Validate(state.PreviousAcceptedText, proposed, cfg)
	switch d.Outcome {
	case edit.Reject:
		return Result{
			Action: ActionRevert,
			Text:   d.Text,
			Caret:  CaretEnd(d.Text),
			Value:  numfmt.Parse(d.Text, cfg),
			Rule:   d.Rule,
		}, state
	case edit.Clear:
		return Result{Action: ActionClear, Value: math.NaN(), Rule: d.Rule}, EditState{}
	}

	display := numfmt.Format(proposed, cfg)
	return Result{
		Action: ActionAccept,
		Text:   display,
		Caret:  CaretEnd(display),
		Value:  numfmt.Parse(display, cfg),
	}, EditState{PreviousAcceptedText: display}
}

// CaretEnd returns the caret index just past the last user-perceived
// character of text.  Multi-byte currency symbols ("€", "₹") count once.
func CaretEnd(text string) int {
	return uniseg.GraphemeClusterCount(text)
}
