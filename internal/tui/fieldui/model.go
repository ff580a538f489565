// Package fieldui hosts a numeric field in a terminal.  A bubbles textinput
// plays the host widget: every keystroke that changes its text goes through a
// [numedit.Binding], which writes the corrected text back into the input.
package fieldui

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	numedit "github.com/TsubasaBE/go-numedit"
	"github.com/TsubasaBE/go-numedit/numfmt"
)

// Config configures the interactive field.
type Config struct {
	Format numfmt.Config
	// Default is the value shown initially and restored by Ctrl+R.  nil means
	// no default.
	Default *float64
	Title   string
	Logger  *slog.Logger
}

type status int

const (
	statusIdle status = iota
	statusValue
	statusRevert
	statusCleared
	statusIgnored
)

// Model is the bubbletea model of one numeric field.  It is used through a
// pointer so the binding's writer keeps pointing at the live input.
type Model struct {
	input   textinput.Model
	binding *numedit.Binding
	log     *slog.Logger
	title   string

	status status
	value  float64
	detail string
	done   bool
}

// inputWriter adapts a textinput to [numedit.TextWriter].
type inputWriter struct {
	in     *textinput.Model
	suffix string
}

func (w inputWriter) SetText(text string) { w.in.SetValue(text) }

// SetCaret positions the cursor, stepping back over a trailing currency
// suffix so typing and backspace act on the number.  textinput counts runes,
// which matches the grapheme count for the separators and symbols a field
// produces.
func (w inputWriter) SetCaret(pos int) {
	if w.suffix != "" && strings.HasSuffix(w.in.Value(), w.suffix) {
		pos -= numedit.CaretEnd(w.suffix)
	}
	w.in.SetCursor(max(pos, 0))
}

// New builds the model.  cfg.Format must be valid.
func New(cfg Config) (*Model, error) {
	m := &Model{
		log:   cfg.Logger,
		title: cfg.Title,
		value: math.NaN(),
	}
	if m.log == nil {
		m.log = slog.New(slog.DiscardHandler)
	}
	if m.title == "" {
		m.title = "Numeric field"
	}

	m.input = textinput.New()
	m.input.Placeholder = placeholder(cfg.Format)
	m.input.Prompt = ""
	m.input.Width = 32
	m.input.Focus()

	f, err := numedit.New(cfg.Format,
		numedit.WithOnValueChanged(m.valueChanged),
		numedit.WithOnValueCleared(m.valueCleared),
	)
	if err != nil {
		return nil, fmt.Errorf("fieldui: %w", err)
	}
	m.binding = numedit.NewBinding(f, inputWriter{in: &m.input, suffix: cfg.Format.Suffix()})
	if cfg.Default != nil {
		m.binding.SetDefaultNumericValue(*cfg.Default)
		m.value = f.NumericValue()
	}
	return m, nil
}

func placeholder(cfg numfmt.Config) string {
	sample := "1" + cfg.GroupingSeparator + "234"
	if cfg.MaxDigitsAfterDecimal > 0 {
		sample += cfg.DecimalSeparator + strings.Repeat("0", cfg.MaxDigitsAfterDecimal)
	}
	return sample
}

func (m *Model) valueChanged(v float64) {
	m.status, m.value, m.detail = statusValue, v, ""
}

func (m *Model) valueCleared() {
	m.status, m.value, m.detail = statusCleared, math.NaN(), ""
}

// Value returns the current numeric value, NaN when the field is empty.
func (m *Model) Value() float64 { return m.value }

// Text returns the displayed text.
func (m *Model) Text() string { return m.input.Value() }

// Field returns the underlying field.
func (m *Model) Field() *numedit.Field { return m.binding.Field() }

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.done = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.done = true
		m.log.Info("field submitted", "text", m.Text(), "value", m.value)
		return m, tea.Quit
	case tea.KeyCtrlR:
		text := m.binding.Clear()
		m.log.Debug("field cleared", "text", text)
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		filtered, dropped := m.filter(key.Runes)
		if dropped != "" {
			m.status, m.detail = statusIgnored, dropped
			m.log.Debug("keys ignored", "runes", dropped)
		}
		if len(filtered) == 0 {
			return m, nil
		}
		key = tea.KeyMsg{Type: tea.KeyRunes, Runes: filtered, Paste: key.Paste}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	if after := m.input.Value(); after != before {
		m.handle(after)
	}
	return m, cmd
}

// filter keeps the runes the field accepts, as a key listener would.
func (m *Model) filter(runes []rune) (kept []rune, dropped string) {
	f := m.binding.Field()
	var sb strings.Builder
	for _, r := range runes {
		if f.Accepts(r) {
			kept = append(kept, r)
		} else {
			sb.WriteRune(r)
		}
	}
	return kept, sb.String()
}

func (m *Model) handle(text string) {
	res, processed := m.binding.HandleTextChanged(text)
	if !processed {
		return
	}
	if res.Action == numedit.ActionRevert {
		m.status, m.detail = statusRevert, res.Rule.String()
	}
	m.log.Debug("edit",
		"proposed", text,
		"action", res.Action.String(),
		"text", res.Text,
		"rule", res.Rule.String(),
	)
}

// View implements tea.Model
func (m *Model) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(inputStyle.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter: submit  ctrl+r: clear  esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) statusLine() string {
	switch m.status {
	case statusValue:
		if math.IsNaN(m.value) {
			return valueStyle.Render("value: none")
		}
		return valueStyle.Render("value: " + strconv.FormatFloat(m.value, 'f', -1, 64))
	case statusRevert:
		return revertStyle.Render("reverted: " + m.detail)
	case statusCleared:
		return clearedStyle.Render("cleared")
	case statusIgnored:
		return revertStyle.Render(fmt.Sprintf("ignored %q", m.detail))
	}
	return clearedStyle.Render("type a number")
}

// Run starts the field in the terminal and returns the final value, NaN when
// the field was left empty.
func Run(cfg Config) (float64, error) {
	m, err := New(cfg)
	if err != nil {
		return math.NaN(), err
	}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return math.NaN(), fmt.Errorf("fieldui: %w", err)
	}
	return m.Value(), nil
}
