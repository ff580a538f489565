package numedit

// TextWriter is the host widget as seen by a [Binding].
//
// SetText may synchronously dispatch the widget's own text-changed event
// back into [Binding.HandleTextChanged]; the binding ignores that echo.
type TextWriter interface {
	SetText(text string)
	SetCaret(pos int)
}

// Binding connects a Field to a host widget.  It writes corrected and
// reverted text back to the widget and suppresses the text-changed event that
// write produces, so the field never re-processes its own output.
type Binding struct {
	field   *Field
	w       TextWriter
	writing bool
}

// NewBinding returns a Binding that drives w from f.
func NewBinding(f *Field, w TextWriter) *Binding {
	return &Binding{field: f, w: w}
}

// Field returns the bound field.
func (b *Binding) Field() *Field { return b.field }

// HandleTextChanged is the widget's text-changed handler.  text is the full
// widget text after the change.  The bool is false when the call was the echo
// of the binding's own write and nothing was processed.
func (b *Binding) HandleTextChanged(text string) (Result, bool) {
	if b.writing {
		return Result{}, false
	}
	res := b.field.OnTextChanged(text)
	if res.Text != text {
		b.write(res.Text)
	}
	b.w.SetCaret(res.Caret)
	return res, true
}

// Clear clears the field and writes the resulting text to the widget.
func (b *Binding) Clear() string {
	text := b.field.Clear()
	b.write(text)
	b.w.SetCaret(CaretEnd(text))
	return text
}

// SetDefaultNumericValue sets the field default and writes it to the widget.
func (b *Binding) SetDefaultNumericValue(v float64) string {
	text := b.field.SetDefaultNumericValue(v)
	b.write(text)
	b.w.SetCaret(CaretEnd(text))
	return text
}

func (b *Binding) write(text string) {
	b.writing = true
	defer func() { b.writing = false }()
	b.w.SetText(text)
}
