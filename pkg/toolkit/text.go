package toolkit

// TextStyle is embedded by widgets that draw text content in addition to
// their label.
type TextStyle struct {
	textColor Color
	textFont  Font
	textSize  int
}

func defaultTextStyle() TextStyle {
	return TextStyle{textColor: ColorBlack, textFont: FontHelvetica, textSize: DefaultTextSize}
}

func (s *TextStyle) TextColor() Color     { return s.textColor }
func (s *TextStyle) SetTextColor(c Color) { s.textColor = c }
func (s *TextStyle) TextFont() Font       { return s.textFont }
func (s *TextStyle) SetTextFont(f Font)   { s.textFont = f }
func (s *TextStyle) TextSize() int        { return s.textSize }
func (s *TextStyle) SetTextSize(size int) { s.textSize = size }

// TextBuffer holds the text shown by a TextView.
type TextBuffer struct {
	text string
}

// NewTextBuffer returns an empty buffer.
func NewTextBuffer() *TextBuffer { return &TextBuffer{} }

func (b *TextBuffer) Text() string     { return b.text }
func (b *TextBuffer) SetText(s string) { b.text = s }
func (b *TextBuffer) Append(s string)  { b.text += s }
func (b *TextBuffer) Len() int         { return len(b.text) }

// TextView displays (TextDisplay) or edits (TextEditor) a TextBuffer. A new
// view has no buffer; one must be attached before text is shown.
type TextView struct {
	Core
	TextStyle
	buf *TextBuffer
}

// NewTextView creates a text view of the given kind in the current group.
func (tk *Toolkit) NewTextView(kind string) *TextView {
	v := &TextView{TextStyle: defaultTextStyle()}
	v.init(tk, v, kind)
	v.frame = DownBox
	v.color = ColorWhite
	return v
}

func (v *TextView) Buffer() *TextBuffer     { return v.buf }
func (v *TextView) SetBuffer(b *TextBuffer) { v.buf = b }

// Input is a single- or multi-line text field. Output kinds are read-only
// for the user but can still be set programmatically.
type Input struct {
	Core
	TextStyle
	value    string
	readonly bool
}

// NewInput creates an input of the given kind in the current group.
func (tk *Toolkit) NewInput(kind string) *Input {
	in := &Input{TextStyle: defaultTextStyle()}
	in.init(tk, in, kind)
	in.frame = DownBox
	in.color = ColorWhite
	in.readonly = kind == "Output" || kind == "MultilineOutput"
	return in
}

func (in *Input) Value() string     { return in.value }
func (in *Input) SetValue(v string) { in.value = v }
func (in *Input) Readonly() bool    { return in.readonly }

// Type simulates user typing: it replaces the value and fires the callback.
// It reports false for read-only or non-interactive inputs.
func (in *Input) Type(v string) bool {
	if in.readonly || !in.Interactive() {
		return false
	}
	in.value = v
	in.DoCallback()
	return true
}
