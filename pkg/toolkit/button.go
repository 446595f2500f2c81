package toolkit

import "strings"

// Button is a push button. CheckButton, ToggleButton and LightButton kinds
// toggle their value when clicked; RadioButton and RadioRoundButton kinds
// turn their siblings of a radio kind off.
type Button struct {
	Core
	downFrame FrameType
	shortcut  Shortcut
	value     bool
}

// NewButton creates a button of the given kind in the current group.
func (tk *Toolkit) NewButton(kind string) *Button {
	b := &Button{downFrame: DownBox}
	b.init(tk, b, kind)
	b.frame = UpBox
	return b
}

func (b *Button) DownFrame() FrameType     { return b.downFrame }
func (b *Button) SetDownFrame(f FrameType) { b.downFrame = f }
func (b *Button) Shortcut() Shortcut       { return b.shortcut }
func (b *Button) SetShortcut(s Shortcut)   { b.shortcut = s }
func (b *Button) Value() bool              { return b.value }
func (b *Button) SetValue(v bool)          { b.value = v }

func (b *Button) isRadio() bool { return strings.HasPrefix(b.kind, "Radio") }

func (b *Button) isToggle() bool {
	switch b.kind {
	case "CheckButton", "ToggleButton", "LightButton", "RoundButton":
		return true
	}
	return false
}

// Click simulates a user click. It reports false when the button cannot
// receive input (hidden, inactive, deleted, or inside such a group).
func (b *Button) Click() bool {
	if !b.Interactive() {
		return false
	}
	switch {
	case b.isRadio():
		if p := b.parent; p != nil {
			for _, sib := range p.Children() {
				if other, ok := sib.(*Button); ok && other != b && other.isRadio() {
					other.value = false
				}
			}
		}
		b.value = true
	case b.isToggle():
		b.value = !b.value
	}
	b.DoCallback()
	return true
}

// Press simulates the button's shortcut being typed. It clicks the button
// when s matches a non-zero shortcut.
func (b *Button) Press(s Shortcut) bool {
	if b.shortcut == 0 || s != b.shortcut {
		return false
	}
	return b.Click()
}
