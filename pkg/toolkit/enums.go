package toolkit

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Font indexes the toolkit's font table.
type Font int

var fontNames = []string{
	"Helvetica", "HelveticaBold", "HelveticaItalic", "HelveticaBoldItalic",
	"Courier", "CourierBold", "CourierItalic", "CourierBoldItalic",
	"Times", "TimesBold", "TimesItalic", "TimesBoldItalic",
	"Symbol", "Screen", "ScreenBold", "Zapfdingbats",
}

// FontHelvetica is the default label and text font.
const FontHelvetica Font = 0

// FontCount is the size of the font table.
func FontCount() int { return len(fontNames) }

// FontByIndex validates a raw font index.
func FontByIndex(i int) (Font, bool) {
	if i < 0 || i >= len(fontNames) {
		return 0, false
	}
	return Font(i), true
}

func (f Font) String() string {
	if int(f) >= 0 && int(f) < len(fontNames) {
		return fontNames[f]
	}
	return fmt.Sprintf("Font(%d)", int(f))
}

// FrameType indexes the frame-style table.
type FrameType int

type frameStyle struct {
	name   string
	fill   bool
	border bool
}

var frameStyles = []frameStyle{
	{"NoBox", false, false},
	{"FlatBox", true, false},
	{"UpBox", true, true},
	{"DownBox", true, true},
	{"UpFrame", false, true},
	{"DownFrame", false, true},
	{"ThinUpBox", true, true},
	{"ThinDownBox", true, true},
	{"ThinUpFrame", false, true},
	{"ThinDownFrame", false, true},
	{"EngravedBox", true, true},
	{"EmbossedBox", true, true},
	{"EngravedFrame", false, true},
	{"EmbossedFrame", false, true},
	{"BorderBox", true, true},
	{"ShadowBox", true, true},
	{"BorderFrame", false, true},
	{"ShadowFrame", false, true},
	{"RoundedBox", true, true},
	{"RShadowBox", true, true},
	{"RoundedFrame", false, true},
	{"RFlatBox", true, false},
	{"RoundUpBox", true, true},
	{"RoundDownBox", true, true},
	{"DiamondUpBox", true, true},
	{"DiamondDownBox", true, true},
	{"OvalBox", true, true},
	{"OShadowBox", true, true},
	{"OvalFrame", false, true},
	{"OFlatFrame", true, false},
	{"PlasticUpBox", true, true},
	{"PlasticDownBox", true, true},
	{"PlasticUpFrame", false, true},
	{"PlasticDownFrame", false, true},
	{"PlasticThinUpBox", true, true},
	{"PlasticThinDownBox", true, true},
	{"PlasticRoundUpBox", true, true},
	{"PlasticRoundDownBox", true, true},
	{"GtkUpBox", true, true},
	{"GtkDownBox", true, true},
	{"GtkUpFrame", false, true},
	{"GtkDownFrame", false, true},
	{"GtkThinUpBox", true, true},
	{"GtkThinDownBox", true, true},
	{"GtkThinUpFrame", false, true},
	{"GtkThinDownFrame", false, true},
	{"GtkRoundUpFrame", false, true},
	{"GtkRoundDownFrame", false, true},
	{"GleamUpBox", true, true},
	{"GleamDownBox", true, true},
	{"GleamUpFrame", false, true},
	{"GleamDownFrame", false, true},
	{"GleamThinUpBox", true, true},
	{"GleamThinDownBox", true, true},
	{"GleamRoundUpBox", true, true},
	{"GleamRoundDownBox", true, true},
}

// Frame styles referenced by widget constructors.
const (
	NoBox   FrameType = 0
	FlatBox FrameType = 1
	UpBox   FrameType = 2
	DownBox FrameType = 3
)

// FrameCount is the size of the frame-style table.
func FrameCount() int { return len(frameStyles) }

// FrameByIndex validates a raw frame index.
func FrameByIndex(i int) (FrameType, bool) {
	if i < 0 || i >= len(frameStyles) {
		return 0, false
	}
	return FrameType(i), true
}

// LookupFrame resolves a frame style by name (case-insensitive) or by a
// decimal index. Unknown names and out-of-range indexes report false.
func LookupFrame(name string) (FrameType, bool) {
	name = strings.TrimSpace(name)
	if i, err := strconv.Atoi(name); err == nil {
		return FrameByIndex(i)
	}
	for i, fs := range frameStyles {
		if strings.EqualFold(fs.name, name) {
			return FrameType(i), true
		}
	}
	return 0, false
}

func (f FrameType) String() string {
	if int(f) >= 0 && int(f) < len(frameStyles) {
		return frameStyles[f].name
	}
	return fmt.Sprintf("FrameType(%d)", int(f))
}

func (f FrameType) style() frameStyle {
	if int(f) >= 0 && int(f) < len(frameStyles) {
		return frameStyles[f]
	}
	return frameStyles[0]
}

// Align is a label alignment bit mask.
type Align int

const (
	AlignCenter          Align = 0
	AlignTop             Align = 0x0001
	AlignBottom          Align = 0x0002
	AlignLeft            Align = 0x0004
	AlignRight           Align = 0x0008
	AlignInside          Align = 0x0010
	AlignTextOverImage   Align = 0x0020
	AlignClip            Align = 0x0040
	AlignWrap            Align = 0x0080
	AlignImageNextToText Align = 0x0100
	AlignImageBackdrop   Align = 0x0200

	alignMask Align = 0x03FF
)

// AlignFromInt validates a raw alignment mask.
func AlignFromInt(v int) (Align, bool) {
	if v < 0 || Align(v)&^alignMask != 0 {
		return 0, false
	}
	return Align(v), true
}

// When is the callback trigger bit mask.
type When int

const (
	WhenNever           When = 0
	WhenChanged         When = 1
	WhenNotChanged      When = 2
	WhenRelease         When = 4
	WhenReleaseAlways   When = 6
	WhenEnterKey        When = 8
	WhenEnterKeyAlways  When = 10
	WhenEnterKeyChanged When = 11

	whenMask When = 0x000F
)

// WhenFromInt validates a raw trigger mask.
func WhenFromInt(v int) (When, bool) {
	if v < 0 || When(v)&^whenMask != 0 {
		return 0, false
	}
	return When(v), true
}

// Shortcut is a key code optionally or'ed with modifier bits.
type Shortcut int

// Modifier bits.
const (
	ShiftMod Shortcut = 0x00010000
	CtrlMod  Shortcut = 0x00040000
	AltMod   Shortcut = 0x00080000
	MetaMod  Shortcut = 0x00400000
)

// Named keys.
const (
	KeyBackspace Shortcut = 0xff08
	KeyTab       Shortcut = 0xff09
	KeyEnter     Shortcut = 0xff0d
	KeyEscape    Shortcut = 0xff1b
	KeyDelete    Shortcut = 0xffff
	KeyF1        Shortcut = 0xffbe
)

var keyNames = map[string]Shortcut{
	"backspace": KeyBackspace,
	"tab":       KeyTab,
	"enter":     KeyEnter,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"delete":    KeyDelete,
	"space":     ' ',
}

var modNames = map[string]Shortcut{
	"shift": ShiftMod,
	"ctrl":  CtrlMod,
	"alt":   AltMod,
	"meta":  MetaMod,
	"cmd":   MetaMod,
}

// ParseShortcut parses a key code. It accepts an integer literal (decimal,
// 0x hex or 0 octal) or a "+"-joined chord such as "Ctrl+Shift+s" or "F5".
func ParseShortcut(s string) (Shortcut, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty shortcut")
	}
	if v, err := strconv.ParseInt(s, 0, 32); err == nil {
		if v < 0 {
			return 0, fmt.Errorf("negative shortcut %d", v)
		}
		return Shortcut(v), nil
	}
	parts := strings.Split(s, "+")
	var mods Shortcut
	for _, p := range parts[:len(parts)-1] {
		m, ok := modNames[strings.ToLower(strings.TrimSpace(p))]
		if !ok {
			return 0, fmt.Errorf("unknown modifier %q", p)
		}
		mods |= m
	}
	key, err := parseKey(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return 0, err
	}
	return mods | key, nil
}

func parseKey(k string) (Shortcut, error) {
	if k == "" {
		return 0, fmt.Errorf("missing key")
	}
	lower := strings.ToLower(k)
	if v, ok := keyNames[lower]; ok {
		return v, nil
	}
	if len(lower) > 1 && lower[0] == 'f' {
		if n, err := strconv.Atoi(lower[1:]); err == nil && n >= 1 && n <= 12 {
			return KeyF1 + Shortcut(n-1), nil
		}
	}
	if utf8.RuneCountInString(k) == 1 {
		r, _ := utf8.DecodeRuneInString(lower)
		return Shortcut(r), nil
	}
	return 0, fmt.Errorf("unknown key %q", k)
}
