package engine

import (
	"image"
	"strings"

	"github.com/go-drift/decl/pkg/toolkit"
)

// Capability is a set of attribute groups a widget handle accepts.
type Capability uint32

const (
	CapIdentity Capability = 1 << iota
	CapLabel
	CapTooltip
	CapGeometry
	CapFlexChild
	CapFlexContainer
	CapColor
	CapLabelColor
	CapSelectionColor
	CapVisibility
	CapActivation
	CapContainer
	CapImage
	CapLabelStyle
	CapAlign
	CapTrigger
	CapFrame
	CapButton
	CapText
	CapBuffer
	CapRange
)

var capNames = []string{
	"identity", "label", "tooltip", "geometry", "flexchild", "flexcontainer",
	"color", "labelcolor", "selectioncolor", "visibility", "activation",
	"container", "image", "labelstyle", "align", "trigger", "frame", "button",
	"text", "buffer", "range",
}

// Has reports whether every capability in c2 is in c.
func (c Capability) Has(c2 Capability) bool { return c&c2 == c2 }

func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	for i, name := range capNames {
		if c&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// Identifiable accepts an id for later lookup.
type Identifiable interface {
	SetID(id string)
}

// Labeled accepts a label.
type Labeled interface {
	SetLabel(label string)
}

// Tooltipped accepts a tooltip.
type Tooltipped interface {
	SetTooltip(tip string)
}

// Positionable accepts absolute geometry.
type Positionable interface {
	X() int
	Y() int
	W() int
	H() int
	Resize(x, y, w, h int)
}

// FlexContainer is a directional container with margins, padding and pinned
// child extents.
type FlexContainer interface {
	SetMargin(m int)
	Margins() (left, top, right, bottom int)
	SetMargins(left, top, right, bottom int)
	SetPad(p int)
	Fixed(w toolkit.Widget, size int)
}

// Colorable accepts a background color.
type Colorable interface {
	SetColor(c toolkit.Color)
}

// LabelColorable accepts a label color.
type LabelColorable interface {
	SetLabelColor(c toolkit.Color)
}

// SelectionColorable accepts a selection color.
type SelectionColorable interface {
	SetSelectionColor(c toolkit.Color)
}

// Hideable can be shown and hidden.
type Hideable interface {
	Show()
	Hide()
}

// Activatable can be enabled and disabled.
type Activatable interface {
	Activate()
	Deactivate()
}

// Imageable accepts an image and a deactivated image.
type Imageable interface {
	SetImage(img image.Image)
	SetDeimage(img image.Image)
}

// LabelStyleable accepts a label font and size.
type LabelStyleable interface {
	SetLabelFont(f toolkit.Font)
	SetLabelSize(size int)
}

// Alignable accepts a label alignment.
type Alignable interface {
	SetAlign(a toolkit.Align)
}

// Triggerable accepts a callback trigger condition.
type Triggerable interface {
	SetTrigger(w toolkit.When)
}

// FrameStyleable accepts a frame style.
type FrameStyleable interface {
	SetFrame(f toolkit.FrameType)
}

// ButtonCapable accepts a pressed frame and a shortcut.
type ButtonCapable interface {
	FrameStyleable
	SetDownFrame(f toolkit.FrameType)
	SetShortcut(s toolkit.Shortcut)
}

// TextCapable accepts a text color, font and size.
type TextCapable interface {
	SetTextColor(c toolkit.Color)
	SetTextFont(f toolkit.Font)
	SetTextSize(size int)
}

// Buffered owns a text buffer that must exist before text attributes apply.
type Buffered interface {
	Buffer() *toolkit.TextBuffer
	SetBuffer(b *toolkit.TextBuffer)
}

// RangeCapable is a numeric range control.
type RangeCapable interface {
	SetMinimum(v float64)
	SetMaximum(v float64)
	SetStep(a float64, b int)
	SetSliderSize(v float64)
}

// Classify probes w for every capability interface. CapFlexChild depends on
// w's current parent.
func Classify(w toolkit.Widget) Capability {
	if w == nil {
		return 0
	}
	var c Capability
	probe := func(ok bool, bit Capability) {
		if ok {
			c |= bit
		}
	}
	_, ok := w.(Identifiable)
	probe(ok, CapIdentity)
	_, ok = w.(Labeled)
	probe(ok, CapLabel)
	_, ok = w.(Tooltipped)
	probe(ok, CapTooltip)
	_, ok = w.(Positionable)
	probe(ok, CapGeometry)
	if p := w.Parent(); p != nil {
		_, ok = p.(FlexContainer)
		probe(ok, CapFlexChild)
	}
	_, ok = w.(FlexContainer)
	probe(ok, CapFlexContainer)
	_, ok = w.(Colorable)
	probe(ok, CapColor)
	_, ok = w.(LabelColorable)
	probe(ok, CapLabelColor)
	_, ok = w.(SelectionColorable)
	probe(ok, CapSelectionColor)
	_, ok = w.(Hideable)
	probe(ok, CapVisibility)
	_, ok = w.(Activatable)
	probe(ok, CapActivation)
	_, ok = w.(toolkit.Container)
	probe(ok, CapContainer)
	_, ok = w.(Imageable)
	probe(ok, CapImage)
	_, ok = w.(LabelStyleable)
	probe(ok, CapLabelStyle)
	_, ok = w.(Alignable)
	probe(ok, CapAlign)
	_, ok = w.(Triggerable)
	probe(ok, CapTrigger)
	_, ok = w.(FrameStyleable)
	probe(ok, CapFrame)
	_, ok = w.(ButtonCapable)
	probe(ok, CapButton)
	_, ok = w.(TextCapable)
	probe(ok, CapText)
	_, ok = w.(Buffered)
	probe(ok, CapBuffer)
	_, ok = w.(RangeCapable)
	probe(ok, CapRange)
	return c
}
