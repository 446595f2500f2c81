package engine

import (
	"fmt"

	"github.com/go-drift/decl/pkg/errors"
	"github.com/go-drift/decl/pkg/node"
	"github.com/go-drift/decl/pkg/toolkit"
)

// Handle is a live widget together with its capability set.
type Handle struct {
	Widget toolkit.Widget
	Caps   Capability
}

// Option configures a Builder.
type Option func(*Builder)

// WithRegistry replaces the default kind registry.
func WithRegistry(r *Registry) Option {
	return func(b *Builder) {
		if r != nil {
			b.registry = r
		}
	}
}

// WithImageLoader replaces the image loader used for image and deimage.
func WithImageLoader(l toolkit.ImageLoader) Option {
	return func(b *Builder) {
		if l != nil {
			b.images = l
		}
	}
}

// WithFrameLookup replaces the frame-style resolver used for frame and
// downframe.
func WithFrameLookup(fn func(name string) (toolkit.FrameType, bool)) Option {
	return func(b *Builder) {
		if fn != nil {
			b.frames = fn
		}
	}
}

// Builder constructs widget hierarchies from description trees. It must be
// used on the toolkit's UI thread.
type Builder struct {
	tk       *toolkit.Toolkit
	registry *Registry
	images   toolkit.ImageLoader
	frames   func(string) (toolkit.FrameType, bool)
}

// NewBuilder returns a Builder for tk using the default registry, a
// FileImageLoader and the toolkit frame table.
func NewBuilder(tk *toolkit.Toolkit, opts ...Option) *Builder {
	b := &Builder{
		tk:       tk,
		registry: DefaultRegistry(),
		images:   toolkit.FileImageLoader{},
		frames:   toolkit.LookupFrame,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Registry returns the builder's kind registry.
func (b *Builder) Registry() *Registry { return b.registry }

// New constructs a widget of the given tag in the current group. It reports
// false for unregistered tags.
func (b *Builder) New(tag string) (Handle, bool) {
	k, ok := b.registry.Lookup(tag)
	if !ok {
		return Handle{}, false
	}
	w := k.New(b.tk)
	return Handle{Widget: w, Caps: Classify(w)}, true
}

// Build constructs n and its subtree in the current group and returns the
// root widget. A node with an unregistered kind yields nil and none of its
// descendants are built.
func (b *Builder) Build(n *node.Node) toolkit.Widget {
	if n == nil {
		return nil
	}
	h, ok := b.New(n.Kind)
	if !ok {
		errors.Report(&errors.DeclError{
			Op:   "engine.build",
			Kind: errors.KindBuild,
			Err:  &errors.UnknownKindError{Kind: n.Kind, Dropped: n.Count()},
		})
		return nil
	}
	b.Apply(h, n)
	return h.Widget
}

func (b *Builder) skip(n *node.Node, attr string, value any, err error) {
	errors.Report(&errors.DeclError{
		Op:   "engine.apply",
		Kind: errors.KindAttribute,
		Err:  &errors.AttributeError{Widget: n.Kind, Attribute: attr, Value: value, Err: err},
	})
}

// Apply sets every attribute of n that h's capabilities cover, builds n's
// children into h while it is open, then closes h.
func (b *Builder) Apply(h Handle, n *node.Node) {
	w := h.Widget
	if w == nil || n == nil {
		return
	}
	caps := h.Caps

	// Identity and geometry.
	if n.ID != nil && caps.Has(CapIdentity) {
		w.(Identifiable).SetID(*n.ID)
	}
	if n.Label != nil && caps.Has(CapLabel) {
		w.(Labeled).SetLabel(*n.Label)
	}
	if n.Tooltip != nil && caps.Has(CapTooltip) {
		w.(Tooltipped).SetTooltip(*n.Tooltip)
	}
	if (n.X != nil || n.Y != nil || n.W != nil || n.H != nil) && caps.Has(CapGeometry) {
		p := w.(Positionable)
		p.Resize(valueOr(n.X, p.X()), valueOr(n.Y, p.Y()), valueOr(n.W, p.W()), valueOr(n.H, p.H()))
	}
	if n.Fixed != nil {
		if caps.Has(CapFlexChild) {
			w.Parent().(FlexContainer).Fixed(w, *n.Fixed)
		} else {
			b.skip(n, "fixed", *n.Fixed, fmt.Errorf("parent is not a flex container"))
		}
	}

	// Flex container.
	if caps.Has(CapFlexContainer) {
		f := w.(FlexContainer)
		if n.Margin != nil {
			f.SetMargin(*n.Margin)
		}
		if n.Left != nil || n.Top != nil || n.Right != nil || n.Bottom != nil {
			l, t, r, bt := f.Margins()
			f.SetMargins(valueOr(n.Left, l), valueOr(n.Top, t), valueOr(n.Right, r), valueOr(n.Bottom, bt))
		}
		if n.Pad != nil {
			f.SetPad(*n.Pad)
		}
	}

	// Colors.
	if n.Color != nil && caps.Has(CapColor) {
		if c, ok := b.color(n, "color", *n.Color); ok {
			w.(Colorable).SetColor(c)
		}
	}
	if n.LabelColor != nil && caps.Has(CapLabelColor) {
		if c, ok := b.color(n, "labelcolor", *n.LabelColor); ok {
			w.(LabelColorable).SetLabelColor(c)
		}
	}
	if n.SelectionColor != nil && caps.Has(CapSelectionColor) {
		if c, ok := b.color(n, "selectioncolor", *n.SelectionColor); ok {
			w.(SelectionColorable).SetSelectionColor(c)
		}
	}

	// Text.
	if caps.Has(CapBuffer) {
		if buf := w.(Buffered); buf.Buffer() == nil {
			buf.SetBuffer(toolkit.NewTextBuffer())
		}
	}
	if caps.Has(CapText) {
		t := w.(TextCapable)
		if n.TextColor != nil {
			if c, ok := b.color(n, "textcolor", *n.TextColor); ok {
				t.SetTextColor(c)
			}
		}
		if n.TextFont != nil {
			if f, ok := toolkit.FontByIndex(*n.TextFont); ok {
				t.SetTextFont(f)
			} else {
				b.skip(n, "textfont", *n.TextFont, nil)
			}
		}
		if n.TextSize != nil {
			t.SetTextSize(*n.TextSize)
		}
	}

	// Label style, frame and images.
	if caps.Has(CapLabelStyle) {
		ls := w.(LabelStyleable)
		if n.LabelFont != nil {
			if f, ok := toolkit.FontByIndex(*n.LabelFont); ok {
				ls.SetLabelFont(f)
			} else {
				b.skip(n, "labelfont", *n.LabelFont, nil)
			}
		}
		if n.LabelSize != nil {
			ls.SetLabelSize(*n.LabelSize)
		}
	}
	if n.Align != nil && caps.Has(CapAlign) {
		if a, ok := toolkit.AlignFromInt(*n.Align); ok {
			w.(Alignable).SetAlign(a)
		} else {
			b.skip(n, "align", *n.Align, nil)
		}
	}
	if n.When != nil && caps.Has(CapTrigger) {
		if t, ok := toolkit.WhenFromInt(*n.When); ok {
			w.(Triggerable).SetTrigger(t)
		} else {
			b.skip(n, "when", *n.When, nil)
		}
	}
	if n.Frame != nil && caps.Has(CapFrame) {
		if f, ok := b.frames(*n.Frame); ok {
			w.(FrameStyleable).SetFrame(f)
		} else {
			b.skip(n, "frame", *n.Frame, nil)
		}
	}
	if caps.Has(CapImage) {
		im := w.(Imageable)
		if n.Image != nil {
			if img, err := b.images.LoadImage(*n.Image); err == nil {
				im.SetImage(img)
			} else {
				b.skip(n, "image", *n.Image, err)
			}
		}
		if n.Deimage != nil {
			if img, err := b.images.LoadImage(*n.Deimage); err == nil {
				im.SetDeimage(img)
			} else {
				b.skip(n, "deimage", *n.Deimage, err)
			}
		}
	}

	// Buttons.
	if caps.Has(CapButton) {
		bc := w.(ButtonCapable)
		if n.DownFrame != nil {
			if f, ok := b.frames(*n.DownFrame); ok {
				bc.SetDownFrame(f)
			} else {
				b.skip(n, "downframe", *n.DownFrame, nil)
			}
		}
		if n.Shortcut != nil {
			if s, err := toolkit.ParseShortcut(*n.Shortcut); err == nil {
				bc.SetShortcut(s)
			} else {
				b.skip(n, "shortcut", *n.Shortcut, err)
			}
		}
	}

	// Ranges.
	if caps.Has(CapRange) {
		rc := w.(RangeCapable)
		if n.Minimum != nil {
			rc.SetMinimum(*n.Minimum)
		}
		if n.Maximum != nil {
			rc.SetMaximum(*n.Maximum)
		}
		if n.Step != nil {
			rc.SetStep(*n.Step, 1)
		}
		if n.SliderSize != nil {
			rc.SetSliderSize(*n.SliderSize)
		}
	}

	// Children, then state that depends on them.
	cont, isContainer := w.(toolkit.Container)
	if isContainer {
		cont.Begin()
		for _, child := range n.Children {
			b.Build(child)
		}
	} else if len(n.Children) > 0 {
		errors.Report(&errors.DeclError{
			Op:   "engine.build",
			Kind: errors.KindBuild,
			Err:  &errors.LeafChildrenError{Kind: n.Kind, Dropped: n.Count() - 1},
		})
	}
	if caps.Has(CapVisibility) {
		v := w.(Hideable)
		if n.Visible != nil {
			if *n.Visible {
				v.Show()
			} else {
				v.Hide()
			}
		}
		if n.Hide != nil && *n.Hide {
			v.Hide()
		}
	}
	if n.Deactivate != nil && *n.Deactivate && caps.Has(CapActivation) {
		w.(Activatable).Deactivate()
	}
	if n.Resizable != nil && *n.Resizable {
		if isContainer {
			cont.MakeResizable(true)
		} else if p := w.Parent(); p != nil {
			p.SetResizable(w)
		}
	}
	if isContainer {
		cont.End()
	}
}

func (b *Builder) color(n *node.Node, attr, s string) (toolkit.Color, bool) {
	c, err := toolkit.ParseHex(s)
	if err != nil {
		b.skip(n, attr, s, err)
		return 0, false
	}
	return c, true
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
