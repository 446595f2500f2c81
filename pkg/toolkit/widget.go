package toolkit

import "image"

// Widget is a handle to a live widget. Every concrete widget embeds [Core],
// which supplies the methods shared by all kinds; kind-specific behavior is
// exposed as additional methods on the concrete type.
type Widget interface {
	Kind() string
	ID() string
	Label() string
	Parent() Container
	X() int
	Y() int
	W() int
	H() int
	Resize(x, y, w, h int)
	Visible() bool
	Active() bool
	Deleted() bool

	core() *Core
}

// Core holds the state common to every widget.
type Core struct {
	tk   *Toolkit
	self Widget
	kind string

	id      string
	label   string
	tooltip string

	x, y, w, h int

	color          Color
	labelColor     Color
	selectionColor Color
	labelFont      Font
	labelSize      int
	align          Align
	when           When
	frame          FrameType
	img            image.Image
	deimg          image.Image

	hidden   bool
	inactive bool
	deleted  bool

	parent   Container
	callback func(Widget)
}

// init wires the widget into the toolkit and attaches it to the current
// group, sizing it to fill that group.
func (c *Core) init(tk *Toolkit, self Widget, kind string) {
	c.tk = tk
	c.self = self
	c.kind = kind
	c.color = DefaultColor
	c.labelColor = DefaultLabelColor
	c.selectionColor = DefaultSelectionColor
	c.labelSize = DefaultLabelSize
	c.when = WhenRelease
	if p := tk.current; p != nil {
		g := p.group()
		c.x, c.y, c.w, c.h = g.x, g.y, g.w, g.h
		g.add(self)
	}
}

func (c *Core) core() *Core { return c }

// Kind returns the kind tag the widget was constructed with.
func (c *Core) Kind() string { return c.kind }

// Toolkit returns the toolkit that owns the widget.
func (c *Core) Toolkit() *Toolkit { return c.tk }

func (c *Core) ID() string          { return c.id }
func (c *Core) SetID(id string)     { c.id = id }
func (c *Core) Label() string       { return c.label }
func (c *Core) SetLabel(s string)   { c.label = s }
func (c *Core) Tooltip() string     { return c.tooltip }
func (c *Core) SetTooltip(s string) { c.tooltip = s }

func (c *Core) X() int { return c.x }
func (c *Core) Y() int { return c.y }
func (c *Core) W() int { return c.w }
func (c *Core) H() int { return c.h }

// Resize moves and resizes the widget.
func (c *Core) Resize(x, y, w, h int) {
	c.x, c.y, c.w, c.h = x, y, max(w, 0), max(h, 0)
}

func (c *Core) Color() Color                { return c.color }
func (c *Core) SetColor(col Color)          { c.color = col }
func (c *Core) LabelColor() Color           { return c.labelColor }
func (c *Core) SetLabelColor(col Color)     { c.labelColor = col }
func (c *Core) SelectionColor() Color       { return c.selectionColor }
func (c *Core) SetSelectionColor(col Color) { c.selectionColor = col }

func (c *Core) LabelFont() Font            { return c.labelFont }
func (c *Core) SetLabelFont(f Font)        { c.labelFont = f }
func (c *Core) LabelSize() int             { return c.labelSize }
func (c *Core) SetLabelSize(size int)      { c.labelSize = size }
func (c *Core) Align() Align               { return c.align }
func (c *Core) SetAlign(a Align)           { c.align = a }
func (c *Core) Trigger() When              { return c.when }
func (c *Core) SetTrigger(w When)          { c.when = w }
func (c *Core) Frame() FrameType           { return c.frame }
func (c *Core) SetFrame(f FrameType)       { c.frame = f }
func (c *Core) Image() image.Image         { return c.img }
func (c *Core) SetImage(img image.Image)   { c.img = img }
func (c *Core) Deimage() image.Image       { return c.deimg }
func (c *Core) SetDeimage(img image.Image) { c.deimg = img }

// Visible reports whether the widget itself is shown. A visible widget inside
// a hidden group is still not drawn.
func (c *Core) Visible() bool { return !c.hidden }
func (c *Core) Show()         { c.hidden = false }
func (c *Core) Hide()         { c.hidden = true }

// Active reports whether the widget accepts input.
func (c *Core) Active() bool { return !c.inactive }
func (c *Core) Activate()    { c.inactive = false }
func (c *Core) Deactivate()  { c.inactive = true }

// Deleted reports whether the widget was removed by a Clear of one of its
// ancestors. Deleted handles ignore callbacks.
func (c *Core) Deleted() bool { return c.deleted }

// Parent returns the group the widget is attached to, or nil.
func (c *Core) Parent() Container { return c.parent }

// SetCallback sets the function run by DoCallback.
func (c *Core) SetCallback(fn func(Widget)) { c.callback = fn }

// DoCallback runs the widget's callback unless the widget was deleted.
func (c *Core) DoCallback() {
	if c.deleted || c.callback == nil {
		return
	}
	c.callback(c.self)
}

// Interactive reports whether user input can reach the widget: it and all of
// its ancestors are visible and active, and it has not been deleted.
func (c *Core) Interactive() bool {
	if c.deleted || c.hidden || c.inactive {
		return false
	}
	for p := c.parent; p != nil; p = p.Parent() {
		if !p.Visible() || !p.Active() {
			return false
		}
	}
	return true
}

// Window returns the top-level window containing the widget, or nil.
func (c *Core) Window() *Window {
	var w Widget = c.self
	for w != nil {
		if win, ok := w.(*Window); ok {
			return win
		}
		p := w.Parent()
		if p == nil {
			return nil
		}
		w = p
	}
	return nil
}
