package toolkit

// Container is a widget that holds children. Every group type embeds
// [Group]; Begin and End may be overridden (Flex lays out on End).
type Container interface {
	Widget
	Begin()
	End()
	Children() []Widget
	Resizable() Widget
	SetResizable(w Widget)
	MakeResizable(on bool)

	group() *Group
}

// Group is a plain container. Widgets constructed while a group is current
// become its children.
type Group struct {
	Core
	children  []Widget
	resizable Widget
}

// NewGroup creates a group of the given kind and makes it current.
func (tk *Toolkit) NewGroup(kind string) *Group {
	g := &Group{}
	g.initGroup(tk, g, kind)
	return g
}

func (g *Group) initGroup(tk *Toolkit, self Container, kind string) {
	g.init(tk, self, kind)
	tk.current = self
}

func (g *Group) group() *Group { return g }

func (g *Group) container() Container {
	return g.self.(Container)
}

func (g *Group) add(w Widget) {
	w.core().parent = g.container()
	g.children = append(g.children, w)
}

// Begin makes the group current.
func (g *Group) Begin() {
	g.tk.current = g.container()
}

// End closes the group: its parent (or nothing, for a top-level window)
// becomes current again.
func (g *Group) End() {
	g.tk.current = g.parent
}

// Children returns the children in construction order.
func (g *Group) Children() []Widget {
	return g.children
}

// Len returns the number of children.
func (g *Group) Len() int { return len(g.children) }

// Child returns the i-th child, or nil when out of range.
func (g *Group) Child(i int) Widget {
	if i < 0 || i >= len(g.children) {
		return nil
	}
	return g.children[i]
}

// Resizable returns the child that absorbs resizes, the group itself when
// MakeResizable(true) was called, or nil.
func (g *Group) Resizable() Widget { return g.resizable }

// SetResizable makes w the group's resize anchor.
func (g *Group) SetResizable(w Widget) { g.resizable = w }

// MakeResizable makes the group its own resize anchor, or clears the anchor.
func (g *Group) MakeResizable(on bool) {
	if on {
		g.resizable = g.self
	} else {
		g.resizable = nil
	}
}

// Clear deletes every descendant. Deleted handles stay valid Go values but
// are detached and ignore callbacks.
func (g *Group) Clear() {
	for _, c := range g.children {
		deleteTree(c)
	}
	g.children = nil
	g.resizable = nil
	if cur := g.tk.current; cur != nil && cur.Deleted() {
		g.tk.current = g.container()
	}
}

func deleteTree(w Widget) {
	c := w.core()
	if cont, ok := w.(Container); ok {
		for _, child := range cont.Children() {
			deleteTree(child)
		}
	}
	c.deleted = true
	c.parent = nil
	c.callback = nil
}

// Window is a top-level group.
type Window struct {
	Group
	title   string
	shown   bool
	redraws int
}

// NewWindow creates a top-level window and makes it current.
func (tk *Toolkit) NewWindow(w, h int, title string) *Window {
	tk.current = nil
	win := &Window{title: title}
	win.initGroup(tk, win, "Window")
	win.Resize(0, 0, w, h)
	win.frame = FlatBox
	tk.windows = append(tk.windows, win)
	return win
}

func (w *Window) Title() string         { return w.title }
func (w *Window) SetTitle(title string) { w.title = title }

// Show marks the window as shown.
func (w *Window) Show() {
	w.Core.Show()
	w.shown = true
}

// Shown reports whether Show was called.
func (w *Window) Shown() bool { return w.shown }

// Redraw requests a repaint. The headless toolkit only counts requests.
func (w *Window) Redraw() { w.redraws++ }

// Redraws returns how many repaints were requested.
func (w *Window) Redraws() int { return w.redraws }

// FitFirstChild resizes the first child to fill the window and makes it the
// window's resize anchor. It reports false when the window is empty.
func (w *Window) FitFirstChild() bool {
	first := w.Child(0)
	if first == nil {
		return false
	}
	first.Resize(0, 0, w.W(), w.H())
	w.SetResizable(first)
	return true
}
