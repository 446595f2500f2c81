package toolkit

// Flex is a container that distributes its extent among its children along
// one axis: a row lays children out left to right, a column top to bottom.
// Children pinned with Fixed keep their size; the rest share what is left.
type Flex struct {
	Group
	row     bool
	margins [4]int // left, top, right, bottom
	pad     int
	fixed   map[Widget]int
}

// NewFlex creates a row (row=true) or column flex and makes it current.
func (tk *Toolkit) NewFlex(kind string, row bool) *Flex {
	f := &Flex{row: row, fixed: make(map[Widget]int)}
	f.initGroup(tk, f, kind)
	return f
}

// IsRow reports whether the primary axis is horizontal.
func (f *Flex) IsRow() bool { return f.row }

// SetMargin sets all four margins.
func (f *Flex) SetMargin(m int) {
	f.margins = [4]int{m, m, m, m}
}

// Margins returns the left, top, right and bottom margins.
func (f *Flex) Margins() (left, top, right, bottom int) {
	return f.margins[0], f.margins[1], f.margins[2], f.margins[3]
}

// SetMargins sets each margin.
func (f *Flex) SetMargins(left, top, right, bottom int) {
	f.margins = [4]int{left, top, right, bottom}
}

// Pad returns the gap between children.
func (f *Flex) Pad() int { return f.pad }

// SetPad sets the gap between children.
func (f *Flex) SetPad(p int) { f.pad = p }

// Fixed pins w's extent along the primary axis. w must be a child of f.
func (f *Flex) Fixed(w Widget, size int) {
	if w == nil || w.Parent() != Container(f) {
		return
	}
	f.fixed[w] = max(size, 0)
}

// FixedSize returns the pinned extent of w, if any.
func (f *Flex) FixedSize(w Widget) (int, bool) {
	size, ok := f.fixed[w]
	return size, ok
}

// End closes the flex and lays out its children.
func (f *Flex) End() {
	f.Group.End()
	f.Layout()
}

// Resize moves the flex and lays out its children again.
func (f *Flex) Resize(x, y, w, h int) {
	f.Group.Resize(x, y, w, h)
	f.Layout()
}

// Clear deletes every child and forgets pinned sizes.
func (f *Flex) Clear() {
	f.Group.Clear()
	clear(f.fixed)
}

// Layout positions the visible children.
func (f *Flex) Layout() {
	var kids []Widget
	for _, c := range f.children {
		if c.Visible() {
			kids = append(kids, c)
		}
	}
	if len(kids) == 0 {
		return
	}

	left, top, right, bottom := f.Margins()
	x, y := f.x+left, f.y+top
	w, h := max(f.w-left-right, 0), max(f.h-top-bottom, 0)

	extent := h
	if f.row {
		extent = w
	}
	free := extent - f.pad*(len(kids)-1)
	flexible := 0
	for _, c := range kids {
		if size, ok := f.fixed[c]; ok {
			free -= size
		} else {
			flexible++
		}
	}
	free = max(free, 0)

	share, rest := 0, 0
	if flexible > 0 {
		share, rest = free/flexible, free%flexible
	}

	pos := y
	if f.row {
		pos = x
	}
	for _, c := range kids {
		size, ok := f.fixed[c]
		if !ok {
			size = share
			if rest > 0 {
				size++
				rest--
			}
		}
		if f.row {
			c.Resize(pos, y, size, h)
		} else {
			c.Resize(x, pos, w, size)
		}
		pos += size + f.pad
	}
}
