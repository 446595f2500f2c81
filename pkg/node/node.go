package node

// Node is one widget description. Kind selects the widget; every other field
// is optional and only read when the constructed widget supports it.
//
// TOML tags carry no omitempty: the encoder already skips nil pointers, and
// omitempty would also drop an explicit false or 0.
type Node struct {
	Kind string `json:"widget" yaml:"widget" toml:"widget" xml:"widget"`

	Label   *string `json:"label,omitempty" yaml:"label,omitempty" toml:"label" xml:"label,omitempty"`
	ID      *string `json:"id,omitempty" yaml:"id,omitempty" toml:"id" xml:"id,omitempty"`
	Tooltip *string `json:"tooltip,omitempty" yaml:"tooltip,omitempty" toml:"tooltip" xml:"tooltip,omitempty"`

	// Geometry overrides. When any of the four is present all four resolve,
	// missing ones keeping the widget's current value.
	X *int `json:"x,omitempty" yaml:"x,omitempty" toml:"x" xml:"x,omitempty"`
	Y *int `json:"y,omitempty" yaml:"y,omitempty" toml:"y" xml:"y,omitempty"`
	W *int `json:"w,omitempty" yaml:"w,omitempty" toml:"w" xml:"w,omitempty"`
	H *int `json:"h,omitempty" yaml:"h,omitempty" toml:"h" xml:"h,omitempty"`

	// Fixed pins the extent along the primary axis of a flex parent.
	Fixed *int `json:"fixed,omitempty" yaml:"fixed,omitempty" toml:"fixed" xml:"fixed,omitempty"`

	// Flex container spacing.
	Margin *int `json:"margin,omitempty" yaml:"margin,omitempty" toml:"margin" xml:"margin,omitempty"`
	Left   *int `json:"left,omitempty" yaml:"left,omitempty" toml:"left" xml:"left,omitempty"`
	Top    *int `json:"top,omitempty" yaml:"top,omitempty" toml:"top" xml:"top,omitempty"`
	Right  *int `json:"right,omitempty" yaml:"right,omitempty" toml:"right" xml:"right,omitempty"`
	Bottom *int `json:"bottom,omitempty" yaml:"bottom,omitempty" toml:"bottom" xml:"bottom,omitempty"`
	Pad    *int `json:"pad,omitempty" yaml:"pad,omitempty" toml:"pad" xml:"pad,omitempty"`

	// Colors are hex strings such as "#ff8800".
	Color          *string `json:"color,omitempty" yaml:"color,omitempty" toml:"color" xml:"color,omitempty"`
	LabelColor     *string `json:"labelcolor,omitempty" yaml:"labelcolor,omitempty" toml:"labelcolor" xml:"labelcolor,omitempty"`
	SelectionColor *string `json:"selectioncolor,omitempty" yaml:"selectioncolor,omitempty" toml:"selectioncolor" xml:"selectioncolor,omitempty"`
	TextColor      *string `json:"textcolor,omitempty" yaml:"textcolor,omitempty" toml:"textcolor" xml:"textcolor,omitempty"`

	Image   *string `json:"image,omitempty" yaml:"image,omitempty" toml:"image" xml:"image,omitempty"`
	Deimage *string `json:"deimage,omitempty" yaml:"deimage,omitempty" toml:"deimage" xml:"deimage,omitempty"`

	LabelFont *int `json:"labelfont,omitempty" yaml:"labelfont,omitempty" toml:"labelfont" xml:"labelfont,omitempty"`
	LabelSize *int `json:"labelsize,omitempty" yaml:"labelsize,omitempty" toml:"labelsize" xml:"labelsize,omitempty"`
	TextFont  *int `json:"textfont,omitempty" yaml:"textfont,omitempty" toml:"textfont" xml:"textfont,omitempty"`
	TextSize  *int `json:"textsize,omitempty" yaml:"textsize,omitempty" toml:"textsize" xml:"textsize,omitempty"`

	// Frame and DownFrame name a frame style ("UpBox", "FlatBox", ...).
	Frame     *string `json:"frame,omitempty" yaml:"frame,omitempty" toml:"frame" xml:"frame,omitempty"`
	DownFrame *string `json:"downframe,omitempty" yaml:"downframe,omitempty" toml:"downframe" xml:"downframe,omitempty"`

	// Align and When are raw bit masks.
	Align *int `json:"align,omitempty" yaml:"align,omitempty" toml:"align" xml:"align,omitempty"`
	When  *int `json:"when,omitempty" yaml:"when,omitempty" toml:"when" xml:"when,omitempty"`

	// Shortcut is a string-encoded key code.
	Shortcut *string `json:"shortcut,omitempty" yaml:"shortcut,omitempty" toml:"shortcut" xml:"shortcut,omitempty"`

	Resizable  *bool `json:"resizable,omitempty" yaml:"resizable,omitempty" toml:"resizable" xml:"resizable,omitempty"`
	Hide       *bool `json:"hide,omitempty" yaml:"hide,omitempty" toml:"hide" xml:"hide,omitempty"`
	Deactivate *bool `json:"deactivate,omitempty" yaml:"deactivate,omitempty" toml:"deactivate" xml:"deactivate,omitempty"`
	Visible    *bool `json:"visible,omitempty" yaml:"visible,omitempty" toml:"visible" xml:"visible,omitempty"`

	// Range controls only.
	Minimum    *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty" toml:"minimum" xml:"minimum,omitempty"`
	Maximum    *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty" toml:"maximum" xml:"maximum,omitempty"`
	Step       *float64 `json:"step,omitempty" yaml:"step,omitempty" toml:"step" xml:"step,omitempty"`
	SliderSize *float64 `json:"slidersize,omitempty" yaml:"slidersize,omitempty" toml:"slidersize" xml:"slidersize,omitempty"`

	// Children are built in order; order is visual and tab order.
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty" xml:"children,omitempty"`
}

// Ptr returns a pointer to v. It keeps literal trees short.
func Ptr[T any](v T) *T {
	return &v
}

// Walk visits n and its descendants in document order (pre-order). The
// depth of the root is 0. Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if n == nil {
		return
	}
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Label = clonePtr(n.Label)
	c.ID = clonePtr(n.ID)
	c.Tooltip = clonePtr(n.Tooltip)
	c.X, c.Y, c.W, c.H = clonePtr(n.X), clonePtr(n.Y), clonePtr(n.W), clonePtr(n.H)
	c.Fixed = clonePtr(n.Fixed)
	c.Margin = clonePtr(n.Margin)
	c.Left, c.Top, c.Right, c.Bottom = clonePtr(n.Left), clonePtr(n.Top), clonePtr(n.Right), clonePtr(n.Bottom)
	c.Pad = clonePtr(n.Pad)
	c.Color = clonePtr(n.Color)
	c.LabelColor = clonePtr(n.LabelColor)
	c.SelectionColor = clonePtr(n.SelectionColor)
	c.TextColor = clonePtr(n.TextColor)
	c.Image = clonePtr(n.Image)
	c.Deimage = clonePtr(n.Deimage)
	c.LabelFont = clonePtr(n.LabelFont)
	c.LabelSize = clonePtr(n.LabelSize)
	c.TextFont = clonePtr(n.TextFont)
	c.TextSize = clonePtr(n.TextSize)
	c.Frame = clonePtr(n.Frame)
	c.DownFrame = clonePtr(n.DownFrame)
	c.Align = clonePtr(n.Align)
	c.When = clonePtr(n.When)
	c.Shortcut = clonePtr(n.Shortcut)
	c.Resizable = clonePtr(n.Resizable)
	c.Hide = clonePtr(n.Hide)
	c.Deactivate = clonePtr(n.Deactivate)
	c.Visible = clonePtr(n.Visible)
	c.Minimum = clonePtr(n.Minimum)
	c.Maximum = clonePtr(n.Maximum)
	c.Step = clonePtr(n.Step)
	c.SliderSize = clonePtr(n.SliderSize)
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
