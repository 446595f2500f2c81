package engine

import (
	stderrors "errors"
	"image"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/decl/pkg/errors"
	"github.com/go-drift/decl/pkg/node"
	"github.com/go-drift/decl/pkg/toolkit"
)

func counterTree() *node.Node {
	return &node.Node{
		Kind: "Column",
		Pad:  num(5),
		Children: []*node.Node{
			{Kind: "Button", ID: str("inc"), Label: str("Inc"), Fixed: num(40), LabelColor: str("#0000ff")},
			{Kind: "Frame", ID: str("result"), Label: str("0")},
			{Kind: "Button", ID: str("dec"), Label: str("Dec"), Fixed: num(40), Shortcut: str("100")},
		},
	}
}

func TestBuilder_OneWidgetPerNodeInOrder(t *testing.T) {
	root := &node.Node{
		Kind: "Column",
		Children: []*node.Node{
			{Kind: "Row", Children: []*node.Node{
				{Kind: "Button", Label: str("a")},
				{Kind: "Input", Label: str("b")},
			}},
			{Kind: "Group", Children: []*node.Node{
				{Kind: "Slider", Label: str("c")},
			}},
			{Kind: "Frame", Label: str("d")},
		},
	}
	win, w := buildInWindow(t, root)

	var kinds []string
	toolkit.Walk(w, func(w toolkit.Widget, _ int) bool {
		kinds = append(kinds, w.Kind())
		return true
	})
	var want []string
	root.Walk(func(n *node.Node, _ int) bool {
		want = append(want, n.Kind)
		return true
	})
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("pre-order kinds mismatch (-want +got):\n%s", diff)
	}
	if got := win.Children(); len(got) != 1 || got[0] != w {
		t.Errorf("window children = %v, want the root only", got)
	}
	row := w.(toolkit.Container).Children()[0].(toolkit.Container)
	if row.Children()[1].Label() != "b" || row.Children()[1].Parent() != row {
		t.Error("row children not attached to the row")
	}
}

func TestBuilder_UnknownKindDropsSubtree(t *testing.T) {
	h := withHandler(t)
	root := &node.Node{
		Kind: "Column",
		Children: []*node.Node{
			{Kind: "Button", ID: str("before")},
			{Kind: "Bogus", Children: []*node.Node{
				{Kind: "Button", ID: str("orphan")},
			}},
			{Kind: "Button", ID: str("after")},
		},
	}
	win, w := buildInWindow(t, root)

	col := w.(toolkit.Container)
	if n := len(col.Children()); n != 2 {
		t.Fatalf("column has %d children, want 2", n)
	}
	after := toolkit.Find(win, "after")
	if after == nil || after.Parent() != col {
		t.Errorf("sibling after the unknown node is attached to %v", after.Parent())
	}
	if toolkit.Find(win, "orphan") != nil {
		t.Error("descendant of unknown node was built")
	}
	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindBuild {
		t.Fatalf("reports = %v, want one KindBuild", h.kinds())
	}
	var uk *errors.UnknownKindError
	if !stderrors.As(h.errs[0], &uk) || uk.Kind != "Bogus" || uk.Dropped != 2 {
		t.Errorf("UnknownKindError = %+v", uk)
	}
}

func TestBuilder_LeafChildrenReported(t *testing.T) {
	h := withHandler(t)
	root := &node.Node{
		Kind: "Column",
		Children: []*node.Node{
			{Kind: "Button", ID: str("btn"), Children: []*node.Node{
				{Kind: "Input", ID: str("nested")},
			}},
			{Kind: "Frame", ID: str("frame")},
		},
	}
	win, w := buildInWindow(t, root)

	if n := len(w.(toolkit.Container).Children()); n != 2 {
		t.Fatalf("column has %d children, want 2", n)
	}
	if toolkit.Find(win, "btn") == nil || toolkit.Find(win, "frame") == nil {
		t.Error("leaf or its sibling missing")
	}
	if toolkit.Find(win, "nested") != nil {
		t.Error("child of a leaf was built")
	}
	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindBuild {
		t.Fatalf("reports = %v, want one KindBuild", h.kinds())
	}
	var lc *errors.LeafChildrenError
	if !stderrors.As(h.errs[0], &lc) || lc.Kind != "Button" || lc.Dropped != 1 {
		t.Errorf("LeafChildrenError = %+v", lc)
	}
}

func TestBuilder_UnknownRootYieldsNil(t *testing.T) {
	withHandler(t)
	win, w := buildInWindow(t, &node.Node{Kind: "Nope"})
	if w != nil || len(win.Children()) != 0 {
		t.Errorf("Build(unknown) = %v, children %d", w, len(win.Children()))
	}
}

func TestBuilder_IdempotentAcrossWindows(t *testing.T) {
	root := counterTree()
	root.Children[1].Hide = node.Ptr(true)

	tk := toolkit.New()
	b := NewBuilder(tk)
	w1 := tk.NewWindow(300, 200, "one")
	r1 := b.Build(root)
	w1.End()
	w2 := tk.NewWindow(300, 200, "two")
	r2 := b.Build(root)
	w2.End()

	if r1 == r2 {
		t.Fatal("the two builds share a widget")
	}
	if diff := cmp.Diff(shapeOf(r1), shapeOf(r2)); diff != "" {
		t.Errorf("hierarchies differ (-first +second):\n%s", diff)
	}
}

func TestBuilder_CounterLayout(t *testing.T) {
	_, w := buildInWindow(t, counterTree())
	col := w.(*toolkit.Flex)
	if col.Pad() != 5 {
		t.Errorf("pad = %d", col.Pad())
	}
	inc := col.Child(0).(*toolkit.Button)
	if size, ok := col.FixedSize(inc); !ok || size != 40 {
		t.Errorf("fixed = %d, %v", size, ok)
	}
	if inc.LabelColor() != toolkit.RGB(0, 0, 255) {
		t.Errorf("labelcolor = %s", inc.LabelColor().Hex())
	}
	if dec := col.Child(2).(*toolkit.Button); dec.Shortcut() != 100 {
		t.Errorf("shortcut = %d", dec.Shortcut())
	}
	if inc.H() != 40 {
		t.Errorf("inc height = %d, want 40", inc.H())
	}
}

func TestBuilder_GeometryDefaultsToCurrent(t *testing.T) {
	_, w := buildInWindow(t, &node.Node{Kind: "Group", Children: []*node.Node{
		{Kind: "Button", ID: str("b"), X: num(10), W: num(50)},
	}})
	b := w.(toolkit.Container).Children()[0]
	if b.X() != 10 || b.Y() != 0 || b.W() != 50 || b.H() != 300 {
		t.Errorf("geometry = %d,%d %dx%d", b.X(), b.Y(), b.W(), b.H())
	}
}

func TestBuilder_Margins(t *testing.T) {
	_, w := buildInWindow(t, &node.Node{Kind: "Row", Margin: num(3), Left: num(7), Bottom: num(9)})
	l, tp, r, b := w.(*toolkit.Flex).Margins()
	if l != 7 || tp != 3 || r != 3 || b != 9 {
		t.Errorf("margins = %d %d %d %d, want 7 3 3 9", l, tp, r, b)
	}
}

func TestBuilder_Visibility(t *testing.T) {
	tests := []struct {
		name    string
		n       *node.Node
		visible bool
		active  bool
	}{
		{"defaults", &node.Node{Kind: "Button"}, true, true},
		{"hide", &node.Node{Kind: "Button", Hide: node.Ptr(true)}, false, true},
		{"hide false", &node.Node{Kind: "Button", Hide: node.Ptr(false)}, true, true},
		{"deactivate", &node.Node{Kind: "Button", Deactivate: node.Ptr(true)}, true, false},
		{"visible false hides", &node.Node{Kind: "Button", Visible: node.Ptr(false)}, false, true},
		{"visible true keeps active", &node.Node{Kind: "Button", Visible: node.Ptr(true)}, true, true},
		{"hide wins over visible", &node.Node{Kind: "Button", Visible: node.Ptr(true), Hide: node.Ptr(true)}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, w := buildInWindow(t, tt.n)
			if w.Visible() != tt.visible || w.Active() != tt.active {
				t.Errorf("visible=%v active=%v, want %v %v", w.Visible(), w.Active(), tt.visible, tt.active)
			}
		})
	}
}

func TestBuilder_Resizable(t *testing.T) {
	_, w := buildInWindow(t, &node.Node{Kind: "Group", Children: []*node.Node{
		{Kind: "Button", ID: str("leaf"), Resizable: node.Ptr(true)},
		{Kind: "Group", ID: str("inner"), Resizable: node.Ptr(true)},
	}})
	outer := w.(toolkit.Container)
	leaf := toolkit.Find(w, "leaf")
	inner := toolkit.Find(w, "inner").(toolkit.Container)
	if outer.Resizable() != leaf {
		t.Errorf("outer anchor = %v, want leaf", outer.Resizable())
	}
	if inner.Resizable() != toolkit.Widget(inner) {
		t.Errorf("inner anchor = %v, want itself", inner.Resizable())
	}
}

func TestBuilder_TextBufferCreatedFirst(t *testing.T) {
	_, w := buildInWindow(t, &node.Node{
		Kind: "TextEditor", TextColor: str("#ff0000"), TextFont: num(4), TextSize: num(18),
	})
	tv := w.(*toolkit.TextView)
	if tv.Buffer() == nil {
		t.Fatal("text buffer not created")
	}
	if tv.TextColor() != toolkit.RGB(255, 0, 0) || tv.TextFont() != 4 || tv.TextSize() != 18 {
		t.Errorf("text style = %s %v %d", tv.TextColor().Hex(), tv.TextFont(), tv.TextSize())
	}
}

func TestBuilder_Range(t *testing.T) {
	_, w := buildInWindow(t, &node.Node{
		Kind: "HorSlider", Minimum: node.Ptr(1.0), Maximum: node.Ptr(9.0), Step: node.Ptr(2.0), SliderSize: node.Ptr(0.25),
	})
	s := w.(*toolkit.Valuator)
	if s.Minimum() != 1 || s.Maximum() != 9 || s.Step() != 2 || s.SliderSize() != 0.25 {
		t.Errorf("range = %v..%v step %v size %v", s.Minimum(), s.Maximum(), s.Step(), s.SliderSize())
	}
}

func TestBuilder_RangeIgnoredOnOtherKinds(t *testing.T) {
	h := withHandler(t)
	_, w := buildInWindow(t, &node.Node{Kind: "Progress", Minimum: node.Ptr(5.0), Maximum: node.Ptr(6.0)})
	p := w.(*toolkit.Progress)
	if p.Minimum() != 0 || p.Maximum() != 100 {
		t.Errorf("progress range changed to %v..%v", p.Minimum(), p.Maximum())
	}
	if len(h.errs) != 0 {
		t.Errorf("unsupported attributes were reported: %v", h.kinds())
	}
}

func TestBuilder_FontAndFrameBounds(t *testing.T) {
	h := withHandler(t)
	_, w := buildInWindow(t, &node.Node{
		Kind:      "Button",
		LabelFont: num(toolkit.FontCount()),
		Frame:     str(strconv.Itoa(toolkit.FrameCount())),
		DownFrame: str("9999"),
		TextFont:  num(99),
	})
	b := w.(*toolkit.Button)
	if b.LabelFont() != toolkit.FontHelvetica {
		t.Errorf("labelfont = %v, want default", b.LabelFont())
	}
	if b.Frame() != toolkit.UpBox || b.DownFrame() != toolkit.DownBox {
		t.Errorf("frames = %v/%v, want defaults", b.Frame(), b.DownFrame())
	}
	want := []errors.ErrorKind{errors.KindAttribute, errors.KindAttribute, errors.KindAttribute}
	if diff := cmp.Diff(want, h.kinds()); diff != "" {
		t.Errorf("reports mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_FramesByName(t *testing.T) {
	_, w := buildInWindow(t, &node.Node{Kind: "Button", Frame: str("FlatBox"), DownFrame: str("3")})
	b := w.(*toolkit.Button)
	if b.Frame() != toolkit.FlatBox || b.DownFrame() != toolkit.DownBox {
		t.Errorf("frames = %v/%v", b.Frame(), b.DownFrame())
	}
}

func TestBuilder_BadValuesSkipOnlyThatAttribute(t *testing.T) {
	h := withHandler(t)
	_, w := buildInWindow(t, &node.Node{
		Kind:       "Button",
		Label:      str("ok"),
		Color:      str("not-a-color"),
		LabelColor: str("#00ff00"),
		Shortcut:   str("Hyper+q"),
		Align:      num(0x800),
		When:       num(1),
		Image:      str("does/not/exist.png"),
	})
	b := w.(*toolkit.Button)
	if b.Label() != "ok" || b.Color() != toolkit.DefaultColor || b.LabelColor() != toolkit.RGB(0, 255, 0) {
		t.Errorf("label=%q color=%s labelcolor=%s", b.Label(), b.Color().Hex(), b.LabelColor().Hex())
	}
	if b.Shortcut() != 0 || b.Align() != toolkit.AlignCenter || b.Trigger() != toolkit.WhenChanged || b.Image() != nil {
		t.Error("bad attributes were applied")
	}
	if n := len(h.errs); n != 4 {
		t.Errorf("got %d reports, want 4: %v", n, h.kinds())
	}
}

func TestBuilder_FixedWithoutFlexParent(t *testing.T) {
	h := withHandler(t)
	buildInWindow(t, &node.Node{Kind: "Group", Children: []*node.Node{
		{Kind: "Button", Fixed: num(30)},
	}})
	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindAttribute {
		t.Errorf("reports = %v", h.kinds())
	}
}

func TestBuilder_ImageLoader(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	var refs []string
	loader := toolkit.ImageLoaderFunc(func(ref string) (image.Image, error) {
		refs = append(refs, ref)
		return img, nil
	})
	_, w := buildInWindow(t, &node.Node{Kind: "Frame", Image: str("a.png"), Deimage: str("b.png")}, WithImageLoader(loader))
	box := w.(*toolkit.Box)
	if box.Image() != image.Image(img) || box.Deimage() != image.Image(img) {
		t.Error("images not applied")
	}
	if diff := cmp.Diff([]string{"a.png", "b.png"}, refs); diff != "" {
		t.Errorf("refs mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_CustomRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(Kind{Tag: "Label", New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewBox("Label") }})
	withHandler(t)
	_, w := buildInWindow(t, &node.Node{Kind: "Label", Label: str("hi")}, WithRegistry(r))
	if w == nil || w.Label() != "hi" {
		t.Fatalf("custom kind not built: %v", w)
	}
	_, w = buildInWindow(t, &node.Node{Kind: "Button"}, WithRegistry(r))
	if w != nil {
		t.Error("default kinds should be absent from a custom registry")
	}
}
